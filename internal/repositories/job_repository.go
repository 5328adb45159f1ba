package repositories

import (
	"errors"
	"time"

	"jobboard/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// DefaultJobPageSize matches the public listing page length.
const DefaultJobPageSize = 12

// JobSearchCriteria is the normalized form of the listing query parameters.
// Nil/zero fields impose no constraint; malformed numeric input never reaches
// this struct (the service swallows it).
type JobSearchCriteria struct {
	Query           string
	Location        string
	JobType         string
	LocationType    string
	ExperienceLevel string
	SalaryMin       *int
	SalaryMax       *int
	VisaSponsorship *bool
	SkillIDs        []string
	Page            int
	PageSize        int
}

// JobWithApplicationCount backs the recruiter's my-jobs dashboard.
type JobWithApplicationCount struct {
	Job              models.Job
	ApplicationCount int64
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	// FindActiveByID only surfaces active postings (public detail page).
	FindActiveByID(db *gorm.DB, id string) (*models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
	ReplaceSkills(db *gorm.DB, job *models.Job, skills []models.Skill) error
	Delete(db *gorm.DB, id string) error
	SetActive(db *gorm.DB, id string, active bool) error
	ListByRecruiter(db *gorm.DB, recruiterID string) ([]JobWithApplicationCount, error)
	Search(db *gorm.DB, criteria JobSearchCriteria) ([]models.Job, int64, error)
	// DeactivateExpired flips is_active off for jobs whose deadline is behind
	// the given day. Returns the number of rows touched.
	DeactivateExpired(db *gorm.DB, today time.Time) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Company").Preload("RequiredSkills").Preload("PostedBy").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindActiveByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Company").Preload("RequiredSkills").Preload("PostedBy").
		First(&job, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	return db.Omit("RequiredSkills").Save(job).Error
}

func (r *JobRepositoryImpl) ReplaceSkills(db *gorm.DB, job *models.Job, skills []models.Skill) error {
	return db.Model(job).Association("RequiredSkills").Replace(skills)
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Select("RequiredSkills").Delete(&models.Job{BaseModel: models.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) SetActive(db *gorm.DB, id string, active bool) error {
	result := db.Model(&models.Job{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) ListByRecruiter(db *gorm.DB, recruiterID string) ([]JobWithApplicationCount, error) {
	var jobs []models.Job
	err := db.Preload("Company").Preload("RequiredSkills").
		Where("posted_by_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	if len(jobs) == 0 {
		return []JobWithApplicationCount{}, nil
	}

	jobIDs := make([]string, 0, len(jobs))
	for _, j := range jobs {
		jobIDs = append(jobIDs, j.ID)
	}

	type countRow struct {
		JobID string
		Count int64
	}
	var rows []countRow
	err = db.Model(&models.Application{}).
		Select("job_id, COUNT(*) AS count").
		Where("job_id IN ?", jobIDs).
		Group("job_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.JobID] = row.Count
	}

	result := make([]JobWithApplicationCount, 0, len(jobs))
	for _, j := range jobs {
		result = append(result, JobWithApplicationCount{
			Job:              j,
			ApplicationCount: counts[j.ID],
		})
	}
	return result, nil
}

// Search composes the public listing query. Only is_active = true postings are
// ever eligible; every supplied criterion narrows the set (logical AND), the
// keyword matching ORs across title, description and the free-text company
// name, and salary bounds match when either bound of the posting overlaps the
// requested one. Ordered newest first.
func (r *JobRepositoryImpl) Search(db *gorm.DB, criteria JobSearchCriteria) ([]models.Job, int64, error) {
	query := db.Model(&models.Job{}).Where("is_active = ?", true)

	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ? OR company_name ILIKE ?)",
			search, search, search)
	}

	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}

	if criteria.JobType != "" {
		query = query.Where("job_type = ?", criteria.JobType)
	}

	if criteria.LocationType != "" {
		query = query.Where("location_type = ?", criteria.LocationType)
	}

	if criteria.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", criteria.ExperienceLevel)
	}

	if criteria.SalaryMin != nil {
		query = query.Where("(salary_min >= ? OR salary_max >= ?)",
			*criteria.SalaryMin, *criteria.SalaryMin)
	}

	if criteria.SalaryMax != nil {
		query = query.Where("(salary_max <= ? OR salary_min <= ?)",
			*criteria.SalaryMax, *criteria.SalaryMax)
	}

	if criteria.VisaSponsorship != nil {
		query = query.Where("visa_sponsorship = ?", *criteria.VisaSponsorship)
	}

	if len(criteria.SkillIDs) > 0 {
		// Subquery keeps the result deduplicated without DISTINCT over a join.
		query = query.Where("id IN (SELECT job_id FROM job_skills WHERE skill_id IN ?)",
			criteria.SkillIDs)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = DefaultJobPageSize
	}

	var jobs []models.Job
	err := query.Preload("Company").Preload("RequiredSkills").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&jobs).Error

	return jobs, total, err
}

func (r *JobRepositoryImpl) DeactivateExpired(db *gorm.DB, today time.Time) (int64, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	result := db.Model(&models.Job{}).
		Where("is_active = ? AND application_deadline IS NOT NULL AND application_deadline < ?", true, day).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
