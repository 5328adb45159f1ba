package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/logger"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services/dto"
	"jobboard/pkg/apperrors"
)

const dateLayout = "2006-01-02"

type JobService interface {
	Search(db *gorm.DB, req dto.SearchJobsRequest, viewer *models.User) (*dto.JobListResponse, error)
	GetByID(db *gorm.DB, id string, viewer *models.User) (*dto.JobResponse, error)
	Create(db *gorm.DB, user *models.User, req dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(db *gorm.DB, user *models.User, id string, req dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(db *gorm.DB, user *models.User, id string) error
	SetActive(db *gorm.DB, user *models.User, id string, active bool) (*dto.JobResponse, error)
	ListOwn(db *gorm.DB, user *models.User) ([]dto.MyJobResponse, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
	skillRepo   repositories.SkillRepository
	appRepo     repositories.ApplicationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	skillRepo repositories.SkillRepository,
	appRepo repositories.ApplicationRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		skillRepo:   skillRepo,
		appRepo:     appRepo,
	}
}

// Search normalizes the raw query-string filters and runs the listing query.
// Malformed salary and visa values are dropped, never rejected: a garbage
// filter widens the result set instead of erroring the page.
func (s *JobServiceImpl) Search(db *gorm.DB, req dto.SearchJobsRequest, viewer *models.User) (*dto.JobListResponse, error) {
	criteria := repositories.JobSearchCriteria{
		Query:           strings.TrimSpace(req.Query),
		Location:        strings.TrimSpace(req.Location),
		JobType:         parseEnumFilter(req.JobType, func(v string) bool { return models.JobType(v).Valid() }),
		LocationType:    parseEnumFilter(req.LocationType, func(v string) bool { return models.LocationType(v).Valid() }),
		ExperienceLevel: parseEnumFilter(req.ExperienceLevel, func(v string) bool { return models.ExperienceLevel(v).Valid() }),
		SalaryMin:       parseSalaryFilter(req.SalaryMin),
		SalaryMax:       parseSalaryFilter(req.SalaryMax),
		VisaSponsorship: parseVisaFilter(req.VisaSponsorship),
		SkillIDs:        req.SkillIDs,
		Page:            req.Page,
		PageSize:        req.PageSize,
	}

	jobs, total, err := s.jobRepo.Search(db, criteria)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, toJobResponse(&jobs[i]))
	}

	if viewer != nil && viewer.IsSeeker() {
		if err := s.markApplied(db, viewer.ID, responses); err != nil {
			return nil, err
		}
	}

	page, pageSize := criteria.Page, criteria.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = repositories.DefaultJobPageSize
	}

	return &dto.JobListResponse{
		Jobs:       responses,
		Pagination: dto.NewPagination(page, pageSize, total),
	}, nil
}

// GetByID returns the job detail. Inactive jobs are visible only to their
// owner and admins; everyone else gets a 404.
func (s *JobServiceImpl) GetByID(db *gorm.DB, id string, viewer *models.User) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if !job.IsActive && !canManageJob(viewer, job) {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}

	resp := toJobResponse(job)

	if viewer != nil && viewer.IsSeeker() {
		applied, err := s.appRepo.Exists(db, job.ID, viewer.ID)
		if err != nil {
			return nil, err
		}
		resp.HasApplied = &applied
	}

	return &resp, nil
}

func (s *JobServiceImpl) Create(db *gorm.DB, user *models.User, req dto.CreateJobRequest) (*dto.JobResponse, error) {
	if err := validateSalaryRange(req.SalaryMin, req.SalaryMax); err != nil {
		return nil, err
	}
	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Location:            req.Location,
		LocationType:        models.LocationType(req.LocationType),
		JobType:             models.JobType(req.JobType),
		ExperienceLevel:     models.ExperienceLevel(req.ExperienceLevel),
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		Benefits:            req.Benefits,
		VisaSponsorship:     req.VisaSponsorship,
		IsActive:            true,
		PostedByID:          user.ID,
		ApplicationDeadline: deadline,
	}
	if job.ExperienceLevel == "" {
		job.ExperienceLevel = models.ExperienceLevelMid
	}
	if req.SalaryCurrency != "" {
		job.SalaryCurrency = models.Currency(req.SalaryCurrency)
	} else {
		job.SalaryCurrency = models.CurrencyUSD
	}

	err = transact(db, func(tx *gorm.DB) error {
		if err := s.resolveEmployer(tx, user, job, req.CompanyID, req.CompanyName); err != nil {
			return err
		}

		skills, err := s.resolveSkills(tx, req.SkillIDs)
		if err != nil {
			return err
		}
		job.RequiredSkills = skills

		return s.jobRepo.Create(tx, job)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Job posted", "job_id", job.ID, "recruiter_id", user.ID)

	return s.reload(db, job.ID)
}

// Update mutates an owned job. A job owned by someone else renders as not
// found, same as a missing one.
func (s *JobServiceImpl) Update(db *gorm.DB, user *models.User, id string, req dto.UpdateJobRequest) (*dto.JobResponse, error) {
	var job *models.Job

	err := transact(db, func(tx *gorm.DB) error {
		var err error
		job, err = s.findOwned(tx, user, id)
		if err != nil {
			return err
		}

		applyJobUpdate(job, req)

		if err := validateSalaryRange(job.SalaryMin, job.SalaryMax); err != nil {
			return err
		}
		if req.ApplicationDeadline != nil {
			deadline, err := parseDeadline(req.ApplicationDeadline)
			if err != nil {
				return err
			}
			job.ApplicationDeadline = deadline
		}

		if req.CompanyID != nil || req.CompanyName != nil {
			var companyID *string
			companyName := ""
			if req.CompanyID != nil {
				companyID = req.CompanyID
			}
			if req.CompanyName != nil {
				companyName = *req.CompanyName
			}
			job.CompanyID = nil
			job.Company = nil
			if err := s.resolveEmployer(tx, user, job, companyID, companyName); err != nil {
				return err
			}
		}

		if err := s.jobRepo.Update(tx, job); err != nil {
			return err
		}

		if req.SkillIDs != nil {
			skills, err := s.resolveSkills(tx, *req.SkillIDs)
			if err != nil {
				return err
			}
			if err := s.jobRepo.ReplaceSkills(tx, job, skills); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.reload(db, job.ID)
}

func (s *JobServiceImpl) Delete(db *gorm.DB, user *models.User, id string) error {
	if _, err := s.findOwned(db, user, id); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	logger.Info("Job deleted", "job_id", id, "recruiter_id", user.ID)
	return nil
}

func (s *JobServiceImpl) SetActive(db *gorm.DB, user *models.User, id string, active bool) (*dto.JobResponse, error) {
	if _, err := s.findOwned(db, user, id); err != nil {
		return nil, err
	}
	if err := s.jobRepo.SetActive(db, id, active); err != nil {
		return nil, err
	}
	return s.reload(db, id)
}

func (s *JobServiceImpl) ListOwn(db *gorm.DB, user *models.User) ([]dto.MyJobResponse, error) {
	rows, err := s.jobRepo.ListByRecruiter(db, user.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MyJobResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.MyJobResponse{
			JobResponse:      toJobResponse(&rows[i].Job),
			ApplicationCount: rows[i].ApplicationCount,
		})
	}
	return out, nil
}

// findOwned conflates absent and foreign jobs into a single not-found error.
// Admins can manage any job.
func (s *JobServiceImpl) findOwned(db *gorm.DB, user *models.User, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if !canManageJob(user, job) {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}
	return job, nil
}

func canManageJob(user *models.User, job *models.Job) bool {
	if user == nil {
		return false
	}
	return user.ID == job.PostedByID || user.Role == models.UserRoleAdmin
}

func (s *JobServiceImpl) reload(db *gorm.DB, id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	resp := toJobResponse(job)
	return &resp, nil
}

func (s *JobServiceImpl) resolveSkills(db *gorm.DB, ids []string) ([]models.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	skills, err := s.skillRepo.FindByIDs(db, ids)
	if err != nil {
		return nil, err
	}
	if len(skills) != len(ids) {
		return nil, apperrors.NewBadRequestError("One or more skill ids do not exist")
	}
	return skills, nil
}

// resolveEmployer fills the company-or-free-text pair: an explicit company id
// links it, a free-text name stays as typed, and with neither the recruiter's
// own company is used.
func (s *JobServiceImpl) resolveEmployer(db *gorm.DB, user *models.User, job *models.Job, companyID *string, companyName string) error {
	if companyID != nil && *companyID != "" {
		company, err := s.companyRepo.FindByID(db, *companyID)
		if err != nil {
			if errors.Is(err, repositories.ErrCompanyNotFound) {
				return apperrors.NewBadRequestError("Company does not exist")
			}
			return err
		}
		job.CompanyID = &company.ID
		job.CompanyName = company.Name
		return nil
	}

	if name := strings.TrimSpace(companyName); name != "" {
		job.CompanyName = name
		return nil
	}

	company, err := s.companyRepo.FindByCreator(db, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.NewBadRequestError("company_id or company_name is required")
		}
		return err
	}
	job.CompanyID = &company.ID
	job.CompanyName = company.Name
	return nil
}

func (s *JobServiceImpl) markApplied(db *gorm.DB, applicantID string, jobs []dto.JobResponse) error {
	if len(jobs) == 0 {
		return nil
	}
	ids, err := s.appRepo.AppliedJobIDs(db, applicantID)
	if err != nil {
		return err
	}
	applied := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		applied[id] = struct{}{}
	}
	for i := range jobs {
		_, ok := applied[jobs[i].ID]
		v := ok
		jobs[i].HasApplied = &v
	}
	return nil
}

func validateSalaryRange(min, max *int) error {
	if min != nil && max != nil && *min >= *max {
		return apperrors.NewBadRequestError("salary_min must be less than salary_max")
	}
	return nil
}

func parseDeadline(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, apperrors.NewBadRequestError("application_deadline must be a YYYY-MM-DD date")
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return nil, apperrors.NewBadRequestError("application_deadline must not be in the past")
	}
	return &d, nil
}

// parseSalaryFilter is intentionally lenient: seekers paste things like
// "90k" or "-" into the filter form and expect the filter to be ignored.
func parseSalaryFilter(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// parseEnumFilter drops values outside the enum instead of erroring the
// listing, same as the salary and visa filters.
func parseEnumFilter(raw string, valid func(string) bool) string {
	v := strings.TrimSpace(raw)
	if !valid(v) {
		return ""
	}
	return v
}

func parseVisaFilter(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		v := true
		return &v
	case "no":
		v := false
		return &v
	default:
		return nil
	}
}

func applyJobUpdate(j *models.Job, req dto.UpdateJobRequest) {
	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Requirements != nil {
		j.Requirements = *req.Requirements
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.LocationType != nil {
		j.LocationType = models.LocationType(*req.LocationType)
	}
	if req.JobType != nil {
		j.JobType = models.JobType(*req.JobType)
	}
	if req.ExperienceLevel != nil {
		j.ExperienceLevel = models.ExperienceLevel(*req.ExperienceLevel)
	}
	if req.SalaryMin != nil {
		j.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		j.SalaryMax = req.SalaryMax
	}
	if req.SalaryCurrency != nil {
		j.SalaryCurrency = models.Currency(*req.SalaryCurrency)
	}
	if req.Benefits != nil {
		j.Benefits = *req.Benefits
	}
	if req.VisaSponsorship != nil {
		j.VisaSponsorship = *req.VisaSponsorship
	}
	if req.IsActive != nil {
		j.IsActive = *req.IsActive
	}
}
