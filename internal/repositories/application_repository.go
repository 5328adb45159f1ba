package repositories

import (
	"errors"

	"jobboard/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job")
)

const pgUniqueViolation = "23505"

const DefaultApplicationPageSize = 10

type ApplicationRepository interface {
	// Create inserts the application. A lost duplicate-apply race resolves
	// through the (job_id, applicant_id) unique index and comes back as
	// ErrDuplicateApplication, never as a raw driver error.
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	Exists(db *gorm.DB, jobID, applicantID string) (bool, error)
	ListByApplicant(db *gorm.DB, applicantID string, page, pageSize int) ([]models.Application, int64, error)
	ListByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	// AppliedJobIDs returns the ids of jobs the user has applied to.
	AppliedJobIDs(db *gorm.DB, applicantID string) ([]string, error)
	// DeleteOwned removes the application only when it belongs to applicantID.
	// A zero row count reports ErrApplicationNotFound whether the row is
	// absent or owned by someone else.
	DeleteOwned(db *gorm.DB, id, applicantID string) error
	// FindOwnedByRecruiter loads the given applications restricted to jobs
	// posted by recruiterID. Rows outside that scope are silently dropped.
	FindOwnedByRecruiter(db *gorm.DB, ids []string, recruiterID string) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	err := db.Create(app).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateApplication
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateApplication
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("Job").Preload("Job.Company").Preload("Applicant").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) Exists(db *gorm.DB, jobID, applicantID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) ListByApplicant(db *gorm.DB, applicantID string, page, pageSize int) ([]models.Application, int64, error) {
	query := db.Model(&models.Application{}).Where("applicant_id = ?", applicantID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = DefaultApplicationPageSize
	}

	var apps []models.Application
	err := query.Preload("Job").Preload("Job.Company").
		Order("applied_date DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&apps).Error
	return apps, total, err
}

func (r *ApplicationRepositoryImpl) ListByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Applicant").Preload("Applicant.Profile").Preload("Applicant.Profile.Skills").
		Where("job_id = ?", jobID).
		Order("applied_date DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) AppliedJobIDs(db *gorm.DB, applicantID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.Application{}).
		Where("applicant_id = ?", applicantID).
		Pluck("job_id", &ids).Error
	return ids, err
}

func (r *ApplicationRepositoryImpl) DeleteOwned(db *gorm.DB, id, applicantID string) error {
	result := db.Delete(&models.Application{}, "id = ? AND applicant_id = ?", id, applicantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindOwnedByRecruiter(db *gorm.DB, ids []string, recruiterID string) ([]models.Application, error) {
	var apps []models.Application
	if len(ids) == 0 {
		return apps, nil
	}
	err := db.Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.id IN ? AND jobs.posted_by_id = ?", ids, recruiterID).
		Preload("Job").Preload("Applicant").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
