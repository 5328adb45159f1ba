package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/logger"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services/dto"
	"jobboard/pkg/apperrors"
)

type ApplicationService interface {
	Apply(db *gorm.DB, user *models.User, jobID string, req dto.ApplyRequest) (*dto.ApplicationResponse, error)
	ListOwn(db *gorm.DB, user *models.User, page, pageSize int) (*dto.ApplicationListResponse, error)
	Withdraw(db *gorm.DB, user *models.User, applicationID string) error
	ListForJob(db *gorm.DB, user *models.User, jobID string) (*dto.ApplicationListResponse, error)
	BulkUpdateStatus(db *gorm.DB, user *models.User, req dto.BulkStatusUpdateRequest) (*dto.BulkStatusUpdateResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo             repositories.ApplicationRepository
	jobRepo             repositories.JobRepository
	notificationService NotificationService
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	notificationService NotificationService,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:             appRepo,
		jobRepo:             jobRepo,
		notificationService: notificationService,
	}
}

// Apply files an application against an active job. The database's unique
// (job, applicant) index backstops the duplicate check under concurrency.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, user *models.User, jobID string, req dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	if !user.IsSeeker() {
		return nil, apperrors.ErrInvalidUserRole
	}

	var app *models.Application
	err := transact(db, func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindActiveByID(tx, jobID)
		if err != nil {
			if errors.Is(err, repositories.ErrJobNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return err
		}

		if job.DeadlinePassed(time.Now()) {
			return apperrors.ErrInvalidOperation("application", "The application deadline has passed")
		}

		app = &models.Application{
			JobID:       job.ID,
			ApplicantID: user.ID,
			CoverLetter: req.CoverLetter,
			Status:      models.ApplicationStatusApplied,
		}
		if err := s.appRepo.Create(tx, app); err != nil {
			if errors.Is(err, repositories.ErrDuplicateApplication) {
				return apperrors.ErrConflict(err, "application", "You have already applied to this job")
			}
			return err
		}

		return s.notificationService.NotifyNewApplication(tx, job, user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Application filed", "application_id", app.ID, "job_id", jobID, "applicant_id", user.ID)

	resp := toApplicationResponse(app)
	return &resp, nil
}

func (s *ApplicationServiceImpl) ListOwn(db *gorm.DB, user *models.User, page, pageSize int) (*dto.ApplicationListResponse, error) {
	apps, total, err := s.appRepo.ListByApplicant(db, user.ID, page, pageSize)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, toApplicationResponse(&apps[i]))
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = repositories.DefaultApplicationPageSize
	}

	return &dto.ApplicationListResponse{
		Applications: out,
		Pagination:   dto.NewPagination(page, pageSize, total),
	}, nil
}

// Withdraw removes the caller's application outright. Another seeker's
// application, or a missing one, renders identically as not found.
func (s *ApplicationServiceImpl) Withdraw(db *gorm.DB, user *models.User, applicationID string) error {
	if err := s.appRepo.DeleteOwned(db, applicationID, user.ID); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	logger.Info("Application withdrawn", "application_id", applicationID, "applicant_id", user.ID)
	return nil
}

// ListForJob returns a job's applicants for its owning recruiter, in the
// same list envelope the seeker-side listing uses.
func (s *ApplicationServiceImpl) ListForJob(db *gorm.DB, user *models.User, jobID string) (*dto.ApplicationListResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if !canManageJob(user, job) {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}

	apps, err := s.appRepo.ListByJob(db, jobID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp := toApplicationResponse(&apps[i])
		resp.Notes = apps[i].Notes
		if applicant := apps[i].Applicant; applicant != nil {
			ar := dto.ApplicantResponse{UserID: applicant.ID, Email: applicant.Email}
			if applicant.Profile != nil {
				pr := toProfileResponse(applicant.Profile, applicant.Role)
				ar.Profile = &pr
			}
			resp.Applicant = &ar
		}
		out = append(out, resp)
	}

	pageSize := len(out)
	if pageSize == 0 {
		pageSize = repositories.DefaultApplicationPageSize
	}
	return &dto.ApplicationListResponse{
		Applications: out,
		Pagination:   dto.NewPagination(1, pageSize, int64(len(out))),
	}, nil
}

// BulkUpdateStatus moves a set of owned applications to one target status in
// a single transaction. Applications already in the target status pass
// through untouched, disallowed transitions are reported back as skipped,
// and any id outside the recruiter's jobs fails the whole batch.
func (s *ApplicationServiceImpl) BulkUpdateStatus(db *gorm.DB, user *models.User, req dto.BulkStatusUpdateRequest) (*dto.BulkStatusUpdateResponse, error) {
	target := models.ApplicationStatus(req.Status)
	if target == models.ApplicationStatusWithdrawn {
		return nil, apperrors.ErrInvalidStatus("application", "Applications cannot be moved to withdrawn")
	}

	ids := dedupeIDs(req.ApplicationIDs)

	result := &dto.BulkStatusUpdateResponse{}

	err := transact(db, func(tx *gorm.DB) error {
		apps, err := s.appRepo.FindOwnedByRecruiter(tx, ids, user.ID)
		if err != nil {
			return err
		}
		if len(apps) != len(ids) {
			return apperrors.ErrNotFound(repositories.ErrApplicationNotFound)
		}

		changedByJob := make(map[string][]*models.Application)
		for i := range apps {
			app := &apps[i]
			if app.Status == target {
				result.Updated++
				continue
			}
			if !app.CanTransition(target) {
				result.Skipped = append(result.Skipped, app.ID)
				continue
			}
			if err := s.appRepo.UpdateStatus(tx, app.ID, target); err != nil {
				return err
			}
			app.Status = target
			changedByJob[app.JobID] = append(changedByJob[app.JobID], app)
			result.Updated++
		}

		for jobID, changed := range changedByJob {
			job, err := s.jobRepo.FindByID(tx, jobID)
			if err != nil {
				return err
			}
			if err := s.notificationService.NotifyStatusChange(tx, changed, job, target); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Bulk status update",
		"recruiter_id", user.ID,
		"status", target,
		"updated", result.Updated,
		"skipped", len(result.Skipped))

	return result, nil
}

// dedupeIDs drops repeated ids, preserving first-occurrence order, so a
// doubled selection doesn't trip the all-or-nothing ownership check.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
