package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"jobboard/internal/email"
	"jobboard/internal/logger"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services/dto"
	"jobboard/pkg/apperrors"
)

type NotificationService interface {
	ListOwn(db *gorm.DB, userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error)
	MarkRead(db *gorm.DB, userID, id string) error
	MarkAllRead(db *gorm.DB, userID string) error

	NotifyNewApplication(db *gorm.DB, job *models.Job, applicant *models.User) error
	NotifyStatusChange(db *gorm.DB, apps []*models.Application, job *models.Job, status models.ApplicationStatus) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
	}
}

func (s *NotificationServiceImpl) ListOwn(db *gorm.DB, userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	notifications, total, err := s.notificationRepo.ListByRecipient(db, userID, criteria)
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.UnreadCount(db, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, toNotificationResponse(&notifications[i]))
	}

	page, pageSize := criteria.Page, criteria.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = repositories.DefaultNotificationPageSize
	}

	return &dto.NotificationListResponse{
		Notifications: out,
		UnreadCount:   unread,
		Pagination:    dto.NewPagination(page, pageSize, total),
	}, nil
}

func (s *NotificationServiceImpl) MarkRead(db *gorm.DB, userID, id string) error {
	if err := s.notificationRepo.MarkAsRead(db, id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(db *gorm.DB, userID string) error {
	return s.notificationRepo.MarkAllAsRead(db, userID)
}

// NotifyNewApplication tells the job's recruiter someone applied.
func (s *NotificationServiceImpl) NotifyNewApplication(db *gorm.DB, job *models.Job, applicant *models.User) error {
	data, _ := json.Marshal(map[string]string{"job_id": job.ID})
	n := &models.Notification{
		RecipientID:  job.PostedByID,
		Type:         models.NotificationTypeSystem,
		Title:        "New application",
		Message:      fmt.Sprintf("A candidate applied to %q", job.Title),
		Data:         datatypes.JSON(data),
		RelatedJobID: &job.ID,
	}
	if err := s.notificationRepo.Create(db, n); err != nil {
		return err
	}
	s.sendEmail(db, job.PostedByID, n.Title, n.Message)
	return nil
}

// NotifyStatusChange fans one status decision out to every affected applicant.
func (s *NotificationServiceImpl) NotifyStatusChange(db *gorm.DB, apps []*models.Application, job *models.Job, status models.ApplicationStatus) error {
	if len(apps) == 0 {
		return nil
	}

	notifications := make([]*models.Notification, 0, len(apps))
	for _, app := range apps {
		data, _ := json.Marshal(map[string]string{
			"job_id":         app.JobID,
			"application_id": app.ID,
			"status":         string(status),
		})
		notifications = append(notifications, &models.Notification{
			RecipientID:          app.ApplicantID,
			Type:                 models.NotificationTypeApplicationStatus,
			Title:                "Application status updated",
			Message:              fmt.Sprintf("Your application for %q is now %s", job.Title, status),
			Data:                 datatypes.JSON(data),
			RelatedJobID:         &app.JobID,
			RelatedApplicationID: &app.ID,
		})
	}

	if err := s.notificationRepo.CreateBulk(db, notifications); err != nil {
		return err
	}

	for _, n := range notifications {
		s.sendEmail(db, n.RecipientID, n.Title, n.Message)
	}
	return nil
}

// sendEmail is best effort: delivery failure never fails the request.
func (s *NotificationServiceImpl) sendEmail(db *gorm.DB, userID, subject, body string) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		logger.Warn("Notification email skipped, recipient lookup failed", "user_id", userID, "error", err)
		return
	}
	if err := s.emailProvider.Send(user.Email, subject, "<p>"+body+"</p>"); err != nil {
		logger.Warn("Notification email failed", "user_id", userID, "error", err)
	}
}
