package repositories

import (
	"errors"
	"time"

	"jobboard/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

const DefaultNotificationPageSize = 20

// NotificationCriteria narrows a recipient's notification listing.
type NotificationCriteria struct {
	UnreadOnly bool `form:"unread_only"`
	Page       int  `form:"page"`
	PageSize   int  `form:"page_size"`
}

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	CreateBulk(db *gorm.DB, notifications []*models.Notification) error
	ListByRecipient(db *gorm.DB, recipientID string, criteria NotificationCriteria) ([]models.Notification, int64, error)
	UnreadCount(db *gorm.DB, recipientID string) (int64, error)
	// MarkAsRead is recipient-scoped: marking another user's notification is
	// indistinguishable from marking a missing one.
	MarkAsRead(db *gorm.DB, id, recipientID string) error
	MarkAllAsRead(db *gorm.DB, recipientID string) error
	DeleteReadOlderThan(db *gorm.DB, recipientID string, olderThan time.Time) error
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) CreateBulk(db *gorm.DB, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return db.Create(notifications).Error
}

func (r *NotificationRepositoryImpl) ListByRecipient(db *gorm.DB, recipientID string, criteria NotificationCriteria) ([]models.Notification, int64, error) {
	query := db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID)
	if criteria.UnreadOnly {
		query = query.Where("is_read = ?", false)
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
		pageSize = DefaultNotificationPageSize
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *NotificationRepositoryImpl) UnreadCount(db *gorm.DB, recipientID string) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(db *gorm.DB, id, recipientID string) error {
	now := time.Now()
	result := db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(db *gorm.DB, recipientID string) error {
	now := time.Now()
	return db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now}).Error
}

func (r *NotificationRepositoryImpl) DeleteReadOlderThan(db *gorm.DB, recipientID string, olderThan time.Time) error {
	return db.Delete(&models.Notification{},
		"recipient_id = ? AND is_read = ? AND created_at < ?", recipientID, true, olderThan).Error
}
