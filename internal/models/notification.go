package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	RecipientID string           `gorm:"not null;index"`
	Recipient   *User            `gorm:"foreignKey:RecipientID"`
	Type        NotificationType `gorm:"type:varchar(20);not null"`
	Title       string           `gorm:"not null"`
	Message     string
	Data        datatypes.JSON `gorm:"type:jsonb"` // {"job_id": "...", "application_id": "..."}
	IsRead      bool           `gorm:"default:false"`
	ReadAt      *time.Time

	RelatedJobID         *string
	RelatedApplicationID *string
}
