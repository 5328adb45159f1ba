package models

import "time"

type User struct {
	BaseModel
	Email            string   `gorm:"uniqueIndex;not null"`
	PasswordHash     string   `gorm:"not null"`
	Role             UserRole `gorm:"type:varchar(20);not null"`
	EmailVerified    bool     `gorm:"default:false"`
	ProfileCompleted bool     `gorm:"default:false"`

	// Relations
	Profile       *Profile       `gorm:"foreignKey:UserID"`
	Company       *Company       `gorm:"foreignKey:CreatedByID"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID"`
}

// IsSeeker reports whether the user browses and applies to jobs.
func (u *User) IsSeeker() bool {
	return u.Role == UserRoleJobSeeker
}

// IsRecruiter reports whether the user posts and manages jobs.
func (u *User) IsRecruiter() bool {
	return u.Role == UserRoleRecruiter
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
