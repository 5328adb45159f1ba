package models

import "time"

type Job struct {
	BaseModel
	Title        string `gorm:"not null"`
	Description  string `gorm:"not null"`
	Requirements string

	// The employer is either a normalized Company row or the free-text name
	// typed on the posting form. Use Employer() instead of reading the pair.
	CompanyID   *string  `gorm:"index"`
	Company     *Company `gorm:"foreignKey:CompanyID"`
	CompanyName string

	Location        string          `gorm:"not null"`
	LocationType    LocationType    `gorm:"type:varchar(20);not null"`
	JobType         JobType         `gorm:"type:varchar(20);not null"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20);not null;default:'mid'"`

	SalaryMin      *int
	SalaryMax      *int
	SalaryCurrency Currency `gorm:"type:varchar(3);not null;default:'USD'"`

	RequiredSkills []Skill `gorm:"many2many:job_skills"`
	Benefits       string

	VisaSponsorship     bool `gorm:"default:false"`
	IsActive            bool `gorm:"default:true;index"`
	PostedByID          string `gorm:"not null;index"`
	PostedBy            *User  `gorm:"foreignKey:PostedByID"`
	ApplicationDeadline *time.Time
}

// Employer is the tagged union over the company-or-free-text duality: either
// Linked carries the Company row, or FreeText carries the plain name.
type Employer struct {
	Linked   *Company
	FreeText string
}

// Name resolves the display name regardless of which variant is set.
func (e Employer) Name() string {
	if e.Linked != nil {
		return e.Linked.Name
	}
	return e.FreeText
}

// Employer returns the job's employer as a total, exhaustive value.
// The Company relation must be preloaded for the Linked variant to surface.
func (j *Job) Employer() Employer {
	if j.Company != nil {
		return Employer{Linked: j.Company}
	}
	return Employer{FreeText: j.CompanyName}
}

// DeadlinePassed reports whether the application deadline, if set, is before
// the given day.
func (j *Job) DeadlinePassed(now time.Time) bool {
	if j.ApplicationDeadline == nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return j.ApplicationDeadline.Before(today)
}
