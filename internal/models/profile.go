package models

type Profile struct {
	BaseModel
	UserID string `gorm:"uniqueIndex;not null"`
	User   *User  `gorm:"foreignKey:UserID"`

	Headline string
	Bio      string
	Location string
	Skills   []Skill `gorm:"many2many:profile_skills"`

	Website   string
	LinkedIn  string
	GitHub    string
	ResumeURL string

	CurrentPosition string
	YearsExperience *int
	Education       string
	Certifications  string

	Visibility Visibility `gorm:"type:varchar(10);not null;default:'public'"`

	OpenToWork         bool `gorm:"default:true"`
	PreferredSalaryMin *int
	PreferredSalaryMax *int
}

// IsProfileComplete is the single completeness contract for both roles:
// headline, bio and location must be present for everyone; job seekers must
// additionally have at least one skill. Recruiter completeness is checked
// against their company record's fields through the same predicate.
func IsProfileComplete(role UserRole, headline, bio, location string, skillCount int) bool {
	if headline == "" || bio == "" || location == "" {
		return false
	}
	if role == UserRoleJobSeeker {
		return skillCount > 0
	}
	return true
}

// IsComplete evaluates the profile against the contract for the given role.
func (p *Profile) IsComplete(role UserRole) bool {
	return IsProfileComplete(role, p.Headline, p.Bio, p.Location, len(p.Skills))
}
