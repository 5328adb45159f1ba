package dto

type UpdateProfileRequest struct {
	Headline        *string `json:"headline" validate:"omitempty,max=200"`
	Bio             *string `json:"bio" validate:"omitempty,max=5000"`
	Location        *string `json:"location" validate:"omitempty,max=200"`
	Website         *string `json:"website" validate:"omitempty,url,max=300"`
	LinkedIn        *string `json:"linkedin" validate:"omitempty,url,max=300"`
	GitHub          *string `json:"github" validate:"omitempty,url,max=300"`
	ResumeURL       *string `json:"resume_url" validate:"omitempty,url,max=300"`
	CurrentPosition *string `json:"current_position" validate:"omitempty,max=200"`
	YearsExperience *int    `json:"years_experience" validate:"omitempty,min=0,max=60"`
	Education       *string `json:"education" validate:"omitempty,max=2000"`
	Certifications  *string `json:"certifications" validate:"omitempty,max=2000"`
	Visibility      *string `json:"visibility" validate:"omitempty,is-visibility"`
	OpenToWork      *bool   `json:"open_to_work"`

	PreferredSalaryMin *int `json:"preferred_salary_min" validate:"omitempty,min=0"`
	PreferredSalaryMax *int `json:"preferred_salary_max" validate:"omitempty,min=0"`

	// Full replacement of the skill set when present.
	SkillIDs *[]string `json:"skill_ids" validate:"omitempty,dive,uuid"`
}

type ProfileResponse struct {
	UserID          string          `json:"user_id"`
	Headline        string          `json:"headline"`
	Bio             string          `json:"bio"`
	Location        string          `json:"location"`
	Skills          []SkillResponse `json:"skills"`
	Website         string          `json:"website,omitempty"`
	LinkedIn        string          `json:"linkedin,omitempty"`
	GitHub          string          `json:"github,omitempty"`
	ResumeURL       string          `json:"resume_url,omitempty"`
	CurrentPosition string          `json:"current_position,omitempty"`
	YearsExperience int             `json:"years_experience"`
	Education       string          `json:"education,omitempty"`
	Certifications  string          `json:"certifications,omitempty"`
	Visibility      string          `json:"visibility"`
	OpenToWork      bool            `json:"open_to_work"`

	PreferredSalaryMin *int `json:"preferred_salary_min,omitempty"`
	PreferredSalaryMax *int `json:"preferred_salary_max,omitempty"`

	IsComplete bool `json:"is_complete"`
}

// CompletionResponse reports the outcome of the profile completion check.
type CompletionResponse struct {
	ProfileCompleted bool     `json:"profile_completed"`
	MissingFields    []string `json:"missing_fields,omitempty"`
}
