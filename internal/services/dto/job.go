package dto

import "time"

type CreateJobRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"required"`
	Requirements string `json:"requirements" validate:"omitempty"`

	// Either an existing company id or a free-text name. When both are
	// empty the recruiter's own company is used.
	CompanyID   *string `json:"company_id" validate:"omitempty,uuid"`
	CompanyName string  `json:"company_name" validate:"omitempty,max=200"`

	Location        string `json:"location" validate:"omitempty,max=200"`
	LocationType    string `json:"location_type" validate:"required,is-location-type"`
	JobType         string `json:"job_type" validate:"required,is-job-type"`
	ExperienceLevel string `json:"experience_level" validate:"omitempty,is-experience-level"`

	SalaryMin      *int   `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *int   `json:"salary_max" validate:"omitempty,min=0"`
	SalaryCurrency string `json:"salary_currency" validate:"omitempty,is-currency"`

	SkillIDs        []string `json:"skill_ids" validate:"omitempty,dive,uuid"`
	Benefits        string   `json:"benefits" validate:"omitempty"`
	VisaSponsorship bool     `json:"visa_sponsorship"`

	// ISO date, must not be in the past.
	ApplicationDeadline *string `json:"application_deadline" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateJobRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description" validate:"omitempty"`
	Requirements *string `json:"requirements" validate:"omitempty"`

	CompanyID   *string `json:"company_id" validate:"omitempty,uuid"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=200"`

	Location        *string `json:"location" validate:"omitempty,max=200"`
	LocationType    *string `json:"location_type" validate:"omitempty,is-location-type"`
	JobType         *string `json:"job_type" validate:"omitempty,is-job-type"`
	ExperienceLevel *string `json:"experience_level" validate:"omitempty,is-experience-level"`

	SalaryMin      *int    `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *int    `json:"salary_max" validate:"omitempty,min=0"`
	SalaryCurrency *string `json:"salary_currency" validate:"omitempty,is-currency"`

	SkillIDs        *[]string `json:"skill_ids" validate:"omitempty,dive,uuid"`
	Benefits        *string   `json:"benefits" validate:"omitempty"`
	VisaSponsorship *bool     `json:"visa_sponsorship"`
	IsActive        *bool     `json:"is_active"`

	ApplicationDeadline *string `json:"application_deadline" validate:"omitempty,datetime=2006-01-02"`
}

// SearchJobsRequest carries raw query-string filters. The listing never
// rejects a filter value: salary, visa and enum inputs are all normalized
// leniently in the service, and anything unrecognized is dropped.
type SearchJobsRequest struct {
	Query           string   `form:"q"`
	Location        string   `form:"location"`
	JobType         string   `form:"job_type"`
	LocationType    string   `form:"location_type"`
	ExperienceLevel string   `form:"experience_level"`
	SalaryMin       string   `form:"salary_min"`
	SalaryMax       string   `form:"salary_max"`
	VisaSponsorship string   `form:"visa_sponsorship"`
	SkillIDs        []string `form:"skills"`
	Page            int      `form:"page"`
	PageSize        int      `form:"page_size"`
}

type JobResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements,omitempty"`

	// Company is set when the job is linked to a company record;
	// CompanyName always carries the display name.
	Company     *CompanyResponse `json:"company,omitempty"`
	CompanyName string           `json:"company_name"`

	Location        string `json:"location,omitempty"`
	LocationType    string `json:"location_type"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`

	SalaryMin      *int   `json:"salary_min,omitempty"`
	SalaryMax      *int   `json:"salary_max,omitempty"`
	SalaryCurrency string `json:"salary_currency"`

	RequiredSkills  []SkillResponse `json:"required_skills"`
	Benefits        string          `json:"benefits,omitempty"`
	VisaSponsorship bool            `json:"visa_sponsorship"`
	IsActive        bool            `json:"is_active"`

	ApplicationDeadline *string   `json:"application_deadline,omitempty"`
	PostedByID          string    `json:"posted_by_id"`
	CreatedAt           time.Time `json:"created_at"`

	// HasApplied is present only for authenticated job seekers.
	HasApplied *bool `json:"has_applied,omitempty"`
}

type JobListResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	Pagination Pagination    `json:"pagination"`
}

// MyJobResponse is a recruiter's own posting with its applicant count.
type MyJobResponse struct {
	JobResponse
	ApplicationCount int64 `json:"application_count"`
}
