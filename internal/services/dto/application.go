package dto

import "time"

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=10000"`
}

type UpdateApplicationNotesRequest struct {
	Notes string `json:"notes" validate:"max=10000"`
}

type BulkStatusUpdateRequest struct {
	ApplicationIDs []string `json:"application_ids" validate:"required,min=1,dive,uuid"`
	Status         string   `json:"status" validate:"required,is-application-status"`
}

type BulkStatusUpdateResponse struct {
	Updated int      `json:"updated"`
	Skipped []string `json:"skipped,omitempty"`
}

type ApplicationResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	ApplicantID string    `json:"applicant_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	AppliedDate time.Time `json:"applied_date"`
	LastUpdated time.Time `json:"last_updated"`

	// Job is populated on the seeker's own application list.
	Job *JobResponse `json:"job,omitempty"`

	// Applicant and Notes are populated on the recruiter's review list.
	Applicant *ApplicantResponse `json:"applicant,omitempty"`
	Notes     string             `json:"notes,omitempty"`
}

// ApplicantResponse is the recruiter-facing view of who applied.
type ApplicantResponse struct {
	UserID  string           `json:"user_id"`
	Email   string           `json:"email"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Pagination   Pagination            `json:"pagination"`
}
