package models

import "time"

// Application links a job seeker to a job. At most one row exists per
// (job, applicant) pair, enforced by the composite unique index.
type Application struct {
	ID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JobID       string `gorm:"not null;uniqueIndex:idx_applications_job_applicant"`
	Job         *Job   `gorm:"foreignKey:JobID"`
	ApplicantID string `gorm:"not null;uniqueIndex:idx_applications_job_applicant"`
	Applicant   *User  `gorm:"foreignKey:ApplicantID"`

	CoverLetter string
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'applied'"`
	Notes       string

	AppliedDate time.Time `gorm:"autoCreateTime"`
	LastUpdated time.Time `gorm:"autoUpdateTime"`
}

// forwardTransitions is the recruiter-driven progression. Rejection is
// additionally reachable from any non-terminal state, and re-applying the
// current status is a no-op; see CanTransition.
var forwardTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:            {ApplicationStatusReview},
	ApplicationStatusReview:             {ApplicationStatusInterviewScheduled},
	ApplicationStatusInterviewScheduled: {ApplicationStatusInterviewCompleted},
	ApplicationStatusInterviewCompleted: {ApplicationStatusOffer, ApplicationStatusRejected},
	ApplicationStatusOffer:              {ApplicationStatusAccepted, ApplicationStatusRejected},
}

// Terminal reports whether no further status change is possible.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// CanTransition reports whether a status change from s to target is allowed.
// Same-status is always allowed so bulk actions stay idempotent; the withdrawn
// value is never a transition target because withdrawal deletes the row.
func (s ApplicationStatus) CanTransition(target ApplicationStatus) bool {
	if target == ApplicationStatusWithdrawn {
		return false
	}
	if s == target {
		return true
	}
	if s.Terminal() {
		return false
	}
	if target == ApplicationStatusRejected {
		return true
	}
	for _, next := range forwardTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// CanTransition reports whether the application may move to target from its
// current status.
func (a *Application) CanTransition(target ApplicationStatus) bool {
	return a.Status.CanTransition(target)
}
