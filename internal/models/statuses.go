package models

type UserRole string
type ApplicationStatus string
type JobType string
type LocationType string
type ExperienceLevel string
type Currency string
type Visibility string
type NotificationType string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"

	ApplicationStatusApplied            ApplicationStatus = "applied"
	ApplicationStatusReview             ApplicationStatus = "review"
	ApplicationStatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationStatusInterviewCompleted ApplicationStatus = "interview_completed"
	ApplicationStatusOffer              ApplicationStatus = "offer"
	ApplicationStatusAccepted           ApplicationStatus = "accepted"
	ApplicationStatusRejected           ApplicationStatus = "rejected"
	// Withdrawn is part of the wire enum but never stored: withdrawal deletes
	// the application row instead of tagging it.
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"

	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"

	LocationTypeRemote LocationType = "remote"
	LocationTypeOnsite LocationType = "onsite"
	LocationTypeHybrid LocationType = "hybrid"

	ExperienceLevelEntry  ExperienceLevel = "entry"
	ExperienceLevelMid    ExperienceLevel = "mid"
	ExperienceLevelSenior ExperienceLevel = "senior"
	ExperienceLevelLead   ExperienceLevel = "lead"

	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyJPY Currency = "JPY"

	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"

	NotificationTypeApplicationStatus NotificationType = "application_status"
	NotificationTypeNewJobMatch       NotificationType = "new_job_match"
	NotificationTypeMessage           NotificationType = "message"
	NotificationTypeSystem            NotificationType = "system"
)

var validJobTypes = map[JobType]bool{
	JobTypeFullTime:   true,
	JobTypePartTime:   true,
	JobTypeContract:   true,
	JobTypeInternship: true,
}

var validLocationTypes = map[LocationType]bool{
	LocationTypeRemote: true,
	LocationTypeOnsite: true,
	LocationTypeHybrid: true,
}

var validExperienceLevels = map[ExperienceLevel]bool{
	ExperienceLevelEntry:  true,
	ExperienceLevelMid:    true,
	ExperienceLevelSenior: true,
	ExperienceLevelLead:   true,
}

var validCurrencies = map[Currency]bool{
	CurrencyUSD: true,
	CurrencyEUR: true,
	CurrencyGBP: true,
	CurrencyCAD: true,
	CurrencyAUD: true,
	CurrencyJPY: true,
}

var validApplicationStatuses = map[ApplicationStatus]bool{
	ApplicationStatusApplied:            true,
	ApplicationStatusReview:             true,
	ApplicationStatusInterviewScheduled: true,
	ApplicationStatusInterviewCompleted: true,
	ApplicationStatusOffer:              true,
	ApplicationStatusAccepted:           true,
	ApplicationStatusRejected:           true,
	ApplicationStatusWithdrawn:          true,
}

func (t JobType) Valid() bool            { return validJobTypes[t] }
func (t LocationType) Valid() bool       { return validLocationTypes[t] }
func (l ExperienceLevel) Valid() bool    { return validExperienceLevels[l] }
func (c Currency) Valid() bool           { return validCurrencies[c] }
func (s ApplicationStatus) Valid() bool  { return validApplicationStatuses[s] }

func (r UserRole) Valid() bool {
	return r == UserRoleJobSeeker || r == UserRoleRecruiter || r == UserRoleAdmin
}

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}
