package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,is-user-role"`
}

type filterForm struct {
	JobType         string `form:"job_type" validate:"omitempty,is-job-type"`
	LocationType    string `form:"location_type" validate:"omitempty,is-location-type"`
	ExperienceLevel string `form:"experience_level" validate:"omitempty,is-experience-level"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(registerForm{Email: "not-an-email", Role: "job_seeker"})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Errors, "email")
	assert.NotContains(t, ve.Errors, "Email")
}

func TestValidate_UserRole(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(registerForm{Email: "a@b.co", Role: "job_seeker"}))
	assert.NoError(t, v.Validate(registerForm{Email: "a@b.co", Role: "recruiter"}))

	// Admins cannot self-register.
	assert.Error(t, v.Validate(registerForm{Email: "a@b.co", Role: "admin"}))
	assert.Error(t, v.Validate(registerForm{Email: "a@b.co", Role: "wizard"}))
}

func TestValidate_EnumRulesAcceptEmpty(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(filterForm{}))
}

func TestValidate_EnumRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(filterForm{JobType: "full_time", LocationType: "remote", ExperienceLevel: "senior"}))

	assert.Error(t, v.Validate(filterForm{JobType: "fulltime"}))
	assert.Error(t, v.Validate(filterForm{LocationType: "moon"}))
	assert.Error(t, v.Validate(filterForm{ExperienceLevel: "guru"}))
}
