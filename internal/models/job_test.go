package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmployer_LinkedCompanyWins(t *testing.T) {
	company := &Company{Name: "Acme Corp"}
	job := &Job{Company: company, CompanyName: "stale free text"}

	emp := job.Employer()
	assert.NotNil(t, emp.Linked)
	assert.Equal(t, "Acme Corp", emp.Name())
}

func TestEmployer_FreeTextFallback(t *testing.T) {
	job := &Job{CompanyName: "Tiny Startup"}

	emp := job.Employer()
	assert.Nil(t, emp.Linked)
	assert.Equal(t, "Tiny Startup", emp.Name())
}

func TestDeadlinePassed(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	todayMidnight := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&Job{ApplicationDeadline: &yesterday}).DeadlinePassed(now))
	assert.False(t, (&Job{ApplicationDeadline: &tomorrow}).DeadlinePassed(now))
	// Deadline day itself still accepts applications.
	assert.False(t, (&Job{ApplicationDeadline: &todayMidnight}).DeadlinePassed(now))
	assert.False(t, (&Job{}).DeadlinePassed(now))
}
