package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardChain(t *testing.T) {
	steps := []struct {
		from, to ApplicationStatus
	}{
		{ApplicationStatusApplied, ApplicationStatusReview},
		{ApplicationStatusReview, ApplicationStatusInterviewScheduled},
		{ApplicationStatusInterviewScheduled, ApplicationStatusInterviewCompleted},
		{ApplicationStatusInterviewCompleted, ApplicationStatusOffer},
		{ApplicationStatusOffer, ApplicationStatusAccepted},
	}
	for _, s := range steps {
		app := &Application{Status: s.from}
		assert.True(t, app.CanTransition(s.to), "%s -> %s should be allowed", s.from, s.to)
	}
}

func TestCanTransition_NoSkippingStages(t *testing.T) {
	app := &Application{Status: ApplicationStatusApplied}
	assert.False(t, app.CanTransition(ApplicationStatusInterviewScheduled))
	assert.False(t, app.CanTransition(ApplicationStatusOffer))
	assert.False(t, app.CanTransition(ApplicationStatusAccepted))
}

func TestCanTransition_RejectedFromAnyNonTerminal(t *testing.T) {
	for _, from := range []ApplicationStatus{
		ApplicationStatusApplied,
		ApplicationStatusReview,
		ApplicationStatusInterviewScheduled,
		ApplicationStatusInterviewCompleted,
		ApplicationStatusOffer,
	} {
		app := &Application{Status: from}
		assert.True(t, app.CanTransition(ApplicationStatusRejected), "%s -> rejected should be allowed", from)
	}
}

func TestCanTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, from := range []ApplicationStatus{ApplicationStatusAccepted, ApplicationStatusRejected} {
		app := &Application{Status: from}
		for _, to := range []ApplicationStatus{
			ApplicationStatusApplied,
			ApplicationStatusReview,
			ApplicationStatusOffer,
		} {
			assert.False(t, app.CanTransition(to), "%s -> %s should be blocked", from, to)
		}
	}
}

func TestCanTransition_SameStatusIsIdempotent(t *testing.T) {
	for _, s := range []ApplicationStatus{
		ApplicationStatusApplied,
		ApplicationStatusReview,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
	} {
		app := &Application{Status: s}
		assert.True(t, app.CanTransition(s), "%s -> %s (no-op) should be allowed", s, s)
	}
}

func TestCanTransition_WithdrawnIsNeverATarget(t *testing.T) {
	for _, from := range []ApplicationStatus{
		ApplicationStatusApplied,
		ApplicationStatusReview,
		ApplicationStatusOffer,
	} {
		app := &Application{Status: from}
		assert.False(t, app.CanTransition(ApplicationStatusWithdrawn))
	}
}

func TestCanTransition_NoBackwardMoves(t *testing.T) {
	app := &Application{Status: ApplicationStatusInterviewCompleted}
	assert.False(t, app.CanTransition(ApplicationStatusReview))
	assert.False(t, app.CanTransition(ApplicationStatusApplied))
}

func TestCanTransition_StatusAndRecordAgree(t *testing.T) {
	app := &Application{Status: ApplicationStatusReview}
	for _, target := range []ApplicationStatus{
		ApplicationStatusInterviewScheduled,
		ApplicationStatusRejected,
		ApplicationStatusOffer,
		ApplicationStatusWithdrawn,
	} {
		assert.Equal(t, app.Status.CanTransition(target), app.CanTransition(target),
			"record and status receivers disagree for review -> %s", target)
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, ApplicationStatusAccepted.Terminal())
	assert.True(t, ApplicationStatusRejected.Terminal())
	assert.False(t, ApplicationStatusApplied.Terminal())
	assert.False(t, ApplicationStatusOffer.Terminal())
}
