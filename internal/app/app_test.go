package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/email"
	"jobboard/internal/services/dto"
	"jobboard/pkg/apperrors"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "e2e-test-secret"
	config.AppConfig.JWT.TTL = 5

	gin.SetMode(gin.TestMode)

	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedSkills(db))

	return SetupRouter(db, email.NoopProvider{})
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) apperrors.ErrorCode {
	t.Helper()
	var resp apperrors.ErrorResponse
	decode(t, w, &resp)
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

// TestHiringFlow walks both sides of the marketplace through the whole
// lifecycle: signup, the completion gate, posting, applying, review,
// notification, withdrawal.
func TestHiringFlow(t *testing.T) {
	r := testRouter(t)
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	// Recruiter signs up with a company name.
	var recruiter dto.AuthResponse
	w := do(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":        "recruiter+" + suffix + "@example.test",
		"password":     "s3cret-pass",
		"role":         "recruiter",
		"company_name": "Acme " + suffix,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, w, &recruiter)
	assert.False(t, recruiter.User.ProfileCompleted)

	jobPayload := gin.H{
		"title":         "Backend Engineer",
		"description":   "Build Go services",
		"location":      "Berlin",
		"location_type": "remote",
		"job_type":      "full_time",
		"salary_min":    60000,
		"salary_max":    90000,
	}

	// Posting is gated until the company page is filled in.
	w = do(t, r, http.MethodPost, "/api/v1/jobs", recruiter.AccessToken, jobPayload)
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	assert.Equal(t, apperrors.CodeProfileIncomplete, errorCode(t, w))

	w = do(t, r, http.MethodPut, "/api/v1/companies/me", recruiter.AccessToken, gin.H{
		"description": "We make everything",
		"location":    "Berlin",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var completion dto.CompletionResponse
	w = do(t, r, http.MethodPost, "/api/v1/profiles/me/complete", recruiter.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &completion)
	require.True(t, completion.ProfileCompleted, "missing: %v", completion.MissingFields)

	var job dto.JobResponse
	w = do(t, r, http.MethodPost, "/api/v1/jobs", recruiter.AccessToken, jobPayload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, w, &job)
	assert.Equal(t, "Acme "+suffix, job.CompanyName)
	assert.True(t, job.IsActive)

	// Seeker signs up and hits the same gate on apply.
	var seeker dto.AuthResponse
	w = do(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    "seeker+" + suffix + "@example.test",
		"password": "s3cret-pass",
		"role":     "job_seeker",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, w, &seeker)

	w = do(t, r, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", seeker.AccessToken, gin.H{})
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	assert.Equal(t, apperrors.CodeProfileIncomplete, errorCode(t, w))

	// Browsing stays open while incomplete.
	var list dto.JobListResponse
	w = do(t, r, http.MethodGet, "/api/v1/jobs?q=Backend+Engineer", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &list)
	assert.NotEmpty(t, list.Jobs)

	var skills []dto.SkillResponse
	w = do(t, r, http.MethodGet, "/api/v1/skills", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &skills)
	require.NotEmpty(t, skills)

	w = do(t, r, http.MethodPut, "/api/v1/profiles/me", seeker.AccessToken, gin.H{
		"headline":  "Go developer",
		"bio":       "Ten years of backends",
		"location":  "Berlin",
		"skill_ids": []string{skills[0].ID},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/v1/profiles/me/complete", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &completion)
	require.True(t, completion.ProfileCompleted, "missing: %v", completion.MissingFields)

	// Apply, and applying twice is a conflict.
	w = do(t, r, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", seeker.AccessToken, gin.H{
		"cover_letter": "Hire me",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", seeker.AccessToken, gin.H{})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	var myApps dto.ApplicationListResponse
	w = do(t, r, http.MethodGet, "/api/v1/applications/my", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &myApps)
	require.Len(t, myApps.Applications, 1)
	appID := myApps.Applications[0].ID
	assert.Equal(t, "applied", myApps.Applications[0].Status)

	// The seeker's browse now flags the job as applied.
	var detail dto.JobResponse
	w = do(t, r, http.MethodGet, "/api/v1/jobs/"+job.ID, seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &detail)
	require.NotNil(t, detail.HasApplied)
	assert.True(t, *detail.HasApplied)

	// Recruiter reviews and advances the pipeline.
	var applicants dto.ApplicationListResponse
	w = do(t, r, http.MethodGet, "/api/v1/jobs/"+job.ID+"/applications", recruiter.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &applicants)
	require.Len(t, applicants.Applications, 1)
	require.NotNil(t, applicants.Applications[0].Applicant)

	var bulk dto.BulkStatusUpdateResponse
	w = do(t, r, http.MethodPost, "/api/v1/applications/bulk-status", recruiter.AccessToken, gin.H{
		"application_ids": []string{appID},
		"status":          "review",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &bulk)
	assert.Equal(t, 1, bulk.Updated)
	assert.Empty(t, bulk.Skipped)

	// The status change lands in the seeker's notifications.
	var notifs dto.NotificationListResponse
	w = do(t, r, http.MethodGet, "/api/v1/notifications", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &notifs)
	assert.NotZero(t, notifs.UnreadCount)

	// Withdrawal is a hard delete, so total count drops to zero.
	w = do(t, r, http.MethodDelete, "/api/v1/applications/"+appID, seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/v1/applications/my", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &myApps)
	assert.Empty(t, myApps.Applications)
}

func TestTokenRefreshAndLogout(t *testing.T) {
	r := testRouter(t)
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	var auth dto.AuthResponse
	w := do(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    "refresh+" + suffix + "@example.test",
		"password": "s3cret-pass",
		"role":     "job_seeker",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, w, &auth)

	// Rotation: the old refresh token is consumed by the exchange.
	var rotated dto.AuthResponse
	w = do(t, r, http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh_token": auth.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &rotated)
	assert.NotEqual(t, auth.RefreshToken, rotated.RefreshToken)

	w = do(t, r, http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh_token": auth.RefreshToken})
	require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/v1/auth/logout", "", gin.H{"refresh_token": rotated.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh_token": rotated.RefreshToken})
	require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
}

func TestRoleBoundaries(t *testing.T) {
	r := testRouter(t)
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	var seeker dto.AuthResponse
	w := do(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    "bound+" + suffix + "@example.test",
		"password": "s3cret-pass",
		"role":     "job_seeker",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, w, &seeker)

	// Seekers cannot post jobs or touch the admin skill surface.
	w = do(t, r, http.MethodPost, "/api/v1/jobs", seeker.AccessToken, gin.H{
		"title": "x", "description": "y", "location_type": "remote", "job_type": "full_time",
	})
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/v1/skills", seeker.AccessToken, gin.H{"name": "Nope"})
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// Admin self-registration is rejected at validation.
	w = do(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    "admin+" + suffix + "@example.test",
		"password": "s3cret-pass",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// No token at all on an authenticated surface.
	w = do(t, r, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
}
