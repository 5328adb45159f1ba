package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/models"
	"jobboard/internal/services/dto"
	"jobboard/pkg/apperrors"
)

func TestParseSalaryFilter(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"50000", intPtr(50000)},
		{" 50000 ", intPtr(50000)},
		{"0", intPtr(0)},
		{"", nil},
		{"90k", nil},
		{"abc", nil},
		{"-1", nil},
		{"1.5e4", nil},
	}
	for _, tt := range tests {
		got := parseSalaryFilter(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, "input %q", tt.in)
		} else {
			require.NotNil(t, got, "input %q", tt.in)
			assert.Equal(t, *tt.want, *got)
		}
	}
}

func TestParseVisaFilter(t *testing.T) {
	assert.Equal(t, true, *parseVisaFilter("yes"))
	assert.Equal(t, true, *parseVisaFilter(" YES "))
	assert.Equal(t, false, *parseVisaFilter("no"))

	assert.Nil(t, parseVisaFilter(""))
	assert.Nil(t, parseVisaFilter("maybe"))
	assert.Nil(t, parseVisaFilter("true"))
}

func TestParseEnumFilter(t *testing.T) {
	isJobType := func(v string) bool { return models.JobType(v).Valid() }

	assert.Equal(t, "full_time", parseEnumFilter("full_time", isJobType))
	assert.Equal(t, "full_time", parseEnumFilter(" full_time ", isJobType))

	assert.Equal(t, "", parseEnumFilter("", isJobType))
	assert.Equal(t, "", parseEnumFilter("bogus", isJobType))
	assert.Equal(t, "", parseEnumFilter("FULL_TIME", isJobType))
}

func TestSearch_GarbageFiltersNeverError(t *testing.T) {
	f := newJobFixture(t)
	_, err := f.service.Create(nil, f.recruiter, validCreateRequest())
	require.NoError(t, err)

	resp, err := f.service.Search(nil, dto.SearchJobsRequest{
		JobType:         "bogus",
		LocationType:    "orbit",
		ExperienceLevel: "wizard",
		SalaryMin:       "90k",
		VisaSponsorship: "maybe",
		PageSize:        5000,
	}, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Jobs, 1)
}

func TestValidateSalaryRange(t *testing.T) {
	assert.NoError(t, validateSalaryRange(nil, nil))
	assert.NoError(t, validateSalaryRange(intPtr(50000), nil))
	assert.NoError(t, validateSalaryRange(nil, intPtr(90000)))
	assert.NoError(t, validateSalaryRange(intPtr(50000), intPtr(90000)))

	// Equal bounds are rejected, the range is strict.
	assert.Error(t, validateSalaryRange(intPtr(90000), intPtr(90000)))
	assert.Error(t, validateSalaryRange(intPtr(90000), intPtr(50000)))
}

func TestParseDeadline(t *testing.T) {
	got, err := parseDeadline(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	got, err = parseDeadline(&future)
	require.NoError(t, err)
	require.NotNil(t, got)

	past := "2020-01-01"
	_, err = parseDeadline(&past)
	assert.Error(t, err)

	garbage := "tomorrow"
	_, err = parseDeadline(&garbage)
	assert.Error(t, err)
}

type jobFixture struct {
	service   JobService
	jobs      *fakeJobRepo
	companies *fakeCompanyRepo
	skills    *fakeSkillRepo
	apps      *fakeApplicationRepo
	recruiter *models.User
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	t.Cleanup(passthroughTransactions())

	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	skills := newFakeSkillRepo()
	apps := newFakeApplicationRepo(jobs)

	recruiter := &models.User{Role: models.UserRoleRecruiter}
	recruiter.ID = uuid.NewString()
	companies.add(&models.Company{Name: "Acme Corp", CreatedByID: &recruiter.ID})

	return &jobFixture{
		service:   NewJobService(jobs, companies, skills, apps),
		jobs:      jobs,
		companies: companies,
		skills:    skills,
		apps:      apps,
		recruiter: recruiter,
	}
}

func validCreateRequest() dto.CreateJobRequest {
	return dto.CreateJobRequest{
		Title:        "Backend Engineer",
		Description:  "Build services in Go",
		LocationType: "remote",
		JobType:      "full_time",
	}
}

func TestCreateJob_UsesRecruiterCompanyByDefault(t *testing.T) {
	f := newJobFixture(t)

	resp, err := f.service.Create(nil, f.recruiter, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", resp.CompanyName)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "mid", resp.ExperienceLevel)
	assert.Equal(t, "USD", resp.SalaryCurrency)
}

func TestCreateJob_FreeTextCompany(t *testing.T) {
	f := newJobFixture(t)

	req := validCreateRequest()
	req.CompanyName = "Tiny Startup"

	resp, err := f.service.Create(nil, f.recruiter, req)
	require.NoError(t, err)
	assert.Equal(t, "Tiny Startup", resp.CompanyName)
	assert.Nil(t, resp.Company)
}

func TestCreateJob_InvalidSalaryRange(t *testing.T) {
	f := newJobFixture(t)

	req := validCreateRequest()
	req.SalaryMin = intPtr(90000)
	req.SalaryMax = intPtr(50000)

	_, err := f.service.Create(nil, f.recruiter, req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestCreateJob_UnknownSkill(t *testing.T) {
	f := newJobFixture(t)

	req := validCreateRequest()
	req.SkillIDs = []string{uuid.NewString()}

	_, err := f.service.Create(nil, f.recruiter, req)
	assert.Error(t, err)
}

func TestUpdateJob_OwnerScoped(t *testing.T) {
	f := newJobFixture(t)
	resp, err := f.service.Create(nil, f.recruiter, validCreateRequest())
	require.NoError(t, err)

	stranger := &models.User{Role: models.UserRoleRecruiter}
	stranger.ID = uuid.NewString()

	title := "Hijacked"
	_, err = f.service.Update(nil, stranger, resp.ID, dto.UpdateJobRequest{Title: &title})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUpdateJob_SalaryRevalidatedAgainstMergedState(t *testing.T) {
	f := newJobFixture(t)

	req := validCreateRequest()
	req.SalaryMin = intPtr(50000)
	req.SalaryMax = intPtr(90000)
	resp, err := f.service.Create(nil, f.recruiter, req)
	require.NoError(t, err)

	// Raising only the minimum above the stored maximum must fail.
	_, err = f.service.Update(nil, f.recruiter, resp.ID, dto.UpdateJobRequest{SalaryMin: intPtr(100000)})
	assert.Error(t, err)
}

func TestGetJob_InactiveHiddenFromPublic(t *testing.T) {
	f := newJobFixture(t)
	resp, err := f.service.Create(nil, f.recruiter, validCreateRequest())
	require.NoError(t, err)

	_, err = f.service.SetActive(nil, f.recruiter, resp.ID, false)
	require.NoError(t, err)

	// Anonymous viewer: gone.
	_, err = f.service.GetByID(nil, resp.ID, nil)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// Owner still sees it.
	got, err := f.service.GetByID(nil, resp.ID, f.recruiter)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestGetJob_HasAppliedFlag(t *testing.T) {
	f := newJobFixture(t)
	resp, err := f.service.Create(nil, f.recruiter, validCreateRequest())
	require.NoError(t, err)

	seeker := &models.User{Role: models.UserRoleJobSeeker}
	seeker.ID = uuid.NewString()

	got, err := f.service.GetByID(nil, resp.ID, seeker)
	require.NoError(t, err)
	require.NotNil(t, got.HasApplied)
	assert.False(t, *got.HasApplied)

	require.NoError(t, f.apps.Create(nil, &models.Application{JobID: resp.ID, ApplicantID: seeker.ID}))

	got, err = f.service.GetByID(nil, resp.ID, seeker)
	require.NoError(t, err)
	require.NotNil(t, got.HasApplied)
	assert.True(t, *got.HasApplied)

	// Anonymous viewers get no flag at all.
	got, err = f.service.GetByID(nil, resp.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, got.HasApplied)
}

func intPtr(v int) *int { return &v }
