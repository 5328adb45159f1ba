package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services/dto"
)

// The fakes below are in-memory stand-ins for the repository interfaces.
// They ignore the *gorm.DB argument entirely, so tests install a
// passthrough transact seam.

func passthroughTransactions() func() {
	orig := transact
	transact = func(db *gorm.DB, fn func(tx *gorm.DB) error) error {
		return fn(db)
	}
	return func() { transact = orig }
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (f *fakeJobRepo) add(job *models.Job) *models.Job {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	f.jobs[job.ID] = job
	return job
}

func (f *fakeJobRepo) Create(_ *gorm.DB, job *models.Job) error {
	f.add(job)
	return nil
}

func (f *fakeJobRepo) FindByID(_ *gorm.DB, id string) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}

func (f *fakeJobRepo) FindActiveByID(_ *gorm.DB, id string) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok || !job.IsActive {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}

func (f *fakeJobRepo) Update(_ *gorm.DB, job *models.Job) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) ReplaceSkills(_ *gorm.DB, job *models.Job, skills []models.Skill) error {
	job.RequiredSkills = skills
	return nil
}

func (f *fakeJobRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := f.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) SetActive(_ *gorm.DB, id string, active bool) error {
	job, ok := f.jobs[id]
	if !ok {
		return repositories.ErrJobNotFound
	}
	job.IsActive = active
	return nil
}

func (f *fakeJobRepo) ListByRecruiter(_ *gorm.DB, recruiterID string) ([]repositories.JobWithApplicationCount, error) {
	var out []repositories.JobWithApplicationCount
	for _, job := range f.jobs {
		if job.PostedByID == recruiterID {
			out = append(out, repositories.JobWithApplicationCount{Job: *job})
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Search(_ *gorm.DB, criteria repositories.JobSearchCriteria) ([]models.Job, int64, error) {
	var out []models.Job
	for _, job := range f.jobs {
		if job.IsActive {
			out = append(out, *job)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeJobRepo) DeactivateExpired(_ *gorm.DB, today time.Time) (int64, error) {
	var n int64
	for _, job := range f.jobs {
		if job.IsActive && job.DeadlinePassed(today) {
			job.IsActive = false
			n++
		}
	}
	return n, nil
}

type fakeApplicationRepo struct {
	apps map[string]*models.Application
	jobs *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]*models.Application), jobs: jobs}
}

func (f *fakeApplicationRepo) Create(_ *gorm.DB, app *models.Application) error {
	for _, existing := range f.apps {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return repositories.ErrDuplicateApplication
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.AppliedDate = time.Now()
	f.apps[app.ID] = app
	return nil
}

func (f *fakeApplicationRepo) FindByID(_ *gorm.DB, id string) (*models.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeApplicationRepo) Exists(_ *gorm.DB, jobID, applicantID string) (bool, error) {
	for _, app := range f.apps {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) ListByApplicant(_ *gorm.DB, applicantID string, page, pageSize int) ([]models.Application, int64, error) {
	var out []models.Application
	for _, app := range f.apps {
		if app.ApplicantID == applicantID {
			out = append(out, *app)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeApplicationRepo) ListByJob(_ *gorm.DB, jobID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range f.apps {
		if app.JobID == jobID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) AppliedJobIDs(_ *gorm.DB, applicantID string) ([]string, error) {
	var out []string
	for _, app := range f.apps {
		if app.ApplicantID == applicantID {
			out = append(out, app.JobID)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) DeleteOwned(_ *gorm.DB, id, applicantID string) error {
	app, ok := f.apps[id]
	if !ok || app.ApplicantID != applicantID {
		return repositories.ErrApplicationNotFound
	}
	delete(f.apps, id)
	return nil
}

func (f *fakeApplicationRepo) FindOwnedByRecruiter(_ *gorm.DB, ids []string, recruiterID string) ([]models.Application, error) {
	var out []models.Application
	for _, id := range ids {
		app, ok := f.apps[id]
		if !ok {
			continue
		}
		job, jobOK := f.jobs.jobs[app.JobID]
		if !jobOK || job.PostedByID != recruiterID {
			continue
		}
		out = append(out, *app)
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ *gorm.DB, id string, status models.ApplicationStatus) error {
	app, ok := f.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	app.Status = status
	app.LastUpdated = time.Now()
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*models.Company)}
}

func (f *fakeCompanyRepo) add(c *models.Company) *models.Company {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	f.companies[c.ID] = c
	return c
}

func (f *fakeCompanyRepo) Create(_ *gorm.DB, c *models.Company) error {
	f.add(c)
	return nil
}

func (f *fakeCompanyRepo) FindByID(_ *gorm.DB, id string) (*models.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, repositories.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) FindByName(_ *gorm.DB, name string) (*models.Company, error) {
	for _, c := range f.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) FindByCreator(_ *gorm.DB, userID string) (*models.Company, error) {
	for _, c := range f.companies {
		if c.CreatedByID != nil && *c.CreatedByID == userID {
			return c, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) Update(_ *gorm.DB, c *models.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetOrCreate(_ *gorm.DB, name, userID string) (*models.Company, error) {
	if c, err := f.FindByName(nil, name); err == nil {
		return c, nil
	}
	return f.add(&models.Company{Name: name, CreatedByID: &userID}), nil
}

type fakeSkillRepo struct {
	skills map[string]*models.Skill
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: make(map[string]*models.Skill)}
}

func (f *fakeSkillRepo) add(name string) *models.Skill {
	s := &models.Skill{Name: name}
	s.ID = uuid.NewString()
	f.skills[s.ID] = s
	return s
}

func (f *fakeSkillRepo) List(_ *gorm.DB) ([]models.Skill, error) {
	var out []models.Skill
	for _, s := range f.skills {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSkillRepo) FindByID(_ *gorm.DB, id string) (*models.Skill, error) {
	s, ok := f.skills[id]
	if !ok {
		return nil, repositories.ErrSkillNotFound
	}
	return s, nil
}

func (f *fakeSkillRepo) FindByIDs(_ *gorm.DB, ids []string) ([]models.Skill, error) {
	var out []models.Skill
	for _, id := range ids {
		if s, ok := f.skills[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSkillRepo) Create(_ *gorm.DB, s *models.Skill) error {
	for _, existing := range f.skills {
		if existing.Name == s.Name {
			return repositories.ErrSkillAlreadyExists
		}
	}
	s.ID = uuid.NewString()
	f.skills[s.ID] = s
	return nil
}

func (f *fakeSkillRepo) Update(_ *gorm.DB, s *models.Skill) error {
	f.skills[s.ID] = s
	return nil
}

func (f *fakeSkillRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := f.skills[id]; !ok {
		return repositories.ErrSkillNotFound
	}
	delete(f.skills, id)
	return nil
}

// fakeNotifier records what the application workflow asked to deliver.
type fakeNotifier struct {
	newApplications int
	statusChanges   []models.ApplicationStatus
	recipients      []string
}

func (f *fakeNotifier) ListOwn(_ *gorm.DB, _ string, _ repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	return nil, nil
}

func (f *fakeNotifier) NotifyNewApplication(_ *gorm.DB, job *models.Job, applicant *models.User) error {
	f.newApplications++
	f.recipients = append(f.recipients, job.PostedByID)
	return nil
}

func (f *fakeNotifier) NotifyStatusChange(_ *gorm.DB, apps []*models.Application, _ *models.Job, status models.ApplicationStatus) error {
	for _, app := range apps {
		f.statusChanges = append(f.statusChanges, status)
		f.recipients = append(f.recipients, app.ApplicantID)
	}
	return nil
}

func (f *fakeNotifier) MarkRead(_ *gorm.DB, _, _ string) error { return nil }
func (f *fakeNotifier) MarkAllRead(_ *gorm.DB, _ string) error { return nil }
