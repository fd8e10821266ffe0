package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/jobboard/internal/client/config"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/client/session"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

// ------------ helpers ------------

// readerFromLines feeds each line as one answer; blank answers count.
func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	old := readPassword
	i := 0
	readPassword = func(int) ([]byte, error) {
		pw := pws[i%len(pws)]
		i++
		return []byte(pw), nil
	}
	t.Cleanup(func() { readPassword = old })
}

type testApp struct {
	*App
	out     *bytes.Buffer
	auth    *fakeAuth
	jobs    *fakeJobs
	resumes *fakeResumes
	skills  *fakeSkills
}

func newTestApp(lines ...string) *testApp {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	out := &bytes.Buffer{}
	a := newApp(cfg, logging.Discard(), readerFromLines(lines...), out)

	ta := &testApp{
		App:     a,
		out:     out,
		auth:    &fakeAuth{},
		jobs:    &fakeJobs{},
		resumes: &fakeResumes{},
		skills:  &fakeSkills{},
	}
	a.authService = ta.auth
	a.jobService = ta.jobs
	a.resumeService = ta.resumes
	a.skillService = ta.skills
	return ta
}

// ------------ fake services ------------

type fakeAuth struct {
	loginEmail, loginPassword string
	loginErr                  error

	registered  models.RegisterRequest
	registerIn  bool
	registerErr error

	loggedOut bool

	verifyToken string
	resetEmail  string
	resetData   models.PasswordResetConfirm
	publicErr   error

	info       *session.Info
	sessionErr error
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) error {
	f.loginEmail, f.loginPassword = email, password
	return f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, data models.RegisterRequest) (bool, error) {
	f.registered = data
	return f.registerIn, f.registerErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedOut = true
	return nil
}

func (f *fakeAuth) VerifyEmail(ctx context.Context, token string) error {
	f.verifyToken = token
	return f.publicErr
}

func (f *fakeAuth) RequestPasswordReset(ctx context.Context, email string) error {
	f.resetEmail = email
	return f.publicErr
}

func (f *fakeAuth) ResetPassword(ctx context.Context, data models.PasswordResetConfirm) error {
	f.resetData = data
	return f.publicErr
}

func (f *fakeAuth) Session(ctx context.Context) (*session.Info, error) {
	if f.sessionErr != nil {
		return nil, f.sessionErr
	}
	if f.info == nil {
		return nil, session.ErrNoSession
	}
	return f.info, nil
}

type fakeJobs struct {
	filters models.JobFilters
	list    []models.Job
	job     *models.Job
	created models.Job
	err     error
}

func (f *fakeJobs) List(ctx context.Context, filters models.JobFilters) ([]models.Job, error) {
	f.filters = filters
	return f.list, f.err
}

func (f *fakeJobs) Get(ctx context.Context, id int64) (*models.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.job, nil
}

func (f *fakeJobs) Create(ctx context.Context, job models.Job) (*models.Job, error) {
	f.created = job
	if f.err != nil {
		return nil, f.err
	}
	job.ID = 100
	return &job, nil
}

func (f *fakeJobs) Update(ctx context.Context, id int64, job models.Job) (*models.Job, error) {
	return &job, f.err
}

func (f *fakeJobs) MatchResumes(ctx context.Context, id int64, resumeIDs []int64) ([]models.Match, error) {
	return nil, f.err
}

func (f *fakeJobs) ResumeMatches(ctx context.Context, id int64) ([]models.Match, error) {
	return nil, f.err
}

type fakeResumes struct {
	list []models.Resume

	uploadTitle, uploadPath string
	uploadErr               error

	parsedID int64
	parsed   *models.Resume
	parseErr error

	feedback *models.Feedback

	matchID  int64
	matchIDs []int64
	matches  []models.Match
	err      error
}

func (f *fakeResumes) List(ctx context.Context) ([]models.Resume, error) { return f.list, f.err }

func (f *fakeResumes) Get(ctx context.Context, id int64) (*models.Resume, error) {
	return &models.Resume{ID: id}, f.err
}

func (f *fakeResumes) Upload(ctx context.Context, title, filePath string) (*models.Resume, error) {
	f.uploadTitle, f.uploadPath = title, filePath
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &models.Resume{ID: 12, Title: title}, nil
}

func (f *fakeResumes) Parse(ctx context.Context, id int64) (*models.Resume, error) {
	f.parsedID = id
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return f.parsed, nil
}

func (f *fakeResumes) GenerateFeedback(ctx context.Context, id int64) (*models.Feedback, error) {
	return f.feedback, f.err
}

func (f *fakeResumes) MatchJobs(ctx context.Context, id int64, jobIDs []int64) ([]models.Match, error) {
	f.matchID, f.matchIDs = id, jobIDs
	return f.matches, f.err
}

func (f *fakeResumes) JobMatches(ctx context.Context, id int64) ([]models.Match, error) {
	f.matchID = id
	return f.matches, f.err
}

type fakeSkills struct {
	search string
	list   []models.Skill
	err    error
}

func (f *fakeSkills) List(ctx context.Context, search string) ([]models.Skill, error) {
	f.search = search
	return f.list, f.err
}

func (f *fakeSkills) Create(ctx context.Context, skill models.Skill) (*models.Skill, error) {
	return &skill, f.err
}
