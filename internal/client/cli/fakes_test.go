package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/sprintpilot/internal/client/export"
	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
	"github.com/dmitrijs2005/sprintpilot/internal/client/session"
)

// stubInputs answers getSimpleText prompts in order and getPassword with password.
func stubInputs(t *testing.T, password []byte, answers ...string) {
	t.Helper()
	origST, origGP, origML := getSimpleText, getPassword, getMultiline
	next := func() string {
		if len(answers) == 0 {
			return ""
		}
		a := answers[0]
		answers = answers[1:]
		return a
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origGP, origML
	})
}

func newTestApp() (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{out: &out, reader: bufio.NewReader(strings.NewReader(""))}, &out
}

type fakeAuth struct {
	loggedIn bool
	userName string

	regEmail, regName string
	regPass           []byte
	regUser           *models.User
	regErr            error

	loginEmail string
	loginPass  []byte
	loginErr   error

	logoutCalls int
	logoutErr   error

	me     *models.User
	meErr  error
	claims session.Claims
	since  time.Time

	pingErr error
}

func (f *fakeAuth) Register(_ context.Context, email string, pass []byte, fullName string) (*models.User, error) {
	f.regEmail, f.regName, f.regPass = email, fullName, append([]byte(nil), pass...)
	if f.regErr != nil {
		return f.regUser, f.regErr
	}
	f.loggedIn = true
	return f.regUser, nil
}
func (f *fakeAuth) Login(_ context.Context, email string, pass []byte) error {
	f.loginEmail, f.loginPass = email, append([]byte(nil), pass...)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn, f.userName = true, email
	return nil
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	f.loggedIn = false
	return f.logoutErr
}
func (f *fakeAuth) CurrentUser(context.Context) (*models.User, error) { return f.me, f.meErr }
func (f *fakeAuth) Ping(context.Context) error                        { return f.pingErr }
func (f *fakeAuth) LoggedIn() bool                                    { return f.loggedIn }
func (f *fakeAuth) UserName(context.Context) (string, error)          { return f.userName, nil }
func (f *fakeAuth) LoggedInSince(context.Context) (time.Time, error)  { return f.since, nil }
func (f *fakeAuth) Claims() (session.Claims, error)                   { return f.claims, nil }

type fakeProjects struct {
	projects []models.Project
	project  *models.Project
	err      error

	createdName, createdDesc string
	uploadID                 int64
	uploadPath               string
	genID                    int64
	genProvider              string
	genResult                *models.GenerationResult
}

func (f *fakeProjects) List(context.Context) ([]models.Project, error) { return f.projects, f.err }
func (f *fakeProjects) Get(_ context.Context, id int64) (*models.Project, error) {
	return f.project, f.err
}
func (f *fakeProjects) Create(_ context.Context, name, desc string) (*models.Project, error) {
	f.createdName, f.createdDesc = name, desc
	if f.err != nil {
		return nil, f.err
	}
	return &models.Project{ID: 11, Name: name}, nil
}
func (f *fakeProjects) UploadSpec(_ context.Context, id int64, path string) (*models.UploadResult, error) {
	f.uploadID, f.uploadPath = id, path
	if f.err != nil {
		return nil, f.err
	}
	return &models.UploadResult{Message: "Spec uploaded", ContentLength: 120}, nil
}
func (f *fakeProjects) Generate(_ context.Context, id int64, provider string) (*models.GenerationResult, error) {
	f.genID, f.genProvider = id, provider
	return f.genResult, f.err
}

type fakePlan struct {
	tree    *models.PlanTree
	epics   []models.Epic
	stories []models.Story
	tasks   []models.Task
	err     error

	projectID, parentID int64
}

func (f *fakePlan) Plan(_ context.Context, id int64) (*models.PlanTree, error) {
	f.projectID = id
	return f.tree, f.err
}
func (f *fakePlan) Epics(_ context.Context, id int64) ([]models.Epic, error) {
	f.projectID = id
	return f.epics, f.err
}
func (f *fakePlan) Stories(_ context.Context, id, epicID int64) ([]models.Story, error) {
	f.projectID, f.parentID = id, epicID
	return f.stories, f.err
}
func (f *fakePlan) Tasks(_ context.Context, id, storyID int64) ([]models.Task, error) {
	f.projectID, f.parentID = id, storyID
	return f.tasks, f.err
}

type fakeSprints struct {
	sprints []models.Sprint
	sprint  *models.Sprint
	err     error

	createdFor int64
	created    models.SprintCreate
}

func (f *fakeSprints) List(context.Context, int64) ([]models.Sprint, error) { return f.sprints, f.err }
func (f *fakeSprints) Get(context.Context, int64) (*models.Sprint, error)   { return f.sprint, f.err }
func (f *fakeSprints) Create(_ context.Context, projectID int64, req models.SprintCreate) (*models.Sprint, error) {
	f.createdFor, f.created = projectID, req
	if f.err != nil {
		return nil, f.err
	}
	return &models.Sprint{ID: 5, ProjectID: projectID, Name: req.Name}, nil
}

type fakeExport struct {
	projectID int64
	format    models.ExportFormat
	sink      export.Sink
	location  string
	err       error
}

func (f *fakeExport) Export(_ context.Context, id int64, format models.ExportFormat, sink export.Sink) (string, error) {
	f.projectID, f.format, f.sink = id, format, sink
	return f.location, f.err
}

type nopSink struct{}

func (nopSink) Save(context.Context, *models.Artifact) (string, error) { return "", nil }
