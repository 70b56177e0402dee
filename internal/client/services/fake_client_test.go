package services

import (
	"context"
	"io"
	"sync"

	"github.com/dmitrijs2005/sprintpilot/internal/client/client"
	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	mu sync.Mutex

	RegisterRet *models.User
	RegisterErr error
	LoginRet    *models.Token
	LoginErr    error
	MeRet       *models.User
	MeErr       error
	PingErr     error

	Projects      []models.Project
	ProjectErr    error
	Created       *models.Project
	UploadRet     *models.UploadResult
	UploadErr     error
	GenerateRet   *models.GenerationResult
	GenerateErr   error
	Epics         []models.Epic
	EpicsErr      error
	Stories       []models.Story
	StoriesErr    error
	Tasks         []models.Task
	TasksErr      error
	ArtifactRet   *models.Artifact
	ExportErr     error
	Sprints       []models.Sprint
	SprintErr     error
	CreatedSprint *models.Sprint

	// arguments captured for assertions
	LastRegister      models.RegisterRequest
	LastLoginUser     string
	LastLoginPass     string
	LastCreate        models.ProjectCreate
	LastUploadName    string
	LastUploadBody    []byte
	LastProvider      string
	LastExportFormat  models.ExportFormat
	LastSprintProject int64
	LastSprintCreate  models.SprintCreate
	Calls             []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) call(name string) {
	f.mu.Lock()
	f.Calls = append(f.Calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	f.call("Register")
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.Token, error) {
	f.call("Login")
	f.LastLoginUser, f.LastLoginPass = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.User, error) {
	f.call("CurrentUser")
	return f.MeRet, f.MeErr
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.call("Ping")
	return f.PingErr
}

func (f *fakeClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	f.call("ListProjects")
	return f.Projects, f.ProjectErr
}

func (f *fakeClient) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	f.call("GetProject")
	if f.ProjectErr != nil {
		return nil, f.ProjectErr
	}
	for i := range f.Projects {
		if f.Projects[i].ID == id {
			return &f.Projects[i], nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Detail: "Project not found"}
}

func (f *fakeClient) CreateProject(ctx context.Context, req models.ProjectCreate) (*models.Project, error) {
	f.call("CreateProject")
	f.LastCreate = req
	return f.Created, f.ProjectErr
}

func (f *fakeClient) UploadSpec(ctx context.Context, id int64, filename string, r io.Reader) (*models.UploadResult, error) {
	f.call("UploadSpec")
	f.LastUploadName = filename
	f.LastUploadBody, _ = io.ReadAll(r)
	return f.UploadRet, f.UploadErr
}

func (f *fakeClient) GenerateSprintPlan(ctx context.Context, id int64, provider string) (*models.GenerationResult, error) {
	f.call("GenerateSprintPlan")
	f.LastProvider = provider
	return f.GenerateRet, f.GenerateErr
}

func (f *fakeClient) ListEpics(ctx context.Context, projectID int64) ([]models.Epic, error) {
	f.call("ListEpics")
	return f.Epics, f.EpicsErr
}

func (f *fakeClient) ListStories(ctx context.Context, projectID, epicID int64) ([]models.Story, error) {
	f.call("ListStories")
	return f.Stories, f.StoriesErr
}

func (f *fakeClient) ListTasks(ctx context.Context, projectID, storyID int64) ([]models.Task, error) {
	f.call("ListTasks")
	return f.Tasks, f.TasksErr
}

func (f *fakeClient) Export(ctx context.Context, projectID int64, format models.ExportFormat) (*models.Artifact, error) {
	f.call("Export")
	f.LastExportFormat = format
	return f.ArtifactRet, f.ExportErr
}

func (f *fakeClient) ListSprints(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	f.call("ListSprints")
	return f.Sprints, f.SprintErr
}

func (f *fakeClient) GetSprint(ctx context.Context, id int64) (*models.Sprint, error) {
	f.call("GetSprint")
	if f.SprintErr != nil {
		return nil, f.SprintErr
	}
	for i := range f.Sprints {
		if f.Sprints[i].ID == id {
			return &f.Sprints[i], nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeClient) CreateSprint(ctx context.Context, projectID int64, req models.SprintCreate) (*models.Sprint, error) {
	f.call("CreateSprint")
	f.LastSprintProject = projectID
	f.LastSprintCreate = req
	return f.CreatedSprint, f.SprintErr
}
