package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
)

// Client is the typed surface of the backend API.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.Token, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Ping(ctx context.Context) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	CreateProject(ctx context.Context, req models.ProjectCreate) (*models.Project, error)
	UploadSpec(ctx context.Context, id int64, filename string, r io.Reader) (*models.UploadResult, error)
	GenerateSprintPlan(ctx context.Context, id int64, provider string) (*models.GenerationResult, error)

	ListEpics(ctx context.Context, projectID int64) ([]models.Epic, error)
	ListStories(ctx context.Context, projectID, epicID int64) ([]models.Story, error)
	ListTasks(ctx context.Context, projectID, storyID int64) ([]models.Task, error)
	Export(ctx context.Context, projectID int64, format models.ExportFormat) (*models.Artifact, error)

	ListSprints(ctx context.Context, projectID int64) ([]models.Sprint, error)
	GetSprint(ctx context.Context, id int64) (*models.Sprint, error)
	CreateSprint(ctx context.Context, projectID int64, req models.SprintCreate) (*models.Sprint, error)
}

var _ Client = (*HTTPClient)(nil)
