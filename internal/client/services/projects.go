package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/sprintpilot/internal/client/client"
	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
	"github.com/dmitrijs2005/sprintpilot/internal/common"
)

// specExtensions are the document types the backend can parse.
var specExtensions = map[string]bool{".pdf": true, ".docx": true, ".txt": true}

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, name, description string) (*models.Project, error)
	UploadSpec(ctx context.Context, id int64, path string) (*models.UploadResult, error)
	Generate(ctx context.Context, id int64, provider string) (*models.GenerationResult, error)
}

type projectService struct {
	client          client.Client
	defaultProvider string
}

// NewProjectService returns a ProjectService. defaultProvider is used by
// Generate when the caller does not pick one.
func NewProjectService(client client.Client, defaultProvider string) ProjectService {
	return &projectService{client: client, defaultProvider: defaultProvider}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	return s.client.ListProjects(ctx)
}

func (s *projectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	return s.client.GetProject(ctx, id)
}

func (s *projectService) Create(ctx context.Context, name, description string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name is required: %w", common.ErrorIncorrectInput)
	}

	p, err := s.client.CreateProject(ctx, models.ProjectCreate{Name: name, Description: description})
	if err != nil {
		return nil, fmt.Errorf("create project error: %w", err)
	}
	return p, nil
}

func (s *projectService) UploadSpec(ctx context.Context, id int64, path string) (*models.UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !specExtensions[ext] {
		return nil, fmt.Errorf("%s: only .pdf, .docx and .txt are supported: %w", path, common.ErrorIncorrectInput)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spec: %w", err)
	}
	defer f.Close()

	res, err := s.client.UploadSpec(ctx, id, filepath.Base(path), f)
	if err != nil {
		return nil, fmt.Errorf("upload spec error: %w", err)
	}
	return res, nil
}

func (s *projectService) Generate(ctx context.Context, id int64, provider string) (*models.GenerationResult, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		provider = s.defaultProvider
	}

	res, err := s.client.GenerateSprintPlan(ctx, id, provider)
	if err != nil {
		return nil, fmt.Errorf("generate with %s: %w", providerLabel(provider), err)
	}
	return res, nil
}

func providerLabel(p string) string {
	if p == "" {
		return "default provider"
	}
	return p
}
