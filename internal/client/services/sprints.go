package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sprintpilot/internal/client/client"
	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
	"github.com/dmitrijs2005/sprintpilot/internal/common"
)

type SprintService interface {
	List(ctx context.Context, projectID int64) ([]models.Sprint, error)
	Get(ctx context.Context, id int64) (*models.Sprint, error)
	Create(ctx context.Context, projectID int64, req models.SprintCreate) (*models.Sprint, error)
}

type sprintService struct {
	client client.Client
}

func NewSprintService(client client.Client) SprintService {
	return &sprintService{client: client}
}

func (s *sprintService) List(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	return s.client.ListSprints(ctx, projectID)
}

func (s *sprintService) Get(ctx context.Context, id int64) (*models.Sprint, error) {
	return s.client.GetSprint(ctx, id)
}

func (s *sprintService) Create(ctx context.Context, projectID int64, req models.SprintCreate) (*models.Sprint, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("sprint name is required: %w", common.ErrorIncorrectInput)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(req.StartDate.Time) {
		return nil, fmt.Errorf("end date is before start date: %w", common.ErrorIncorrectInput)
	}

	sp, err := s.client.CreateSprint(ctx, projectID, req)
	if err != nil {
		return nil, fmt.Errorf("create sprint error: %w", err)
	}
	return sp, nil
}
