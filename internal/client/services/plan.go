package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/sprintpilot/internal/client/client"
	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
)

// PlanService assembles the generated work breakdown of a project.
type PlanService interface {
	Plan(ctx context.Context, projectID int64) (*models.PlanTree, error)
	Epics(ctx context.Context, projectID int64) ([]models.Epic, error)
	Stories(ctx context.Context, projectID, epicID int64) ([]models.Story, error)
	Tasks(ctx context.Context, projectID, storyID int64) ([]models.Task, error)
}

type planService struct {
	client client.Client
}

func NewPlanService(client client.Client) PlanService {
	return &planService{client: client}
}

// Plan fetches epics, stories and tasks concurrently and joins them by
// parent id. The three reads are independent requests, so the tree may mix
// states if the plan is regenerated in between.
func (s *planService) Plan(ctx context.Context, projectID int64) (*models.PlanTree, error) {
	var (
		epics   []models.Epic
		stories []models.Story
		tasks   []models.Task
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		epics, err = s.client.ListEpics(ctx, projectID)
		return err
	})
	g.Go(func() (err error) {
		stories, err = s.client.ListStories(ctx, projectID, 0)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = s.client.ListTasks(ctx, projectID, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch plan: %w", err)
	}

	return models.BuildPlanTree(projectID, epics, stories, tasks), nil
}

func (s *planService) Epics(ctx context.Context, projectID int64) ([]models.Epic, error) {
	return s.client.ListEpics(ctx, projectID)
}

func (s *planService) Stories(ctx context.Context, projectID, epicID int64) ([]models.Story, error) {
	return s.client.ListStories(ctx, projectID, epicID)
}

func (s *planService) Tasks(ctx context.Context, projectID, storyID int64) ([]models.Task, error) {
	return s.client.ListTasks(ctx, projectID, storyID)
}
