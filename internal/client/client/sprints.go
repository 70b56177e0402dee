package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
)

func (c *HTTPClient) ListSprints(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	var out []models.Sprint
	path := "/sprints/project/" + strconv.FormatInt(projectID, 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetSprint(ctx context.Context, id int64) (*models.Sprint, error) {
	var s models.Sprint
	if err := c.doJSON(ctx, http.MethodGet, "/sprints/"+strconv.FormatInt(id, 10), nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSprint creates a sprint in projectID. A nil TaskIDs is sent as an
// empty list.
func (c *HTTPClient) CreateSprint(ctx context.Context, projectID int64, in models.SprintCreate) (*models.Sprint, error) {
	if in.TaskIDs == nil {
		in.TaskIDs = []int64{}
	}
	q := url.Values{"project_id": {strconv.FormatInt(projectID, 10)}}

	var s models.Sprint
	if err := c.doJSON(ctx, http.MethodPost, "/sprints", q, in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
