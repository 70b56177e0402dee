package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
)

func projectPath(id int64, rest string) string {
	return "/projects/" + strconv.FormatInt(id, 10) + rest
}

func (c *HTTPClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	var p models.Project
	if err := c.doJSON(ctx, http.MethodGet, projectPath(id, ""), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, in models.ProjectCreate) (*models.Project, error) {
	var p models.Project
	if err := c.doJSON(ctx, http.MethodPost, "/projects", nil, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UploadSpec sends the file as multipart form field "file".
func (c *HTTPClient) UploadSpec(ctx context.Context, id int64, filename string, r io.Reader) (*models.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, projectPath(id, "/upload-spec"), nil, &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var res models.UploadResult
	if err := c.send(req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GenerateSprintPlan asks the backend to (re)generate the work breakdown.
// An empty provider leaves the choice to the backend.
func (c *HTTPClient) GenerateSprintPlan(ctx context.Context, id int64, provider string) (*models.GenerationResult, error) {
	var q url.Values
	if provider != "" {
		q = url.Values{"llm_provider": {provider}}
	}

	var res models.GenerationResult
	if err := c.doJSON(ctx, http.MethodPost, projectPath(id, "/generate-sprint-plan"), q, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ListEpics(ctx context.Context, projectID int64) ([]models.Epic, error) {
	var out []models.Epic
	if err := c.doJSON(ctx, http.MethodGet, projectPath(projectID, "/epics"), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListStories returns the project's stories, only those of epicID when it
// is non-zero.
func (c *HTTPClient) ListStories(ctx context.Context, projectID, epicID int64) ([]models.Story, error) {
	var out []models.Story
	q := parentFilter("epic_id", epicID)
	if err := c.doJSON(ctx, http.MethodGet, projectPath(projectID, "/stories"), q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTasks returns the project's tasks, only those of storyID when it is
// non-zero.
func (c *HTTPClient) ListTasks(ctx context.Context, projectID, storyID int64) ([]models.Task, error) {
	var out []models.Task
	q := parentFilter("story_id", storyID)
	if err := c.doJSON(ctx, http.MethodGet, projectPath(projectID, "/tasks"), q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func parentFilter(key string, id int64) url.Values {
	if id == 0 {
		return nil
	}
	return url.Values{key: {strconv.FormatInt(id, 10)}}
}

// Export downloads an export document. The body is returned byte for byte
// whatever its content type; it is never decoded.
func (c *HTTPClient) Export(ctx context.Context, projectID int64, format models.ExportFormat) (*models.Artifact, error) {
	if _, err := models.ParseExportFormat(string(format)); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, projectPath(projectID, "/export/"+string(format)), nil, nil, "")
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	a := &models.Artifact{
		Format:      format,
		Filename:    attachmentName(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}
	if a.Filename == "" {
		a.Filename = format.DefaultFilename(projectID)
	}
	if a.ContentType == "" {
		a.ContentType = format.DefaultContentType()
	}
	return a, nil
}

func attachmentName(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
