package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sprintpilot/internal/client/client"
	"github.com/dmitrijs2005/sprintpilot/internal/client/export"
	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
)

// ExportService downloads export documents and hands them to a sink.
type ExportService interface {
	Export(ctx context.Context, projectID int64, format models.ExportFormat, sink export.Sink) (string, error)
}

type exportService struct {
	client client.Client
}

func NewExportService(client client.Client) ExportService {
	return &exportService{client: client}
}

// Export returns the location reported by sink.
func (s *exportService) Export(ctx context.Context, projectID int64, format models.ExportFormat, sink export.Sink) (string, error) {
	a, err := s.client.Export(ctx, projectID, format)
	if err != nil {
		return "", fmt.Errorf("export %s error: %w", format, err)
	}

	loc, err := sink.Save(ctx, a)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", a.Filename, err)
	}
	return loc, nil
}
