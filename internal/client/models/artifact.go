package models

import (
	"fmt"
	"strings"
)

// ExportFormat selects one of the backend export endpoints.
type ExportFormat string

const (
	ExportPDF  ExportFormat = "pdf"
	ExportCSV  ExportFormat = "csv"
	ExportJIRA ExportFormat = "jira"
)

// ParseExportFormat accepts the endpoint names case-insensitively.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ExportPDF, ExportCSV, ExportJIRA:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want pdf, csv or jira)", s)
	}
}

// DefaultFilename is the name the backend puts in Content-Disposition.
func (f ExportFormat) DefaultFilename(projectID int64) string {
	switch f {
	case ExportPDF:
		return fmt.Sprintf("sprint_plan_%d.pdf", projectID)
	case ExportJIRA:
		return fmt.Sprintf("jira_import_%d.csv", projectID)
	default:
		return fmt.Sprintf("sprint_plan_%d.csv", projectID)
	}
}

// DefaultContentType is used when the response carries no Content-Type.
func (f ExportFormat) DefaultContentType() string {
	if f == ExportPDF {
		return "application/pdf"
	}
	return "text/csv"
}

// Artifact is an exported document. Data is the response body as received.
type Artifact struct {
	Format      ExportFormat
	Filename    string
	ContentType string
	Data        []byte
}
