// Package export stores exported plan documents. A Sink receives the raw
// artifact returned by the backend and reports where it ended up.
package export

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
)

// Sink saves an artifact and returns its location (a path or a URL).
type Sink interface {
	Save(ctx context.Context, a *models.Artifact) (string, error)
}

var errEmptyArtifact = errors.New("empty artifact")

// safeName strips directories and separators from a server-supplied name.
func safeName(a *models.Artifact) string {
	name := filepath.Base(strings.ReplaceAll(a.Filename, "\\", "/"))
	if name == "." || name == "/" || name == ".." || name == "" {
		return "export." + string(a.Format)
	}
	return name
}
