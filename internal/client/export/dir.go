package export

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
	"github.com/dmitrijs2005/sprintpilot/internal/filex"
)

// DirSink writes artifacts into a local directory, replacing files with the
// same name.
type DirSink struct {
	Dir string
}

func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

func (s *DirSink) Save(ctx context.Context, a *models.Artifact) (string, error) {
	if a == nil {
		return "", errEmptyArtifact
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir, err := filex.EnsureDir(s.Dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, safeName(a))
	if err := filex.WriteFileAtomic(path, a.Data, 0o640); err != nil {
		return "", fmt.Errorf("save export: %w", err)
	}
	return path, nil
}
