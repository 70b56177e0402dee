package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
	"github.com/dmitrijs2005/sprintpilot/internal/common"
)

// Export downloads a project export and saves it to the export directory,
// or to the configured bucket when the third argument is "s3".
//
//	export <id> pdf|csv|jira [s3]
func (a *App) Export(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "project id")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("missing format (pdf, csv or jira): %w", common.ErrorIncorrectInput)
	}
	format, err := models.ParseExportFormat(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", err, common.ErrorIncorrectInput)
	}

	target := ""
	if len(args) > 2 {
		target = args[2]
	}
	sink, err := a.newSink(ctx, target)
	if err != nil {
		return err
	}

	location, err := a.exportService.Export(ctx, id, format, sink)
	if err != nil {
		return err
	}
	a.success("Saved " + location)
	return nil
}
