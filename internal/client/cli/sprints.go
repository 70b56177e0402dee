package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
	"github.com/dmitrijs2005/sprintpilot/internal/common"
)

// Sprints lists the sprints of a project.
func (a *App) Sprints(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "project id")
	if err != nil {
		return err
	}
	sprints, err := a.sprintService.List(ctx, id)
	if err != nil {
		return err
	}

	t := newTable("ID", "NAME", "START", "END", "VELOCITY")
	for _, s := range sprints {
		t.Row(strconv.FormatInt(s.ID, 10), s.Name, date(s.StartDate), date(s.EndDate), estimate(s.Velocity, ""))
	}
	return a.printTable(t, len(sprints))
}

// Sprint shows a single sprint.
func (a *App) Sprint(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "sprint id")
	if err != nil {
		return err
	}
	s, err := a.sprintService.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s  #%d (project %d)\n", titleStyle.Render(s.Name), s.ID, s.ProjectID)
	fmt.Fprintf(a.out, "dates:    %s .. %s\n", date(s.StartDate), date(s.EndDate))
	fmt.Fprintf(a.out, "velocity: %s planned, %s actual\n", estimate(s.Velocity, ""), estimate(s.ActualVelocity, ""))
	return nil
}

// NewSprint prompts for a name, the task ids to include and optional
// start and end dates (YYYY-MM-DD).
func (a *App) NewSprint(ctx context.Context, args []string) error {
	projectID, err := argID(args, 0, "project id")
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter sprint name", a.out)
	if err != nil {
		return err
	}
	rawIDs, err := getSimpleText(a.reader, "Enter task ids, comma separated (optional)", a.out)
	if err != nil {
		return err
	}
	taskIDs, err := parseIDList(rawIDs)
	if err != nil {
		return err
	}

	req := models.SprintCreate{Name: name, TaskIDs: taskIDs}
	if req.StartDate, err = a.promptDate("Enter start date YYYY-MM-DD (optional)"); err != nil {
		return err
	}
	if req.EndDate, err = a.promptDate("Enter end date YYYY-MM-DD (optional)"); err != nil {
		return err
	}

	s, err := a.sprintService.Create(ctx, projectID, req)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Sprint %q created with id %d", s.Name, s.ID))
	return nil
}

func (a *App) promptDate(prompt string) (*models.Timestamp, error) {
	raw, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	ts, err := models.ParseTimestamp(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, common.ErrorIncorrectInput)
	}
	return &ts, nil
}

func date(ts *models.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return "-"
	}
	return ts.Format("2006-01-02")
}
