package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Plan prints the epic -> story -> task tree of a project, or the same tree
// as YAML when the second argument is "yaml".
func (a *App) Plan(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "project id")
	if err != nil {
		return err
	}

	tree, err := a.planService.Plan(ctx, id)
	if err != nil {
		return err
	}

	if len(args) > 1 && args[1] == "yaml" {
		out, err := yaml.Marshal(tree)
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		_, err = a.out.Write(out)
		return err
	}

	if !tree.HasPlan() {
		fmt.Fprintln(a.out, dimStyle.Render("No plan yet. Run 'generate "+args[0]+"' first."))
		return nil
	}

	for _, e := range tree.Epics {
		fmt.Fprintf(a.out, "%s %s %s\n", titleStyle.Render(e.Title), dimStyle.Render("#"+strconv.FormatInt(e.ID, 10)),
			estimate(e.EstimatedEffort, "pts"))
		for _, s := range e.Stories {
			fmt.Fprintf(a.out, "  - %s %s\n", s.Title, dimStyle.Render("#"+strconv.FormatInt(s.ID, 10)))
			for _, t := range s.Tasks {
				fmt.Fprintf(a.out, "      [%s] %s %s\n", t.Status, t.Title, estimate(t.EstimatedHours, "h"))
			}
		}
	}
	if n := len(tree.Orphans.Stories) + len(tree.Orphans.Tasks); n > 0 {
		fmt.Fprintln(a.out, warningStyle.Render(fmt.Sprintf("%d items changed while loading, run 'plan' again", n)))
	}
	fmt.Fprintf(a.out, "\n%.1f story points, %.1f hours\n", tree.TotalStoryPoints(), tree.TotalHours())
	return nil
}

// Epics lists the epics of a project.
func (a *App) Epics(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "project id")
	if err != nil {
		return err
	}
	epics, err := a.planService.Epics(ctx, id)
	if err != nil {
		return err
	}

	t := newTable("ID", "TITLE", "PRIORITY", "EFFORT")
	for _, e := range epics {
		t.Row(strconv.FormatInt(e.ID, 10), e.Title, string(e.Priority), estimate(e.EstimatedEffort, ""))
	}
	return a.printTable(t, len(epics))
}

// Stories lists the stories of a project, optionally of one epic.
func (a *App) Stories(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "project id")
	if err != nil {
		return err
	}
	epicID, err := optArgID(args, 1, "epic id")
	if err != nil {
		return err
	}
	stories, err := a.planService.Stories(ctx, id, epicID)
	if err != nil {
		return err
	}

	t := newTable("ID", "EPIC", "TITLE", "PRIORITY", "EFFORT")
	for _, s := range stories {
		t.Row(strconv.FormatInt(s.ID, 10), strconv.FormatInt(s.EpicID, 10), s.Title,
			string(s.Priority), estimate(s.EstimatedEffort, ""))
	}
	return a.printTable(t, len(stories))
}

// Tasks lists the tasks of a project, optionally of one story.
func (a *App) Tasks(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "project id")
	if err != nil {
		return err
	}
	storyID, err := optArgID(args, 1, "story id")
	if err != nil {
		return err
	}
	tasks, err := a.planService.Tasks(ctx, id, storyID)
	if err != nil {
		return err
	}

	t := newTable("ID", "STORY", "TITLE", "STATUS", "HOURS")
	for _, tk := range tasks {
		t.Row(strconv.FormatInt(tk.ID, 10), strconv.FormatInt(tk.StoryID, 10), tk.Title,
			string(tk.Status), estimate(tk.EstimatedHours, ""))
	}
	return a.printTable(t, len(tasks))
}

func newTable(headers ...string) *table.Table {
	return table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
}

func (a *App) printTable(t *table.Table, rows int) error {
	if rows == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("Nothing found."))
		return nil
	}
	_, err := fmt.Fprintln(a.out, t.Render())
	return err
}

func estimate(v *float64, unit string) string {
	if v == nil {
		return "-"
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	if unit != "" {
		s += " " + unit
	}
	return s
}
