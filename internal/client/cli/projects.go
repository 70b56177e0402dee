package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
	"github.com/dmitrijs2005/sprintpilot/internal/common"
)

// Projects lists the projects of the logged-in user.
func (a *App) Projects(ctx context.Context) error {
	projects, err := a.projectService.List(ctx)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No projects yet. Create one with 'newproject'."))
		return nil
	}

	t := newTable("ID", "NAME", "SPEC", "CREATED")
	for _, p := range projects {
		spec := "-"
		if p.HasSpec() {
			spec = "yes"
		}
		t.Row(strconv.FormatInt(p.ID, 10), p.Name, spec, p.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintln(a.out, t.Render())
	return nil
}

// Project shows one project and what to do next with it.
func (a *App) Project(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "project id")
	if err != nil {
		return err
	}

	p, err := a.projectService.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s  #%d\n", titleStyle.Render(p.Name), p.ID)
	if p.Description != nil && *p.Description != "" {
		fmt.Fprintln(a.out, *p.Description)
	}
	fmt.Fprintln(a.out, dimStyle.Render("created "+p.CreatedAt.Format("2006-01-02 15:04")))

	if !p.HasSpec() {
		fmt.Fprintln(a.out, "Next: upload a specification with 'upload", p.ID, "<file>'")
		return nil
	}

	tree, err := a.planService.Plan(ctx, p.ID)
	if err != nil {
		return err
	}
	if !tree.HasPlan() {
		fmt.Fprintln(a.out, "Next: generate a plan with 'generate", p.ID, "[provider]'")
		return nil
	}
	fmt.Fprintf(a.out, "Plan: %d epics, %.1f story points, %.1f hours\n",
		len(tree.Epics), tree.TotalStoryPoints(), tree.TotalHours())
	return nil
}

// NewProject prompts for a name and an optional multi-line description.
func (a *App) NewProject(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter project name", a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name is required: %w", common.ErrorIncorrectInput)
	}

	description, err := getMultiline(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}

	p, err := a.projectService.Create(ctx, name, description)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Project %q created with id %d", p.Name, p.ID))
	return nil
}

// Upload sends a .pdf, .docx or .txt specification for a project.
func (a *App) Upload(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "project id")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("missing <file>: %w", common.ErrorIncorrectInput)
	}
	path := strings.Join(args[1:], " ")

	res, err := a.projectService.UploadSpec(ctx, id, path)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("%s (%d characters)", res.Message, res.ContentLength))
	return nil
}

// Generate asks the backend to build a sprint plan. The optional second
// argument picks the LLM provider.
func (a *App) Generate(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "project id")
	if err != nil {
		return err
	}
	provider := ""
	if len(args) > 1 {
		provider = args[1]
	}

	fmt.Fprintln(a.out, dimStyle.Render("Generating plan, this can take a while..."))
	res, err := a.projectService.Generate(ctx, id, provider)
	if err != nil {
		return err
	}

	a.success("Sprint plan generated")
	a.printGeneration(res)
	return nil
}

func (a *App) printGeneration(res *models.GenerationResult) {
	fmt.Fprintf(a.out, "epics: %d  stories: %d  tasks: %d\n", res.Epics, res.Stories, res.Tasks)
	fmt.Fprintf(a.out, "total effort: %.1f  velocity: %.1f  sprints: %d\n",
		res.TotalEffort, res.PredictedVelocity, res.EstimatedSprints)
}
