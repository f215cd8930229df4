package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mkalvins/taskboard/internal/client/api"
)

// ListProjects prints the user's projects, soonest due date first.
func (a *App) ListProjects(ctx context.Context) error {
	projects, err := a.api.ListProjects(ctx)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		printlnFn("No projects")
		return nil
	}
	for _, p := range projects {
		printlnFn(fmt.Sprintf("%s  [%-9s]  due %s  %s", p.ID, p.Status, p.Due.Format("2006-01-02"), p.Name))
	}
	return nil
}

// AddProject prompts for a name and due date and creates the project.
func (a *App) AddProject(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter project name", os.Stdout)
	if err != nil {
		return err
	}

	due, err := GetDate(a.reader, "Enter due date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	project, err := a.api.CreateProject(ctx, name, "", due)
	if err != nil {
		return err
	}

	printlnFn("Created project", project.ID)
	return nil
}

// CompleteProject marks the project as Completed.
func (a *App) CompleteProject(ctx context.Context, id string) error {
	status := "Completed"
	project, err := a.api.UpdateProject(ctx, id, api.ProjectUpdate{Status: &status})
	if err != nil {
		return err
	}

	printlnFn("Completed project", project.ID)
	return nil
}

// DeleteProject removes the project.
func (a *App) DeleteProject(ctx context.Context, id string) error {
	if err := a.api.DeleteProject(ctx, id); err != nil {
		return err
	}

	printlnFn("Deleted project", id)
	return nil
}
