package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mkalvins/taskboard/internal/client/api"
)

// ListTasks prints the user's tasks, soonest due date first.
func (a *App) ListTasks(ctx context.Context) error {
	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		printlnFn("No tasks")
		return nil
	}
	for _, t := range tasks {
		printlnFn(fmt.Sprintf("%s  [%-9s]  due %s  %s", t.ID, t.Status, t.Due.Format("2006-01-02"), t.Title))
	}
	return nil
}

// AddTask prompts for a title and due date and creates the task. The status
// is left to the server, which defaults it to Pending.
func (a *App) AddTask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter task title", os.Stdout)
	if err != nil {
		return err
	}

	due, err := GetDate(a.reader, "Enter due date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.api.CreateTask(ctx, title, "", due)
	if err != nil {
		return err
	}

	printlnFn("Created task", task.ID)
	return nil
}

// CompleteTask marks the task as Completed.
func (a *App) CompleteTask(ctx context.Context, id string) error {
	status := "Completed"
	task, err := a.api.UpdateTask(ctx, id, api.TaskUpdate{Status: &status})
	if err != nil {
		return err
	}

	printlnFn("Completed task", task.ID)
	return nil
}

// DeleteTask removes the task.
func (a *App) DeleteTask(ctx context.Context, id string) error {
	if err := a.api.DeleteTask(ctx, id); err != nil {
		return err
	}

	printlnFn("Deleted task", id)
	return nil
}
