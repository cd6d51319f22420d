package cli

import (
	"fmt"
	"io"

	"github.com/jerrytigerxu/go-projects/internal/domain"
	"github.com/jerrytigerxu/go-projects/internal/services"
	"github.com/jerrytigerxu/go-projects/internal/taskfile"
)

// ListCommand handles the list command
type ListCommand struct {
	tasks        *services.TaskService
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(root *RootCommand) *ListCommand {
	return &ListCommand{
		tasks:        root.tasks,
		out:          root.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(args []string) error {
	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	tasks, err := c.tasks.List(filter)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	c.printTasks(tasks, filter)
	return nil
}

// printTasks prints each task as a two-line block followed by a
// separator, then a total count.
func (c *ListCommand) printTasks(tasks []domain.Task, filter string) {
	fmt.Fprintln(c.out, "--- Task List ---")

	for _, t := range tasks {
		fmt.Fprintf(c.out, "ID: %d | Status: %s | Created: %s | Updated: %s\n",
			t.ID, t.Status, taskfile.FormatTimestamp(t.CreatedAt), taskfile.FormatTimestamp(t.UpdatedAt))
		fmt.Fprintf(c.out, "Description: %s\n", t.Description)
		fmt.Fprintln(c.out, "------------------------")
	}

	if len(tasks) == 0 {
		if filter != "" {
			fmt.Fprintf(c.out, "No tasks found with status: %s\n", filter)
		} else {
			fmt.Fprintln(c.out, "No tasks in the list.")
		}
	}

	fmt.Fprintf(c.out, "Total tasks: %d\n", c.tasks.Count())
	fmt.Fprintln(c.out, "------------------------")
}
