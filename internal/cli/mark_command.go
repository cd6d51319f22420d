package cli

import (
	"fmt"
	"io"

	"github.com/jerrytigerxu/go-projects/internal/domain"
	"github.com/jerrytigerxu/go-projects/internal/errors"
	"github.com/jerrytigerxu/go-projects/internal/services"
)

// MarkCommand handles the mark command
type MarkCommand struct {
	tasks        *services.TaskService
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewMarkCommand creates a new mark command handler
func NewMarkCommand(root *RootCommand) *MarkCommand {
	return &MarkCommand{
		tasks:        root.tasks,
		out:          root.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the mark command
func (c *MarkCommand) Execute(args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.Handle("mark task", err)
	}

	statusName := args[1]
	if !domain.IsKnownStatus(statusName) {
		return c.errorHandler.Handle("mark task",
			errors.NewInvalidInputError("status", statusName, "must be one of: todo, in-progress, done"))
	}

	task, err := c.tasks.MarkStatus(id, domain.ParseStatus(statusName))
	if err != nil {
		return c.errorHandler.Handle("mark task", err)
	}

	fmt.Fprintf(c.out, "Task %d marked as %s.\n", task.ID, task.Status)
	return nil
}
