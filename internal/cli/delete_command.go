package cli

import (
	"fmt"
	"io"

	"github.com/jerrytigerxu/go-projects/internal/services"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	tasks        *services.TaskService
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(root *RootCommand) *DeleteCommand {
	return &DeleteCommand{
		tasks:        root.tasks,
		out:          root.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	if err := c.tasks.Delete(id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Fprintf(c.out, "Task %d deleted.\n", id)
	return nil
}
