package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jerrytigerxu/go-projects/internal/services"
)

// UpdateCommand handles the update command
type UpdateCommand struct {
	tasks        *services.TaskService
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(root *RootCommand) *UpdateCommand {
	return &UpdateCommand{
		tasks:        root.tasks,
		out:          root.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the update command
func (c *UpdateCommand) Execute(args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.Handle("update task", err)
	}
	description := strings.Join(args[1:], " ")

	task, err := c.tasks.UpdateDescription(id, description)
	if err != nil {
		return c.errorHandler.Handle("update task", err)
	}

	fmt.Fprintf(c.out, "Task %d updated.\n", task.ID)
	return nil
}
