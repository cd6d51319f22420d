package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jerrytigerxu/go-projects/internal/services"
)

// AddCommand handles the add command
type AddCommand struct {
	tasks        *services.TaskService
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(root *RootCommand) *AddCommand {
	return &AddCommand{
		tasks:        root.tasks,
		out:          root.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(args []string) error {
	description := strings.Join(args, " ")

	task, err := c.tasks.Add(description)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.out, "Task %d added: %q\n", task.ID, task.Description)
	return nil
}
