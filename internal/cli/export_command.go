package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jerrytigerxu/go-projects/internal/errors"
	"github.com/jerrytigerxu/go-projects/internal/services"
)

// ExportCommand handles the export command
type ExportCommand struct {
	exporter     *services.ExportService
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(root *RootCommand) *ExportCommand {
	return &ExportCommand{
		exporter:     root.exporter,
		out:          root.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the export command. With no output path the rendered
// bytes go to stdout.
func (c *ExportCommand) Execute(format, output string) error {
	data, err := c.exporter.Export(format)
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}

	if output == "" {
		if _, err := c.out.Write(data); err != nil {
			return c.errorHandler.Handle("export tasks", err)
		}
		return nil
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return c.errorHandler.Handle("export tasks",
			errors.NewStorageError("write export file", err))
	}
	fmt.Fprintf(c.out, "Exported tasks to %s\n", output)
	return nil
}
