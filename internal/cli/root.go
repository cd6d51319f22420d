package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jerrytigerxu/go-projects/internal/config"
	"github.com/jerrytigerxu/go-projects/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	tasks    *services.TaskService
	exporter *services.ExportService
	config   *config.Config
	log      *logrus.Logger
	out      io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(tasks *services.TaskService, exporter *services.ExportService, cfg *config.Config, log *logrus.Logger) *RootCommand {
	root := &RootCommand{
		tasks:    tasks,
		exporter: exporter,
		config:   cfg,
		log:      log,
		out:      os.Stdout,
	}

	root.cmd = &cobra.Command{
		Use:   "taskman",
		Short: "A command-line task list manager",
		Long: `Task Manager (taskman) is a command-line application for managing a task list
stored in a single text file.

EXAMPLES:
  taskman add "Write the report"            # Add a new task
  taskman list                              # List all tasks
  taskman list done                         # List tasks with a given status
  taskman update 3 "Write the Q3 report"    # Replace a task's description
  taskman mark 3 in-progress                # Change a task's status
  taskman delete 3                          # Remove a task
  taskman export --format csv               # Export the list as CSV

CONFIGURATION:
  Configuration follows this priority order: command-line flags >
  environment variables > config file > defaults. The config file lives at
  ~/.config/go-projects/config.toml (override with GOPROJECTS_CONFIG).

  GOPROJECTS_TASKS_DIR                      Tasks file directory (default: .)
  GOPROJECTS_TASKS_FILENAME                 Tasks filename (default: tasks.json)
  GOPROJECTS_DESCRIPTION_MIN                Min description length (default: 1)
  GOPROJECTS_DESCRIPTION_MAX                Max description length (default: 1024)
  GOPROJECTS_VERBOSE                        Enable verbose output (default: false)

A missing, empty, or malformed tasks file is treated as an empty list;
individual malformed records are skipped with a warning.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				root.log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.cmd.PersistentFlags().Bool("verbose", false, "Enable verbose output (overrides GOPROJECTS_VERBOSE)")

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetOut redirects command output, used by tests.
func (r *RootCommand) SetOut(w io.Writer) {
	r.out = w
}

// SetArgs sets the arguments for the root command, used by tests.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [description]",
		Short: "Add a new task",
		Long:  "Add a new task with the given description. The task starts in the todo status.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewAddCommand(r).Execute(args)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update [id] [description]",
		Short: "Update a task's description",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewUpdateCommand(r).Execute(args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDeleteCommand(r).Execute(args)
		},
	}

	markCmd := &cobra.Command{
		Use:   "mark [id] [status]",
		Short: "Change a task's status",
		Long:  "Change a task's status. Status must be one of: todo, in-progress, done.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewMarkCommand(r).Execute(args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [status]",
		Short: "List tasks",
		Long: `List tasks in file order, optionally filtered by status.

Examples:
  taskman list               # List all tasks
  taskman list todo          # List tasks still to do
  taskman list in-progress   # List tasks in progress
  taskman list done          # List finished tasks`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewListCommand(r).Execute(args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks in another format",
		Long: `Export the task list in the specified format.

Supported formats:
  csv - Comma-separated values
  pdf - PDF report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			return NewExportCommand(r).Execute(format, output)
		},
	}
	exportCmd.Flags().String("format", "csv", "Export format (csv or pdf)")
	exportCmd.Flags().String("output", "", "Output file (defaults to stdout)")

	r.cmd.AddCommand(
		addCmd,
		updateCmd,
		deleteCmd,
		markCmd,
		listCmd,
		exportCmd,
	)
}
