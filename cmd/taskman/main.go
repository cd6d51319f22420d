package main

import (
	"fmt"
	"os"

	"github.com/jerrytigerxu/go-projects/internal/cli"
	"github.com/jerrytigerxu/go-projects/internal/config"
	"github.com/jerrytigerxu/go-projects/internal/logging"
	"github.com/jerrytigerxu/go-projects/internal/services"
	"github.com/jerrytigerxu/go-projects/internal/taskfile"
	"github.com/jerrytigerxu/go-projects/internal/validation"
)

func main() {
	// Load configuration: defaults -> config file -> environment
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Application.Verbose)

	// The store is created once per invocation; tasks are loaded at the
	// start of an operation and saved once if anything changed.
	store := taskfile.NewStore(cfg.GetTasksPath(), log)

	validator := validation.NewTaskValidatorWithValidator(validation.NewValidatorWithConfig(cfg))
	tasks := services.NewTaskServiceWithValidator(store, validator)
	exporter := services.NewExportService(store)

	root := cli.NewRootCommand(tasks, exporter, cfg, log)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
