// Package main is the entry point for the tasklist CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/cli"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/infra/config"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Create dependency injection container
	container, err := app.New("")
	if err != nil {
		// Allow repairing an invalid config file
		if errors.Is(err, domain.ErrConfigInvalid) && canRunWithoutConfig(os.Args[1:]) {
			return runWithDefaults(err)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithDefaults runs the command against the default configuration.
// The config error is reported as a warning.
func runWithDefaults(configErr error) error {
	container, err := app.NewFromConfig(config.DefaultConfigPath(), domain.NewDefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	fmt.Fprintf(os.Stderr, "Warning: %v\n", configErr)
	return cli.NewRootCommand(container, version).Execute()
}

func canRunWithoutConfig(args []string) bool {
	if len(args) > 0 && (args[0] == "config" || args[0] == "help") {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
