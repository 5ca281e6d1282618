// Package cli provides the command-line interface for tasklist.
package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tasklist.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasklist",
		Short: "Personal task list",
		Long: `tasklist keeps a short, local list of tasks with a priority each.

Run without arguments to open the interactive TUI, or use the
subcommands below to manage tasks from scripts.

Tasks are addressed by id; any unique id prefix works, so the
8-character ids shown by "tasklist list" are enough.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task management commands
	for _, cmd := range []*cobra.Command{
		newAddCommand(c),
		newListCommand(c),
		newDoneCommand(c),
		newEditCommand(c),
		newPriorityCommand(c),
		newRmCommand(c),
		newClearCommand(c),
		newStatsCommand(c),
		newTUICommand(c),
	} {
		cmd.GroupID = groupTask
		root.AddCommand(cmd)
	}

	// Setup commands
	for _, cmd := range []*cobra.Command{
		newThemeCommand(c),
		newConfigCommand(c),
		newMigrateCommand(c),
	} {
		cmd.GroupID = groupSetup
		root.AddCommand(cmd)
	}

	return root
}

// launchTUI runs the interactive TUI until the user quits.
func launchTUI(c *app.Container) error {
	if c == nil {
		return errors.New("container is nil")
	}
	model := tui.New(c.TaskStore(), c.Preferences(), c.Clock, c.Logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
