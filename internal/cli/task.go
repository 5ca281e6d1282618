package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/spf13/cobra"
)

// shortIDLen is the number of id characters shown in command output.
const shortIDLen = 8

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Long: `Add a task to the top of the list.

All arguments are joined with spaces to form the task text.

Examples:
  tasklist add Buy milk
  tasklist add -p high "Pay rent"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.ParsePriority(priority)
			if err != nil {
				return err
			}

			store, err := openTaskStoreForWrite(cmd, c)
			if err != nil {
				return err
			}

			task, err := store.Add(strings.Join(args, " "), p)
			if errors.Is(err, domain.ErrEmptyText) {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %s: %s\n", shortID(task.ID), task.Text)
			return warnIfStorage(cmd, err)
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", string(domain.PriorityNormal), "Priority: low, normal, high")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter string
		Search string
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display tasks, newest first.

Output format is tab-separated with columns:
  ID, DONE, PRIORITY, CREATED, TEXT

Examples:
  # List all tasks
  tasklist list

  # List open tasks mentioning "report"
  tasklist list -f active -s report

  # Machine-readable output (same records as the storage format)
  tasklist list --json`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := domain.ParseFilter(opts.Filter)
			if err != nil {
				return err
			}

			store, err := openTaskStore(cmd, c)
			if err != nil {
				return err
			}

			view := store.FilteredView(filter, opts.Search)
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), domain.ToRecords(view))
			}
			if len(view) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), emptyListMessage(store.Stats().Total))
				return nil
			}
			printTaskList(cmd.OutOrStdout(), view, c.Clock)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", string(domain.FilterAll), "Filter: all, active, done, high")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Only tasks whose text contains this (case-insensitive)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// newDoneCommand creates the done command.
func newDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's done state",
		Long: `Mark a task as done, or reopen it if it is already done.

Examples:
  tasklist done 3f2a9c1e
  tasklist done 3f2a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, id, err := resolveForWrite(cmd, c, args[0])
			if err != nil {
				return err
			}

			task, err := store.ToggleDone(id)
			if errors.Is(err, domain.ErrTaskNotFound) {
				return err
			}
			state := "Reopened"
			if task.Done {
				state = "Completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s task %s: %s\n", state, shortID(task.ID), task.Text)
			return warnIfStorage(cmd, err)
		},
	}
	return cmd
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Change a task's text",
		Long: `Replace the text of a task.

Examples:
  tasklist edit 3f2a Buy oat milk`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, id, err := resolveForWrite(cmd, c, args[0])
			if err != nil {
				return err
			}

			changed, err := store.EditText(id, strings.Join(args[1:], " "))
			if errors.Is(err, domain.ErrEmptyText) || errors.Is(err, domain.ErrTaskNotFound) {
				return err
			}
			if !changed && err == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s unchanged\n", shortID(id))
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", shortID(id))
			return warnIfStorage(cmd, err)
		},
	}
	return cmd
}

// newPriorityCommand creates the priority command.
func newPriorityCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority <id>",
		Short: "Cycle a task's priority",
		Long: `Advance a task's priority: normal → high → low → normal.

Examples:
  tasklist priority 3f2a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, id, err := resolveForWrite(cmd, c, args[0])
			if err != nil {
				return err
			}

			p, err := store.CyclePriority(id)
			if errors.Is(err, domain.ErrTaskNotFound) {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Priority of task %s set to %s\n", shortID(id), p)
			return warnIfStorage(cmd, err)
		},
	}
	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task from the list.

Examples:
  tasklist rm 3f2a`,
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, id, err := resolveForWrite(cmd, c, args[0])
			if err != nil {
				return err
			}

			text, err := store.Delete(id)
			if errors.Is(err, domain.ErrTaskNotFound) {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s: %s\n", shortID(id), text)
			return warnIfStorage(cmd, err)
		},
	}
	return cmd
}

// newClearCommand creates the clear command.
func newClearCommand(c *app.Container) *cobra.Command {
	var opts struct {
		All bool
		Yes bool
	}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove completed tasks",
		Long: `Remove every completed task.

With --all, remove every task. This asks for confirmation unless
--yes is given.

Examples:
  tasklist clear
  tasklist clear --all --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openTaskStoreForWrite(cmd, c)
			if err != nil {
				return err
			}

			if !opts.All {
				n, err := store.ClearCompleted()
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed %s\n", n, plural(n, "task", "tasks"))
				return warnIfStorage(cmd, err)
			}

			if !opts.Yes {
				total := store.Stats().Total
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete all %d %s?", total, plural(total, "task", "tasks")))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			_, err = store.ClearAll()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "All tasks cleared")
			return warnIfStorage(cmd, err)
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Remove all tasks, not only completed ones")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openTaskStore(cmd, c)
			if err != nil {
				return err
			}

			stats := store.Stats()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Total: %d  Active: %d  Completed: %d\n", stats.Total, stats.Active, stats.Completed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

// openTaskStore loads the task list for reading.
// Recoverable storage errors are printed as warnings.
func openTaskStore(cmd *cobra.Command, c *app.Container) (*usecase.TaskStore, error) {
	if c == nil {
		return nil, errors.New("container is nil")
	}
	store := c.TaskStore()
	if err := warnIfStorage(cmd, store.Load()); err != nil {
		return nil, err
	}
	return store, nil
}

// openTaskStoreForWrite loads the task list for a mutation.
// Unlike openTaskStore it fails on unreadable data, since saving the
// empty fallback list would overwrite it.
func openTaskStoreForWrite(cmd *cobra.Command, c *app.Container) (*usecase.TaskStore, error) {
	if c == nil {
		return nil, errors.New("container is nil")
	}
	store := c.TaskStore()
	err := store.Load()
	if errors.Is(err, domain.ErrStorageRead) {
		return nil, fmt.Errorf("refusing to modify unreadable task data: %w", err)
	}
	if err := warnIfStorage(cmd, err); err != nil {
		return nil, err
	}
	return store, nil
}

// resolveForWrite loads the task list for a mutation and resolves ref to a task id.
func resolveForWrite(cmd *cobra.Command, c *app.Container, ref string) (*usecase.TaskStore, string, error) {
	store, err := openTaskStoreForWrite(cmd, c)
	if err != nil {
		return nil, "", err
	}
	id, err := store.Resolve(ref)
	if err != nil {
		return nil, "", err
	}
	return store, id, nil
}

// warnIfStorage prints recoverable storage errors as warnings and returns nil
// for them. Other errors are returned unchanged.
func warnIfStorage(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsStorageError(err) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		return nil
	}
	return err
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []domain.Task, clock domain.Clock) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tDONE\tPRIORITY\tCREATED\tTEXT")

	now := clock.Now()
	for i := range tasks {
		task := &tasks[i]
		done := "[ ]"
		if task.Done {
			done = "[x]"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			shortID(task.ID),
			done,
			task.Priority,
			domain.FormatCreatedAt(task.CreatedAt, now),
			task.Text,
		)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// confirm asks a yes/no question on out and reads the answer from in.
// Anything but y/yes (case-insensitive) means no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func emptyListMessage(total int) string {
	if total == 0 {
		return "No tasks yet. Add one with: tasklist add <text>"
	}
	return "No tasks match"
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
