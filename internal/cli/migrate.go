package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/infra/codec"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/spf13/cobra"
)

// newMigrateCommand creates the migrate command.
func newMigrateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		To        string
		ToPath    string
		ToFormat  string
		Force     bool
		SkipTheme bool
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy tasks into another storage backend",
		Long: `Copy the task list and theme from the configured storage into
another backend or encoding.

Tasks already present in the destination are skipped when identical.
A task with the same id but different content stops the migration
unless --force is given. Nothing is written when the migration fails.

After migrating, point [storage] in the config file at the new store.

Examples:
  # Move to the directory backend at its default location
  tasklist migrate --to dir

  # Re-encode the JSON file store as YAML in a custom file
  tasklist migrate --to json --to-path ~/tasks.json --to-format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errors.New("container is nil")
			}

			backend := strings.ToLower(strings.TrimSpace(opts.To))
			path := opts.ToPath
			if path == "" {
				path = c.DefaultStorePath(backend)
			}
			format := opts.ToFormat
			if format == "" {
				format = c.Config.Format
			}

			if backend == c.Config.Backend && samePath(path, c.Config.StorePath) {
				return fmt.Errorf("destination is the configured store (%s); use --to-path", path)
			}

			destKV, err := app.OpenStore(backend, path)
			if err != nil {
				return err
			}
			destCodec, err := codec.New(format)
			if err != nil {
				return err
			}

			uc := c.MigrateStoreUseCase(
				usecase.StoreEndpoint{KV: c.KV, Codec: c.Codec},
				usecase.StoreEndpoint{KV: destKV, Codec: destCodec},
			)
			out, err := uc.Execute(cmd.Context(), usecase.MigrateStoreInput{Force: opts.Force, SkipTheme: opts.SkipTheme})
			if err != nil {
				if errors.Is(err, domain.ErrMigrationConflict) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return err
			}

			w := cmd.OutOrStdout()
			if out.Total == 0 {
				_, _ = fmt.Fprintln(w, "No tasks to migrate")
			} else {
				summary := fmt.Sprintf("Migrated %d %s to %s store at %s", out.Migrated, plural(out.Migrated, "task", "tasks"), backend, path)
				if out.Skipped > 0 {
					summary += fmt.Sprintf(" (skipped %d existing)", out.Skipped)
				}
				if out.Overwritten > 0 {
					summary += fmt.Sprintf(" (overwrote %d)", out.Overwritten)
				}
				_, _ = fmt.Fprintln(w, summary)
			}
			if out.ThemeCopied {
				_, _ = fmt.Fprintln(w, "Copied theme preference")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "Destination backend: json, dir")
	cmd.Flags().StringVar(&opts.ToPath, "to-path", "", "Destination file (json) or directory (dir); default under the data dir")
	cmd.Flags().StringVar(&opts.ToFormat, "to-format", "", "Destination task encoding: json, yaml (default: current)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite destination tasks that differ")
	cmd.Flags().BoolVar(&opts.SkipTheme, "skip-theme", false, "Do not copy the theme preference")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
