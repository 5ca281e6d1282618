package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage the tasklist configuration file.

The file lives at $XDG_CONFIG_HOME/tasklist/config.toml unless
$TASKLIST_CONFIG points elsewhere.`,
		// No RunE: shows subcommand list when called without arguments
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigPathCommand(c))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long:  `Display the effective configuration with default paths filled in.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil || c.ConfigManager == nil {
				return errors.New("config manager is not available")
			}
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{Effective: c.Effective()})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Found {
				_, _ = fmt.Fprintf(w, "# Loaded from %s\n", out.Path)
			} else {
				_, _ = fmt.Fprintf(w, "# %s (not found, using defaults)\n", out.Path)
			}
			if out.StoredKeys != nil {
				keys := "(none)"
				if len(out.StoredKeys) > 0 {
					keys = strings.Join(out.StoredKeys, ", ")
				}
				_, _ = fmt.Fprintf(w, "# Stored keys: %s\n", keys)
			}
			return printConfig(w, out.Config)
		},
	}
}

// newConfigPathCommand creates the config path subcommand.
func newConfigPathCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil || c.ConfigManager == nil {
				return errors.New("config manager is not available")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.ConfigManager.Path())
			return nil
		},
	}
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the default config template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := usecase.NewShowConfigTemplate().Execute(cmd.Context(), usecase.ShowConfigTemplateInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Template)
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the config file from the default template",
		Long: `Generate a commented config file at the config path.

Fails if the file already exists unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil || c.ConfigManager == nil {
				return errors.New("config manager is not available")
			}
			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{Force: force})
			if err != nil {
				if errors.Is(err, domain.ErrConfigExists) {
					return fmt.Errorf("%w: %s (use --force to overwrite)", err, c.ConfigManager.Path())
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func printConfig(w io.Writer, cfg *domain.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
