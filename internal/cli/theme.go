package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/spf13/cobra"
)

// newThemeCommand creates the theme command.
func newThemeCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [dark|light|toggle]",
		Short: "Show or set the TUI color theme",
		Long: `Show the current TUI theme, or change it.

Examples:
  tasklist theme
  tasklist theme dark
  tasklist theme toggle`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errors.New("container is nil")
			}
			prefs := c.Preferences()

			if len(args) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", themeName(prefs.DarkTheme()))
				return nil
			}

			var dark bool
			var err error
			switch args[0] {
			case "dark":
				dark, err = true, prefs.SetDarkTheme(true)
			case "light":
				dark, err = false, prefs.SetDarkTheme(false)
			case "toggle":
				dark, err = prefs.ToggleTheme()
			default:
				return fmt.Errorf("invalid theme %q (want dark, light or toggle)", args[0])
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s theme activated\n", themeTitle(dark))
			return warnIfStorage(cmd, err)
		},
	}
	return cmd
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func themeTitle(dark bool) string {
	if dark {
		return "Dark"
	}
	return "Light"
}
