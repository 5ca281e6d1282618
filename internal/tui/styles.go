package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/tasklist/internal/domain"
)

// Palette defines the colors of one theme.
type Palette struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	TitleDone     lipgloss.Color

	// Priority colors
	High lipgloss.Color
	Low  lipgloss.Color
}

// DarkPalette is used when the dark theme is active.
var DarkPalette = Palette{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"),
	TitleSelected: lipgloss.Color("#FFEAA7"),
	TitleDone:     lipgloss.Color("#636E72"),

	High: lipgloss.Color("#FF7675"),
	Low:  lipgloss.Color("#FDCB6E"),
}

// LightPalette is the default theme.
var LightPalette = Palette{
	Primary:    lipgloss.Color("#4A3AFF"),
	Secondary:  lipgloss.Color("#6C5CE7"),
	Muted:      lipgloss.Color("#8A8F98"),
	Error:      lipgloss.Color("#C0392B"),
	Success:    lipgloss.Color("#00876C"),
	Warning:    lipgloss.Color("#B7791F"),
	Background: lipgloss.Color("#F1F2F6"),

	TitleNormal:   lipgloss.Color("#2D3436"),
	TitleSelected: lipgloss.Color("#4A3AFF"),
	TitleDone:     lipgloss.Color("#A4A9B0"),

	High: lipgloss.Color("#D63031"),
	Low:  lipgloss.Color("#B7791F"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	Palette Palette

	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Stats      lipgloss.Style
	StatsValue lipgloss.Style

	// Filter tabs
	FilterTab       lipgloss.Style
	FilterTabActive lipgloss.Style

	// Task list
	TaskList           lipgloss.Style
	TaskID             lipgloss.Style
	TaskTitle          lipgloss.Style
	TaskTitleSelected  lipgloss.Style
	TaskTitleDone      lipgloss.Style
	TaskDate           lipgloss.Style
	Checkbox           lipgloss.Style
	CheckboxDone       lipgloss.Style
	SelectionIndicator lipgloss.Style

	// Priority badges
	PriorityHigh   lipgloss.Style
	PriorityNormal lipgloss.Style
	PriorityLow    lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// DefaultStyles returns the light theme styles.
func DefaultStyles() Styles {
	return NewStyles(LightPalette)
}

// ThemeStyles returns the styles for the dark or light theme.
func ThemeStyles(dark bool) Styles {
	if dark {
		return NewStyles(DarkPalette)
	}
	return NewStyles(LightPalette)
}

// NewStyles builds the styles for a palette.
func NewStyles(p Palette) Styles {
	toast := lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	return Styles{
		Palette: p,

		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Stats: lipgloss.NewStyle().
			Foreground(p.Muted),

		StatsValue: lipgloss.NewStyle().
			Foreground(p.TitleNormal).
			Bold(true),

		FilterTab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		FilterTabActive: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		TaskList: lipgloss.NewStyle().
			MarginBottom(1),

		TaskID: lipgloss.NewStyle().
			Foreground(p.Muted),

		TaskTitle: lipgloss.NewStyle().
			Foreground(p.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(p.TitleSelected).
			Bold(true),

		TaskTitleDone: lipgloss.NewStyle().
			Foreground(p.TitleDone).
			Strikethrough(true),

		TaskDate: lipgloss.NewStyle().
			Foreground(p.Muted),

		Checkbox: lipgloss.NewStyle().
			Foreground(p.Muted),

		CheckboxDone: lipgloss.NewStyle().
			Foreground(p.Success),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(p.TitleSelected),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(p.High).
			Bold(true),

		PriorityNormal: lipgloss.NewStyle().
			Foreground(p.Muted),

		PriorityLow: lipgloss.NewStyle().
			Foreground(p.Low),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(p.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Error),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Error),

		DialogPrompt: lipgloss.NewStyle(),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		ToastSuccess: toast.Background(p.Success),
		ToastWarning: toast.Background(p.Warning),
		ToastError:   toast.Background(p.Error),
	}
}

// PriorityStyle returns the style for a given priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityLow:
		return s.PriorityLow
	case domain.PriorityNormal:
		return s.PriorityNormal
	default:
		return s.PriorityNormal
	}
}

// ToastStyle returns the style for a toast kind.
func (s Styles) ToastStyle(kind ToastKind) lipgloss.Style {
	switch kind {
	case ToastWarning:
		return s.ToastWarning
	case ToastError:
		return s.ToastError
	case ToastSuccess:
		return s.ToastSuccess
	default:
		return s.ToastSuccess
	}
}

// PriorityIcon returns a marker for a given priority.
func PriorityIcon(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "▲"
	case domain.PriorityLow:
		return "▼"
	case domain.PriorityNormal:
		return "·"
	default:
		return "·"
	}
}
