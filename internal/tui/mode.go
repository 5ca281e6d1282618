// Package tui provides the terminal user interface for tasklist.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeAdd                 // New task input
	ModeEdit                // Edit selected task text
	ModeSearch              // Search term input
	ModeConfirm             // Confirmation dialog
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	case ModeSearch:
		return "search"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeAdd, ModeEdit, ModeSearch:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

// ToastKind selects the toast color.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastWarning
	ToastError
)
