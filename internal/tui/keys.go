package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding

	// Task management
	Add        key.Binding // Add a new task
	Toggle     key.Binding // Toggle done
	Edit       key.Binding // Edit task text
	Priority   key.Binding // Cycle priority
	Delete     key.Binding // Delete task
	ClearDone  key.Binding // Clear completed tasks
	ClearAll   key.Binding // Clear all tasks (with confirmation)
	Filter     key.Binding // Cycle filter
	FilterAll  key.Binding
	FilterAct  key.Binding
	FilterDone key.Binding
	FilterHigh key.Binding
	Search     key.Binding // Enter search mode

	// View
	Theme key.Binding // Toggle dark/light theme
	Help  key.Binding // Show help

	// General
	Quit    key.Binding // Quit application
	Escape  key.Binding // Cancel/back
	Submit  key.Binding // Submit input
	AddPrio key.Binding // Cycle priority of the task being added
	Confirm key.Binding // Confirm action (in confirm mode)
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle done"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "priority"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		ClearDone: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear completed"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f", "tab"),
			key.WithHelp("f", "next filter"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all"),
		),
		FilterAct: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "active"),
		),
		FilterDone: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "completed"),
		),
		FilterHigh: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "high priority"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		AddPrio: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "priority"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings to show in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.Filter, k.Search, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.Add, k.Toggle, k.Edit, k.Priority, k.Delete},
		{k.ClearDone, k.ClearAll, k.Filter, k.Search},
		{k.FilterAll, k.FilterAct, k.FilterDone, k.FilterHigh},
		{k.Theme, k.Help, k.Quit},
	}
}
