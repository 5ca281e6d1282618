package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
)

// toastDuration is how long a toast stays on screen.
const toastDuration = 3 * time.Second

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	store  *usecase.TaskStore
	prefs  *usecase.Preferences
	clock  domain.Clock
	logger domain.Logger

	// Components (structs with pointers)
	keys        KeyMap
	styles      Styles
	help        help.Model
	taskList    list.Model
	textInput   textinput.Model
	searchInput textinput.Model

	// View state
	filter  domain.Filter
	addPrio domain.Priority
	editID  string
	toast   string
	loadErr error

	// Numeric state (smaller types last)
	mode      Mode
	toastKind ToastKind
	toastID   int
	width     int
	height    int
	dark      bool
	loaded    bool
}

// New creates a new TUI Model backed by the given store and preferences.
// The store is loaded by Init.
func New(store *usecase.TaskStore, prefs *usecase.Preferences, clock domain.Clock, logger domain.Logger) *Model {
	if logger == nil {
		logger = domain.NopLogger{}
	}

	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 500

	si := textinput.New()
	si.Placeholder = "Search tasks..."
	si.CharLimit = 100

	dark := prefs.DarkTheme()
	styles := ThemeStyles(dark)
	taskList := list.New([]list.Item{}, newTaskDelegate(styles, clock), 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	return &Model{
		store:       store,
		prefs:       prefs,
		clock:       clock,
		logger:      logger,
		keys:        DefaultKeyMap(),
		styles:      styles,
		help:        help.New(),
		taskList:    taskList,
		textInput:   ti,
		searchInput: si,
		filter:      domain.FilterAll,
		addPrio:     domain.PriorityNormal,
		mode:        ModeNormal,
		dark:        dark,
	}
}

// Init loads the store and returns the command that reports the result.
// Bubbletea calls Init on the goroutine that runs Update and View, so the
// store is read there and the returned command carries only the error.
func (m *Model) Init() tea.Cmd {
	err := m.store.Load()
	m.loaded = true
	m.loadErr = err
	m.refreshList()
	return func() tea.Msg {
		return MsgTasksLoaded{Err: err}
	}
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.taskList.SelectedItem() == nil {
		return nil
	}
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		task := ti.task
		return &task
	}
	return nil
}

// Filter returns the active filter.
func (m *Model) Filter() domain.Filter {
	return m.filter
}

// SearchTerm returns the current search term.
func (m *Model) SearchTerm() string {
	return m.searchInput.Value()
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// AddPriority returns the priority the add form will use.
func (m *Model) AddPriority() domain.Priority {
	return m.addPrio
}

// Toast returns the message currently shown, or "" if none.
func (m *Model) Toast() string {
	return m.toast
}

// visibleTasks returns the tasks matching the active filter and search term.
func (m *Model) visibleTasks() []domain.Task {
	return m.store.FilteredView(m.filter, m.searchInput.Value())
}

// refreshList rebuilds the list items from the store, keeping the cursor
// on the same task when it is still visible.
func (m *Model) refreshList() {
	var selectedID string
	if t := m.SelectedTask(); t != nil {
		selectedID = t.ID
	}
	prevIndex := m.taskList.Index()

	tasks := m.visibleTasks()
	items := make([]list.Item, 0, len(tasks))
	cursor := -1
	for i, task := range tasks {
		items = append(items, taskItem{task: task})
		if task.ID == selectedID {
			cursor = i
		}
	}
	m.taskList.SetItems(items)

	switch {
	case len(items) == 0:
		return
	case cursor >= 0:
		m.taskList.Select(cursor)
	case prevIndex >= len(items):
		m.taskList.Select(len(items) - 1)
	default:
		m.taskList.Select(prevIndex)
	}
}

// applyTheme rebuilds the styles for the current theme.
func (m *Model) applyTheme() {
	m.styles = ThemeStyles(m.dark)
	m.taskList.SetDelegate(newTaskDelegate(m.styles, m.clock))
}

// updateLayoutSizes recalculates the list size from the window size.
func (m *Model) updateLayoutSizes() {
	// App padding (2 each side) plus header, filter tabs, input, toast and footer.
	width := m.width - 4
	height := m.height - 12
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	m.taskList.SetSize(width, height)
	m.textInput.Width = width - 6
	m.searchInput.Width = width - 12
}

// showToast displays a message and returns the command that dismisses it.
func (m *Model) showToast(text string, kind ToastKind) tea.Cmd {
	m.toastID++
	m.toast = text
	m.toastKind = kind
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return MsgToastExpired{ID: id}
	})
}
