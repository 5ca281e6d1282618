package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/runoshun/tasklist/internal/domain"
)

// deletedPreviewLen is how much of a deleted task's text the toast shows.
const deletedPreviewLen = 20

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgTasksLoaded:
		if msg.Err == nil {
			return m, nil
		}
		m.logger.Warn("tui", fmt.Sprintf("load: %v", msg.Err))
		if errors.Is(msg.Err, domain.ErrStorageWrite) {
			return m, m.showToast("Error saving tasks", ToastError)
		}
		return m, m.showToast("Error loading tasks", ToastError)

	case MsgToastExpired:
		if msg.ID == m.toastID {
			m.toast = ""
		}
		return m, nil
	}

	// Forward other messages (cursor blink) to the focused input.
	var cmd tea.Cmd
	switch m.mode {
	case ModeAdd, ModeEdit:
		m.textInput, cmd = m.textInput.Update(msg)
	case ModeSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case ModeNormal, ModeConfirm, ModeHelp:
	}
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeAdd:
		return m.handleAddMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	case ModeSearch:
		return m.handleSearchMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.PrevPage):
		m.taskList.Paginator.PrevPage()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.taskList.Paginator.NextPage()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()

	case key.Matches(msg, m.keys.Filter):
		m.setFilter(m.filter.Next())
		return m, nil

	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(domain.FilterAll)
		return m, nil

	case key.Matches(msg, m.keys.FilterAct):
		m.setFilter(domain.FilterActive)
		return m, nil

	case key.Matches(msg, m.keys.FilterDone):
		m.setFilter(domain.FilterDone)
		return m, nil

	case key.Matches(msg, m.keys.FilterHigh):
		m.setFilter(domain.FilterHigh)
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.searchInput.Value() != "" {
			m.searchInput.Reset()
			m.refreshList()
		}
		return m, nil
	}

	// Everything below touches the store.
	if !m.loaded {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		m.addPrio = domain.PriorityNormal
		m.textInput.Reset()
		return m, m.textInput.Focus()

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeEdit
		m.editID = task.ID
		m.textInput.SetValue(task.Text)
		m.textInput.CursorEnd()
		return m, m.textInput.Focus()

	case key.Matches(msg, m.keys.Toggle):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		updated, err := m.store.ToggleDone(task.ID)
		m.refreshList()
		if err != nil {
			return m, m.errorToast(err)
		}
		if updated.Done {
			return m, m.showToast("Task completed!", ToastSuccess)
		}
		return m, nil

	case key.Matches(msg, m.keys.Priority):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		p, err := m.store.CyclePriority(task.ID)
		m.refreshList()
		if err != nil {
			return m, m.errorToast(err)
		}
		return m, m.showToast(fmt.Sprintf("Priority set to %s", p), ToastSuccess)

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		text, err := m.store.Delete(task.ID)
		m.refreshList()
		if err != nil {
			return m, m.errorToast(err)
		}
		return m, m.showToast(deletedMessage(text), ToastWarning)

	case key.Matches(msg, m.keys.ClearDone):
		n, err := m.store.ClearCompleted()
		m.refreshList()
		if err != nil {
			return m, m.errorToast(err)
		}
		return m, m.showToast(fmt.Sprintf("Cleared %d completed %s", n, plural(n, "task", "tasks")), ToastSuccess)

	case key.Matches(msg, m.keys.ClearAll):
		m.mode = ModeConfirm
		return m, nil
	}

	return m, nil
}

// handleAddMode handles keys while typing a new task.
func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.exitInput()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		task, err := m.store.Add(m.textInput.Value(), m.addPrio)
		if errors.Is(err, domain.ErrEmptyText) {
			return m, nil
		}
		m.exitInput()
		m.refreshList()
		m.selectTask(task.ID)
		if err != nil {
			return m, m.errorToast(err)
		}
		return m, m.showToast("Task added successfully", ToastSuccess)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// handleEditMode handles keys while editing the selected task.
func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.exitInput()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		changed, err := m.store.EditText(m.editID, m.textInput.Value())
		if errors.Is(err, domain.ErrEmptyText) {
			return m, nil
		}
		m.exitInput()
		m.refreshList()
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			return m, nil
		case err != nil:
			return m, m.errorToast(err)
		case changed:
			return m, m.showToast("Task updated", ToastSuccess)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// handleSearchMode handles keys while typing a search term.
// The list is narrowed as the term changes.
func (m *Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.searchInput.Reset()
		m.searchInput.Blur()
		m.refreshList()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refreshList()
	return m, cmd
}

// handleConfirmMode handles keys in the clear-all confirmation.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.mode = ModeNormal
		_, err := m.store.ClearAll()
		m.refreshList()
		if err != nil {
			return m, m.errorToast(err)
		}
		return m, m.showToast("All tasks cleared", ToastWarning)
	}

	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *Model) exitInput() {
	m.mode = ModeNormal
	m.editID = ""
	m.textInput.Reset()
	m.textInput.Blur()
}

func (m *Model) setFilter(f domain.Filter) {
	m.filter = f
	m.refreshList()
}

func (m *Model) selectTask(id string) {
	for i, item := range m.taskList.Items() {
		if ti, ok := item.(taskItem); ok && ti.task.ID == id {
			m.taskList.Select(i)
			return
		}
	}
}

func (m *Model) toggleTheme() tea.Cmd {
	dark, err := m.prefs.ToggleTheme()
	m.dark = dark
	m.applyTheme()
	if err != nil {
		return m.errorToast(err)
	}
	if dark {
		return m.showToast("Dark theme activated", ToastSuccess)
	}
	return m.showToast("Light theme activated", ToastSuccess)
}

// errorToast reports a failed operation. Storage failures keep their
// in-memory effect, so only the save is reported.
func (m *Model) errorToast(err error) tea.Cmd {
	switch {
	case errors.Is(err, domain.ErrStorageWrite):
		return m.showToast("Error saving tasks", ToastError)
	case errors.Is(err, domain.ErrStorageRead):
		return m.showToast("Error loading tasks", ToastError)
	default:
		return m.showToast(err.Error(), ToastError)
	}
}

// deletedMessage quotes at most deletedPreviewLen cells of the text.
func deletedMessage(text string) string {
	preview := truncate.String(text, deletedPreviewLen)
	if preview != text {
		preview += "..."
	}
	return fmt.Sprintf(`"%s" deleted`, preview)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
