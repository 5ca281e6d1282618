package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/tasklist/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeAdd, ModeEdit, ModeSearch, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the main task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewFilterTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case ModeAdd:
		b.WriteString(m.viewInput("New task", true))
		b.WriteString("\n")
	case ModeEdit:
		b.WriteString(m.viewInput("Edit task", false))
		b.WriteString("\n")
	case ModeSearch:
		b.WriteString(m.styles.InputPrompt.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	case ModeNormal, ModeConfirm, ModeHelp:
		if term := m.searchInput.Value(); term != "" {
			b.WriteString(m.styles.Footer.Render("Search: "+term+"  (esc to clear)") + "\n\n")
		}
	}

	if len(m.taskList.Items()) == 0 {
		b.WriteString(m.viewEmptyState())
	} else {
		b.WriteString(m.styles.TaskList.Render(m.taskList.View()))
	}

	if m.mode == ModeConfirm {
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	}

	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.ToastStyle(m.toastKind).Render(m.toast))
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title on the left and the stats on the right.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks")

	stats := m.store.Stats()
	statsText := m.styles.Stats.Render("Total ") + m.styles.StatsValue.Render(fmt.Sprint(stats.Total)) +
		m.styles.Stats.Render("  Active ") + m.styles.StatsValue.Render(fmt.Sprint(stats.Active)) +
		m.styles.Stats.Render("  Completed ") + m.styles.StatsValue.Render(fmt.Sprint(stats.Completed))

	headerWidth := m.width - 4
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(statsText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + statsText)
}

// viewFilterTabs renders the filters with the active one highlighted.
func (m *Model) viewFilterTabs() string {
	tabs := make([]string, 0, len(domain.AllFilters()))
	for i, f := range domain.AllFilters() {
		label := fmt.Sprintf("%d %s", i+1, f.Display())
		if f == m.filter {
			tabs = append(tabs, m.styles.FilterTabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.FilterTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewInput renders the task text form. The add form also shows the
// priority the new task gets.
func (m *Model) viewInput(title string, withPriority bool) string {
	var b strings.Builder
	b.WriteString(m.styles.InputPrompt.Render(title))
	if withPriority {
		b.WriteString("  ")
		b.WriteString(m.styles.PriorityStyle(m.addPrio).Render(PriorityIcon(m.addPrio) + " " + m.addPrio.Display()))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.textInput.View()))
	b.WriteString("\n")
	hint := "enter save · esc cancel"
	if withPriority {
		hint = "enter save · tab priority · esc cancel"
	}
	b.WriteString(m.styles.Footer.Render(hint))
	b.WriteString("\n")
	return b.String()
}

// viewEmptyState renders a friendly empty state message.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.store.Stats().Total > 0 {
		b.WriteString(m.styles.Footer.Render("  No tasks match"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.styles.Footer.Render("  No tasks yet\n\n"))
	b.WriteString(m.styles.Footer.Render("  Press "))
	b.WriteString(m.styles.FooterKey.Render("a"))
	b.WriteString(m.styles.Footer.Render(" to add your first task"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewConfirmDialog() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Clear all tasks"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.DialogPrompt.Render("Are you sure you want to delete all tasks?"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.FooterKey.Render("y"))
	b.WriteString(m.styles.Footer.Render(" yes  "))
	b.WriteString(m.styles.FooterKey.Render("n"))
	b.WriteString(m.styles.Footer.Render(" no"))
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeNormal:
		return m.help.View(m.keys)
	case ModeSearch:
		return m.styles.Footer.Render("enter apply · esc cancel")
	case ModeAdd, ModeEdit, ModeConfirm, ModeHelp:
		// Hints are shown in the dialogs themselves
		return ""
	}
	return ""
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, column := range m.keys.FullHelp() {
		for _, binding := range column {
			h := binding.Help()
			b.WriteString(m.styles.HelpKey.Width(10).Render(h.Key))
			b.WriteString(m.styles.HelpDesc.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render("Press ? or esc to close"))

	return m.styles.Help.Render(b.String())
}
