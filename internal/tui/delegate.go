package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/tasklist/internal/domain"
)

type taskItem struct {
	task domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Text
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type taskDelegate struct {
	clock  domain.Clock
	styles Styles
}

func newTaskDelegate(styles Styles, clock domain.Clock) taskDelegate {
	return taskDelegate{styles: styles, clock: clock}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	checkbox := d.styles.Checkbox.Render("[ ]")
	if task.Done {
		checkbox = d.styles.CheckboxDone.Render("[x]")
	}

	// "  > [x] ▲ " is 10 cells wide.
	const prefixWidth = 10
	listWidth := m.Width()
	maxTextLen := listWidth - prefixWidth - 2
	if maxTextLen < 10 {
		maxTextLen = 10
	}

	text := escapeNewlines(task.Text)
	if runewidth.StringWidth(text) > maxTextLen {
		text = runewidth.Truncate(text, maxTextLen, "...")
	}

	titleStyle := d.styles.TaskTitle
	switch {
	case task.Done:
		titleStyle = d.styles.TaskTitleDone
	case selected:
		titleStyle = d.styles.TaskTitleSelected
	}

	indicator := d.styles.SelectionIndicator.Render(indicatorChar)
	priority := d.styles.PriorityStyle(task.Priority).Render(PriorityIcon(task.Priority))
	line := "  " + indicator + " " + checkbox + " " + priority + " " + titleStyle.Render(text)
	_, _ = fmt.Fprintln(w, line)

	meta := fmt.Sprintf("%s  %-6s  %s",
		shortID(task.ID),
		task.Priority.Display(),
		domain.FormatCreatedAt(task.CreatedAt, d.clock.Now()),
	)
	metaLine := strings.Repeat(" ", prefixWidth) + meta
	if runewidth.StringWidth(metaLine) > listWidth && listWidth > 0 {
		metaLine = runewidth.Truncate(metaLine, listWidth, "")
	}
	_, _ = fmt.Fprint(w, d.styles.TaskDate.Render(metaLine))
}

// shortID returns the first 8 characters of an id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
