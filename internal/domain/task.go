// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task represents a single to-do item.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt time.Time // Creation time (immutable)
	ID        string    // Unique, immutable identifier
	Text      string    // Task text (never empty after trimming)
	Priority  Priority  // low, normal or high
	Done      bool      // Completion flag
}

// NewTask creates a task with default state (not done).
// An empty or unknown priority becomes PriorityNormal.
func NewTask(id, text string, priority Priority, now time.Time) Task {
	if !priority.IsValid() {
		priority = PriorityNormal
	}
	return Task{
		ID:        id,
		Text:      text,
		Priority:  priority,
		CreatedAt: Timestamp(now),
	}
}

// Matches returns true if the task satisfies both the filter and the search term.
// The term is trimmed and compared case-insensitively; an empty term matches all tasks.
func (t *Task) Matches(filter Filter, term string) bool {
	if !filter.Match(t) {
		return false
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Text), strings.ToLower(term))
}

// Stats holds task counts derived from the full list.
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// ComputeStats counts total, active and completed tasks.
func ComputeStats(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for i := range tasks {
		if tasks[i].Done {
			s.Completed++
		}
	}
	s.Active = s.Total - s.Completed
	return s
}

// FormatCreatedAt renders a creation time relative to now, in now's location:
// "Today, 15:04", "Yesterday, 15:04", otherwise "Jan 2".
func FormatCreatedAt(created, now time.Time) string {
	created = created.In(now.Location())
	switch {
	case sameDay(created, now):
		return "Today, " + created.Format("15:04")
	case sameDay(created, now.AddDate(0, 0, -1)):
		return "Yesterday, " + created.Format("15:04")
	default:
		return created.Format("Jan 2")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
