package domain

import (
	"testing"
	"time"
)

func TestNewTask_Defaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 30, 0, 123456789, time.Local)

	task := NewTask("abc", "Buy milk", "", now)

	if task.Done {
		t.Error("new task should not be done")
	}
	if task.Priority != PriorityNormal {
		t.Errorf("Priority = %q, want %q", task.Priority, PriorityNormal)
	}
	if !task.CreatedAt.Equal(now.Truncate(time.Millisecond)) {
		t.Errorf("CreatedAt = %v, want %v", task.CreatedAt, now.Truncate(time.Millisecond))
	}
	if task.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt location = %v, want UTC", task.CreatedAt.Location())
	}
}

func TestNewTask_InvalidPriorityBecomesNormal(t *testing.T) {
	task := NewTask("abc", "x", Priority("urgent"), time.Now())
	if task.Priority != PriorityNormal {
		t.Errorf("Priority = %q, want %q", task.Priority, PriorityNormal)
	}
}

func TestTask_Matches(t *testing.T) {
	active := Task{Text: "Buy MILK", Priority: PriorityHigh}
	done := Task{Text: "Walk dog", Priority: PriorityLow, Done: true}

	tests := []struct {
		name   string
		task   Task
		filter Filter
		term   string
		expect bool
	}{
		{"all, empty term", active, FilterAll, "", true},
		{"all, whitespace term", done, FilterAll, "   ", true},
		{"active matches undone", active, FilterActive, "", true},
		{"active rejects done", done, FilterActive, "", false},
		{"done matches done", done, FilterDone, "", true},
		{"done rejects undone", active, FilterDone, "", false},
		{"high matches high", active, FilterHigh, "", true},
		{"high rejects low", done, FilterHigh, "", false},
		{"search is case-insensitive", active, FilterAll, "milk", true},
		{"search is substring", active, FilterAll, "y mi", true},
		{"search miss", active, FilterAll, "bread", false},
		{"search and filter intersect", done, FilterActive, "dog", false},
		{"unknown filter", active, Filter("bogus"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.task.Matches(tt.filter, tt.term)
			if got != tt.expect {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.filter, tt.term, got, tt.expect)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	tasks := []Task{
		{Text: "a"},
		{Text: "b", Done: true},
		{Text: "c", Done: true},
		{Text: "d"},
		{Text: "e"},
	}

	got := ComputeStats(tasks)

	want := Stats{Total: 5, Active: 3, Completed: 2}
	if got != want {
		t.Errorf("ComputeStats() = %+v, want %+v", got, want)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	got := ComputeStats(nil)
	if got != (Stats{}) {
		t.Errorf("ComputeStats(nil) = %+v, want zero", got)
	}
}

func TestFormatCreatedAt(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, loc)

	tests := []struct {
		name    string
		created time.Time
		want    string
	}{
		{"today", time.Date(2026, 3, 14, 8, 5, 0, 0, loc), "Today, 08:05"},
		{"today from UTC", time.Date(2026, 3, 13, 22, 30, 0, 0, time.UTC), "Today, 00:30"},
		{"yesterday", time.Date(2026, 3, 13, 23, 59, 0, 0, loc), "Yesterday, 23:59"},
		{"older", time.Date(2026, 3, 12, 12, 0, 0, 0, loc), "Mar 12"},
		{"last year", time.Date(2025, 12, 31, 12, 0, 0, 0, loc), "Dec 31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCreatedAt(tt.created, now); got != tt.want {
				t.Errorf("FormatCreatedAt() = %q, want %q", got, tt.want)
			}
		})
	}
}
