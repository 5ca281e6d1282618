package domain

import "time"

// TaskRecord is the persisted form of a task.
// Every field is optional so that records written by older versions
// (without id, createdAt or priority) still decode.
type TaskRecord struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Text      string `json:"text" yaml:"text"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	Priority  string `json:"priority,omitempty" yaml:"priority,omitempty"`
	Done      bool   `json:"done" yaml:"done"`
}

// TimeFormat is the timestamp layout used for createdAt.
// Matches the millisecond ISO-8601 strings written by the browser version.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// ToRecord converts a task to its persisted form.
func ToRecord(t Task) TaskRecord {
	return TaskRecord{
		ID:        t.ID,
		Text:      t.Text,
		Done:      t.Done,
		CreatedAt: t.CreatedAt.UTC().Format(TimeFormat),
		Priority:  string(t.Priority),
	}
}

// UpgradeRecord converts a persisted record to a task, filling in fields
// that legacy records lack:
//   - a missing id is replaced by newID()
//   - a missing or unparseable createdAt becomes now
//   - a missing or unknown priority becomes normal
//
// text and done are never altered. The second return value reports
// whether any field had to be synthesized.
func UpgradeRecord(rec TaskRecord, now time.Time, newID func() string) (Task, bool) {
	upgraded := false

	id := rec.ID
	if id == "" {
		id = newID()
		upgraded = true
	}

	created, err := parseTime(rec.CreatedAt)
	if err != nil {
		created = Timestamp(now)
		upgraded = true
	}

	priority := Priority(rec.Priority)
	if !priority.IsValid() {
		priority = PriorityNormal
		upgraded = true
	}

	return Task{
		ID:        id,
		Text:      rec.Text,
		Done:      rec.Done,
		CreatedAt: created,
		Priority:  priority,
	}, upgraded
}

// Timestamp normalizes t to the precision and zone that survive a
// round-trip through TimeFormat.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// parseTime accepts both the millisecond layout and plain RFC 3339.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return Timestamp(t), nil
}

// UpgradeRecords applies UpgradeRecord to each record in order.
// A record whose id repeats an earlier one is given a fresh id.
// Returns the tasks and the number of records that were upgraded.
func UpgradeRecords(records []TaskRecord, now time.Time, newID func() string) ([]Task, int) {
	tasks := make([]Task, 0, len(records))
	seen := make(map[string]bool, len(records))
	upgraded := 0
	for _, rec := range records {
		task, changed := UpgradeRecord(rec, now, newID)
		if seen[task.ID] {
			task.ID = newID()
			changed = true
		}
		seen[task.ID] = true
		if changed {
			upgraded++
		}
		tasks = append(tasks, task)
	}
	return tasks, upgraded
}

// ToRecords converts tasks to their persisted form, preserving order.
func ToRecords(tasks []Task) []TaskRecord {
	records := make([]TaskRecord, len(tasks))
	for i := range tasks {
		records[i] = ToRecord(tasks[i])
	}
	return records
}
