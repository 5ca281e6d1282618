package domain

import "fmt"

// Filter is a named predicate selecting a subset of tasks for display.
type Filter string

const (
	FilterAll    Filter = "all"    // Every task
	FilterActive Filter = "active" // Not done
	FilterDone   Filter = "done"   // Done
	FilterHigh   Filter = "high"   // High priority
)

// AllFilters returns all filters in display order.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterDone, FilterHigh}
}

// Match returns true if the task satisfies the filter.
// Unknown filters match nothing.
func (f Filter) Match(t *Task) bool {
	switch f {
	case FilterAll:
		return true
	case FilterActive:
		return !t.Done
	case FilterDone:
		return t.Done
	case FilterHigh:
		return t.Priority == PriorityHigh
	default:
		return false
	}
}

// Next returns the following filter in display order, wrapping around.
func (f Filter) Next() Filter {
	all := AllFilters()
	for i, c := range all {
		if c == f {
			return all[(i+1)%len(all)]
		}
	}
	return FilterAll
}

// Display returns a human-readable label for the filter.
func (f Filter) Display() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterActive:
		return "Active"
	case FilterDone:
		return "Completed"
	case FilterHigh:
		return "High Priority"
	default:
		return string(f)
	}
}

// ParseFilter parses a filter name. An empty string yields FilterAll.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range AllFilters() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want all, active, done or high)", ErrInvalidFilter, s)
}
