package domain

import "fmt"

// Priority represents the importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// priorityCycle is the fixed rotation used by Next.
// Order: normal → high → low → normal
var priorityCycle = []Priority{PriorityNormal, PriorityHigh, PriorityLow}

// AllPriorities returns all valid priority values.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityNormal, PriorityHigh}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	default:
		return false
	}
}

// Next returns the following priority in the cycle.
// Unknown values are treated as normal.
func (p Priority) Next() Priority {
	for i, c := range priorityCycle {
		if c == p {
			return priorityCycle[(i+1)%len(priorityCycle)]
		}
	}
	return PriorityHigh
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityNormal:
		return "Normal"
	case PriorityHigh:
		return "High"
	default:
		return string(p)
	}
}

// ParsePriority parses a priority string.
// An empty string yields PriorityNormal.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q (want low, normal or high)", ErrInvalidPriority, s)
	}
	return p, nil
}
