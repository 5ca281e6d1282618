package usecase

import (
	"fmt"
	"slices"

	"github.com/runoshun/tasklist/internal/domain"
)

// ClearCompleted removes every done task, keeping the order of the rest,
// and returns how many were removed.
func (s *TaskStore) ClearCompleted() (int, error) {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t domain.Task) bool { return t.Done })
	removed := before - len(s.tasks)
	s.logger.Info("task", fmt.Sprintf("cleared %d completed", removed))

	return removed, s.Save()
}

// ClearAll empties the list and returns how many tasks were removed.
func (s *TaskStore) ClearAll() (int, error) {
	removed := len(s.tasks)
	s.tasks = nil
	s.logger.Info("task", fmt.Sprintf("cleared all (%d)", removed))

	return removed, s.Save()
}
