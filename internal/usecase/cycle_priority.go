package usecase

import (
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// CyclePriority advances a task's priority (normal → high → low → normal)
// and returns the new priority.
func (s *TaskStore) CyclePriority(id string) (domain.Priority, error) {
	i := s.indexOf(id)
	if i < 0 {
		return "", domain.ErrTaskNotFound
	}

	s.tasks[i].Priority = s.tasks[i].Priority.Next()
	s.logger.Info("task", fmt.Sprintf("%s priority=%s", id, s.tasks[i].Priority))

	return s.tasks[i].Priority, s.Save()
}
