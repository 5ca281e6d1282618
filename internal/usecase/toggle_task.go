package usecase

import (
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// ToggleDone flips the done flag of a task and returns the updated task.
func (s *TaskStore) ToggleDone(id string) (domain.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	s.tasks[i].Done = !s.tasks[i].Done
	s.logger.Info("task", fmt.Sprintf("%s done=%t", id, s.tasks[i].Done))

	return s.tasks[i], s.Save()
}
