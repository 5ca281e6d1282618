package usecase

import (
	"fmt"
	"slices"

	"github.com/runoshun/tasklist/internal/domain"
)

// Delete removes a task and returns its text.
func (s *TaskStore) Delete(id string) (string, error) {
	i := s.indexOf(id)
	if i < 0 {
		return "", domain.ErrTaskNotFound
	}

	text := s.tasks[i].Text
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.logger.Info("task", fmt.Sprintf("deleted %s", id))

	return text, s.Save()
}
