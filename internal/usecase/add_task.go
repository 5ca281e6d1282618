package usecase

import (
	"fmt"
	"strings"

	"github.com/runoshun/tasklist/internal/domain"
)

// Add creates a task from the trimmed text and puts it at the top of the list.
// Empty text is rejected with domain.ErrEmptyText and the list is unchanged.
// An empty or unknown priority becomes normal.
func (s *TaskStore) Add(text string, priority domain.Priority) (domain.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Task{}, domain.ErrEmptyText
	}

	task := domain.NewTask(s.newID(), text, priority, s.clock.Now())
	s.tasks = append([]domain.Task{task}, s.tasks...)
	s.logger.Info("task", fmt.Sprintf("added %s: %q", task.ID, task.Text))

	return task, s.Save()
}

// newID returns an id not used by any task in the list.
func (s *TaskStore) newID() string {
	id := s.ids.NewID()
	for s.indexOf(id) >= 0 {
		id = s.ids.NewID()
	}
	return id
}
