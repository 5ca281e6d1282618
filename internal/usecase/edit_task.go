package usecase

import (
	"fmt"
	"strings"

	"github.com/runoshun/tasklist/internal/domain"
)

// EditText replaces a task's text with the trimmed newText.
// It reports whether the text changed; identical text is a no-op and
// empty text is rejected with domain.ErrEmptyText. Storage is only
// written when the text changed.
func (s *TaskStore) EditText(id, newText string) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, domain.ErrTaskNotFound
	}

	newText = strings.TrimSpace(newText)
	if newText == "" {
		return false, domain.ErrEmptyText
	}
	if newText == s.tasks[i].Text {
		return false, nil
	}

	s.tasks[i].Text = newText
	s.logger.Info("task", fmt.Sprintf("edited %s: %q", id, newText))

	return true, s.Save()
}
