// Package usecase contains application use cases.
package usecase

import (
	"fmt"
	"strings"

	"github.com/runoshun/tasklist/internal/domain"
)

// TaskStore owns the ordered task list (newest first), applies mutations
// and persists the list through a key-value store.
//
// Mutations are applied in memory first. If persisting fails, the
// mutation's result is still returned together with an error wrapping
// domain.ErrStorageWrite; the in-memory list is kept as is.
//
// TaskStore is not safe for concurrent use.
type TaskStore struct {
	kv     domain.KeyValueStore
	codec  domain.TaskCodec
	clock  domain.Clock
	ids    domain.IDGenerator
	logger domain.Logger
	tasks  []domain.Task
}

// NewTaskStore creates a new TaskStore with an empty list.
// Call Load to restore persisted tasks.
func NewTaskStore(kv domain.KeyValueStore, codec domain.TaskCodec, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger) *TaskStore {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &TaskStore{
		kv:     kv,
		codec:  codec,
		clock:  clock,
		ids:    ids,
		logger: logger,
	}
}

// Load replaces the in-memory list with the persisted one.
//
// A missing key yields an empty list. Unreadable or undecodable data also
// yields an empty list and an error wrapping domain.ErrStorageRead.
// Legacy records are upgraded (see domain.UpgradeRecords) and written back
// so that synthesized ids are stable; if that write fails the upgraded list
// is kept and an error wrapping domain.ErrStorageWrite is returned.
func (s *TaskStore) Load() error {
	s.tasks = nil

	value, ok, err := s.kv.Get(domain.TasksKey)
	if err != nil {
		return s.readFailed(err)
	}
	if !ok {
		return nil
	}

	records, err := s.codec.Decode(value)
	if err != nil {
		return s.readFailed(err)
	}

	tasks, upgraded := domain.UpgradeRecords(records, s.clock.Now(), s.ids.NewID)
	s.tasks = tasks
	s.logger.Debug("store", fmt.Sprintf("loaded %d tasks", len(tasks)))

	if upgraded > 0 {
		s.logger.Info("store", fmt.Sprintf("upgraded %d legacy records", upgraded))
		return s.Save()
	}
	return nil
}

// Save writes the in-memory list to storage.
// On failure the list is untouched and an error wrapping
// domain.ErrStorageWrite is returned.
func (s *TaskStore) Save() error {
	data, err := s.codec.Encode(domain.ToRecords(s.tasks))
	if err != nil {
		return s.writeFailed(err)
	}
	if err := s.kv.Set(domain.TasksKey, data); err != nil {
		return s.writeFailed(err)
	}
	return nil
}

func (s *TaskStore) readFailed(err error) error {
	s.logger.Warn("store", fmt.Sprintf("load failed, starting empty: %v", err))
	return fmt.Errorf("%w: %w", domain.ErrStorageRead, err)
}

func (s *TaskStore) writeFailed(err error) error {
	s.logger.Warn("store", fmt.Sprintf("save failed, keeping in-memory state: %v", err))
	return fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
}

// Tasks returns a copy of the full list, newest first.
func (s *TaskStore) Tasks() []domain.Task {
	return append([]domain.Task(nil), s.tasks...)
}

// Get returns a copy of the task with the given id.
func (s *TaskStore) Get(id string) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Resolve maps an exact id or a unique id prefix to a task id.
func (s *TaskStore) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", domain.ErrTaskNotFound
	}
	if s.indexOf(ref) >= 0 {
		return ref, nil
	}

	match := ""
	for i := range s.tasks {
		if strings.HasPrefix(s.tasks[i].ID, ref) {
			if match != "" {
				return "", fmt.Errorf("%w: %q", domain.ErrAmbiguousRef, ref)
			}
			match = s.tasks[i].ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrTaskNotFound, ref)
	}
	return match, nil
}

// FilteredView returns, in list order, copies of the tasks matching both the
// filter and the search term. It never mutates the store.
func (s *TaskStore) FilteredView(filter domain.Filter, term string) []domain.Task {
	view := make([]domain.Task, 0, len(s.tasks))
	for i := range s.tasks {
		if s.tasks[i].Matches(filter, term) {
			view = append(view, s.tasks[i])
		}
	}
	return view
}

// Stats returns counts over the full list, ignoring any filter.
func (s *TaskStore) Stats() domain.Stats {
	return domain.ComputeStats(s.tasks)
}

func (s *TaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
