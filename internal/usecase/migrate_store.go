package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/runoshun/tasklist/internal/domain"
)

// StoreEndpoint is one side of a migration: a key-value store and the codec
// its task list is written in.
type StoreEndpoint struct {
	KV    domain.KeyValueStore
	Codec domain.TaskCodec
}

// MigrateStoreInput contains parameters for MigrateStore.
type MigrateStoreInput struct {
	// Force overwrites destination tasks that differ from the source instead of failing.
	Force bool

	// SkipTheme leaves the destination theme preference untouched.
	SkipTheme bool
}

// MigrateStoreOutput contains migration results.
type MigrateStoreOutput struct {
	Total       int
	Migrated    int
	Skipped     int
	Overwritten int
	ThemeCopied bool
}

// MigrateStore copies tasks and preferences between storage backends.
// Destination-only tasks are kept; the merged list is ordered newest first.
type MigrateStore struct {
	clock  domain.Clock
	ids    domain.IDGenerator
	source StoreEndpoint
	dest   StoreEndpoint
}

// NewMigrateStore creates a new MigrateStore use case.
func NewMigrateStore(source, dest StoreEndpoint, clock domain.Clock, ids domain.IDGenerator) *MigrateStore {
	return &MigrateStore{source: source, dest: dest, clock: clock, ids: ids}
}

// Execute merges the source task list into the destination.
// A destination task with the same id is skipped if identical; otherwise
// the migration fails with domain.ErrMigrationConflict unless Force is set.
// Nothing is written when the migration fails.
// Legacy source records are upgraded and written back to the source before
// the destination, so repeated runs see the same ids.
func (uc *MigrateStore) Execute(_ context.Context, in MigrateStoreInput) (*MigrateStoreOutput, error) {
	if uc.source.KV == nil || uc.dest.KV == nil || uc.source.Codec == nil || uc.dest.Codec == nil {
		return nil, errors.New("source or destination store is nil")
	}

	sourceTasks, upgraded, err := uc.readTasks(uc.source)
	if err != nil {
		return nil, fmt.Errorf("read source tasks: %w", err)
	}
	merged, _, err := uc.readTasks(uc.dest)
	if err != nil {
		return nil, fmt.Errorf("read destination tasks: %w", err)
	}

	out := &MigrateStoreOutput{Total: len(sourceTasks)}
	for _, task := range sourceTasks {
		i := slices.IndexFunc(merged, func(t domain.Task) bool { return t.ID == task.ID })
		switch {
		case i < 0:
			merged = append(merged, task)
			out.Migrated++
		case sameTask(merged[i], task):
			out.Skipped++
		case in.Force:
			merged[i] = task
			out.Overwritten++
		default:
			return nil, fmt.Errorf("%w: %s", domain.ErrMigrationConflict, task.ID)
		}
	}

	slices.SortStableFunc(merged, func(a, b domain.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if upgraded > 0 {
		if err := writeTasks(uc.source, sourceTasks); err != nil {
			return nil, fmt.Errorf("write back upgraded source tasks: %w", err)
		}
	}

	data, err := uc.dest.Codec.Encode(domain.ToRecords(merged))
	if err != nil {
		return nil, fmt.Errorf("encode destination tasks: %w", err)
	}
	if err := uc.dest.KV.Set(domain.TasksKey, data); err != nil {
		return nil, fmt.Errorf("write destination tasks: %w", err)
	}

	if !in.SkipTheme {
		value, ok, err := uc.source.KV.Get(domain.DarkThemeKey)
		if err != nil {
			return nil, fmt.Errorf("read source theme: %w", err)
		}
		if ok {
			if err := uc.dest.KV.Set(domain.DarkThemeKey, value); err != nil {
				return nil, fmt.Errorf("write destination theme: %w", err)
			}
			out.ThemeCopied = true
		}
	}

	return out, nil
}

// readTasks returns the endpoint's tasks and how many were upgraded from
// legacy records.
func (uc *MigrateStore) readTasks(ep StoreEndpoint) ([]domain.Task, int, error) {
	value, ok, err := ep.KV.Get(domain.TasksKey)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, nil
	}
	records, err := ep.Codec.Decode(value)
	if err != nil {
		return nil, 0, err
	}
	tasks, upgraded := domain.UpgradeRecords(records, uc.clock.Now(), uc.ids.NewID)
	return tasks, upgraded, nil
}

func writeTasks(ep StoreEndpoint, tasks []domain.Task) error {
	data, err := ep.Codec.Encode(domain.ToRecords(tasks))
	if err != nil {
		return err
	}
	return ep.KV.Set(domain.TasksKey, data)
}

func sameTask(a, b domain.Task) bool {
	return a.ID == b.ID && a.Text == b.Text && a.Done == b.Done &&
		a.Priority == b.Priority && a.CreatedAt.Equal(b.CreatedAt)
}
