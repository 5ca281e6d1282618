package cli

import (
	"path/filepath"
	"testing"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/infra/codec"
	"github.com/runoshun/tasklist/internal/infra/filestore"
	"github.com/runoshun/tasklist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrateCommand_ToDirYAML(t *testing.T) {
	kv := testutil.NewMockKV()
	kv.Values[domain.DarkThemeKey] = "true"
	container := newTestContainer(kv)
	seedTasks(t, container,
		domain.NewTask("b2", "second", domain.PriorityHigh, testNow),
		domain.NewTask("a1", "first", domain.PriorityNormal, testNow),
	)
	destDir := filepath.Join(t.TempDir(), "store")

	out, _, err := runCommand(t, newMigrateCommand(container), "", "--to", "dir", "--to-path", destDir, "--to-format", "yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "Migrated 2 tasks to dir store at "+destDir)
	assert.Contains(t, out, "Copied theme preference")

	dest := filestore.New(destDir)
	data, ok, err := dest.Get(domain.TasksKey)
	require.NoError(t, err)
	require.True(t, ok)
	records, err := codec.YAML{}.Decode(data)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b2", records[0].ID)
	theme, ok, err := dest.Get(domain.DarkThemeKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", theme)
}

func TestNewMigrateCommand_SecondRunSkips(t *testing.T) {
	container := newTestContainer(testutil.NewMockKV())
	seedTasks(t, container, domain.NewTask("a1", "first", domain.PriorityNormal, testNow))
	destDir := filepath.Join(t.TempDir(), "store")

	_, _, err := runCommand(t, newMigrateCommand(container), "", "--to", "dir", "--to-path", destDir)
	require.NoError(t, err)

	out, _, err := runCommand(t, newMigrateCommand(container), "", "--to", "dir", "--to-path", destDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Migrated 0 tasks")
	assert.Contains(t, out, "(skipped 1 existing)")
}

func TestNewMigrateCommand_RejectsSameStore(t *testing.T) {
	container := newTestContainer(testutil.NewMockKV())

	_, _, err := runCommand(t, newMigrateCommand(container), "", "--to", "json", "--to-path", "/test/storage.json")

	assert.Error(t, err)
}

func TestNewMigrateCommand_InvalidBackend(t *testing.T) {
	container := newTestContainer(testutil.NewMockKV())

	_, _, err := runCommand(t, newMigrateCommand(container), "", "--to", "sqlite", "--to-path", t.TempDir())

	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestNewMigrateCommand_RequiresTo(t *testing.T) {
	container := newTestContainer(testutil.NewMockKV())

	_, _, err := runCommand(t, newMigrateCommand(container), "")

	assert.Error(t, err)
}
