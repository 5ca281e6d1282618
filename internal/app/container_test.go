package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/infra/codec"
	"github.com/runoshun/tasklist/internal/infra/config"
	"github.com/runoshun/tasklist/internal/infra/filestore"
	"github.com/runoshun/tasklist/internal/infra/jsonstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv(config.DataDirEnv, dataDir)

	c, err := New(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.IsType(t, &jsonstore.Store{}, c.KV)
	assert.IsType(t, codec.JSON{}, c.Codec)
	assert.Equal(t, filepath.Join(dataDir, "storage.json"), c.Config.StorePath)
	assert.Equal(t, filepath.Join(dataDir, "logs"), c.Config.LogDir)
	assert.Empty(t, c.Config.Warnings)
}

func TestNew_DirBackendYAML(t *testing.T) {
	t.Setenv(config.DataDirEnv, t.TempDir())
	storeDir := filepath.Join(t.TempDir(), "tasks")
	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := "[storage]\nbackend = \"dir\"\nformat = \"yaml\"\npath = \"" + filepath.ToSlash(storeDir) + "\"\nunknown = 1\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	c, err := New(configPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.IsType(t, &filestore.Store{}, c.KV)
	assert.IsType(t, codec.YAML{}, c.Codec)
	assert.Equal(t, filepath.ToSlash(storeDir), c.Config.StorePath)
	assert.NotEmpty(t, c.Config.Warnings)
}

func TestNew_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[storage]\nbackend = \"sqlite\"\n"), 0o600))

	_, err := New(configPath)

	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestContainer_TaskStoreRoundTrip(t *testing.T) {
	t.Setenv(config.DataDirEnv, t.TempDir())
	c, err := New(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	store := c.TaskStore()
	require.NoError(t, store.Load())
	task, err := store.Add("persisted", domain.PriorityHigh)
	require.NoError(t, err)

	reloaded := c.TaskStore()
	require.NoError(t, reloaded.Load())
	got, ok := reloaded.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, task, got)
}

func TestOpenStore(t *testing.T) {
	_, err := OpenStore("sqlite", "/tmp/x")
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)

	_, err = OpenStore(domain.BackendJSON, "")
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}
