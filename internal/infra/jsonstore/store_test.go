package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data", "storage.json"))
}

func TestStore_GetMissingFile(t *testing.T) {
	store := newTestStore(t)

	value, ok, err := store.Get("tasks")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)

	// Reading must not create the store file
	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_SetAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("tasks", `[{"text":"a"}]`))
	require.NoError(t, store.Set("darkTheme", "true"))

	value, ok, err := store.Get("tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"text":"a"}]`, value)

	value, ok, err = store.Get("darkTheme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)

	_, ok, err = store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Overwrite(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("k", "one"))
	require.NoError(t, store.Set("k", "two"))

	value, _, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "two", value)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	require.NoError(t, New(path).Set("k", "v"))

	value, ok, err := New(path).Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestStore_FileFormat(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("k", "v"))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var data storeData
	require.NoError(t, json.Unmarshal(content, &data))
	assert.Equal(t, storeSchema, data.Meta.Schema)
	assert.Equal(t, map[string]string{"k": "v"}, data.Values)

	// No temp file left behind
	_, statErr := os.Stat(store.Path() + ".tmp")
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_CorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o750))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))

	_, _, err := store.Get("k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse store file")

	err = store.Set("k", "v")
	require.Error(t, err)
}

func TestStore_Keys(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("tasks", "[]"))
	require.NoError(t, store.Set("darkTheme", "false"))

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"darkTheme", "tasks"}, keys)
}
