// Package jsonstore provides a JSON file-based implementation of KeyValueStore.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/runoshun/tasklist/internal/domain"
)

const storeSchema = 1

// storeData represents the JSON file structure.
// Fields are ordered to minimize memory padding.
type storeData struct {
	Values map[string]string `json:"values"`
	Meta   meta              `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	Schema int `json:"schema"`
}

// Store implements domain.KeyValueStore using a single JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Get retrieves the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := s.withLock(func(data *storeData) error {
		value, ok = data.Values[key]
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return value, ok, nil
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Values[key] = value
		return nil
	})
}

// Keys returns all stored keys in sorted order.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.withLock(func(data *storeData) error {
		for k := range data.Values {
			keys = append(keys, k)
		}
		return nil
	})
	slices.Sort(keys)
	return keys, err
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the store file. A missing file yields an empty store.
func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &storeData{
				Values: make(map[string]string),
				Meta:   meta{Schema: storeSchema},
			}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	// Ensure map is initialized
	if data.Values == nil {
		data.Values = make(map[string]string)
	}
	if data.Meta.Schema == 0 {
		data.Meta.Schema = storeSchema
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements KeyValueStore and KeyLister.
var (
	_ domain.KeyValueStore = (*Store)(nil)
	_ domain.KeyLister     = (*Store)(nil)
)
