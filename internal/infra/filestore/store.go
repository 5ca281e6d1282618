// Package filestore provides a directory-based implementation of KeyValueStore.
// Each key is stored in its own file under the root directory.
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"syscall"

	"github.com/runoshun/tasklist/internal/domain"
)

const valueFileExt = ".val"

// keyPattern restricts keys to names that are safe as file names.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)

// ErrInvalidKey is returned for keys that cannot be used as file names.
var ErrInvalidKey = errors.New("invalid storage key")

// Store implements domain.KeyValueStore using files under a directory.
type Store struct {
	rootDir  string
	lockPath string
}

// New creates a new Store rooted at dir.
// The directory is created on first write.
func New(dir string) *Store {
	return &Store{rootDir: dir, lockPath: filepath.Join(dir, ".lock")}
}

// Get retrieves the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	path, err := s.valuePath(key)
	if err != nil {
		return "", false, err
	}

	var (
		value string
		ok    bool
	)
	err = s.withLock(func() error {
		content, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("read %s: %w", key, err)
		}
		value, ok = string(content), true
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return value, ok, nil
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	path, err := s.valuePath(key)
	if err != nil {
		return err
	}
	return s.withLockWrite(func() error {
		return writeAtomic(path, []byte(value), 0o600)
	})
}

// Keys returns all stored keys in sorted order.
// A missing directory yields no keys.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.withLock(func() error {
		entries, err := os.ReadDir(s.rootDir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("list keys: %w", err)
		}
		for _, e := range entries {
			name, ok := strings.CutSuffix(e.Name(), valueFileExt)
			if ok && !e.IsDir() && keyPattern.MatchString(name) {
				keys = append(keys, name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(keys)
	return keys, nil
}

func (s *Store) valuePath(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.rootDir, key+valueFileExt), nil
}

func (s *Store) withLock(fn func() error) error {
	// Nothing to lock (or read) before the directory exists
	if _, err := os.Stat(s.rootDir); os.IsNotExist(err) {
		return fn()
	}
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) withLockWrite(fn func() error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	if err := os.MkdirAll(s.rootDir, 0o750); err != nil {
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

func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Ensure Store implements KeyValueStore and KeyLister.
var (
	_ domain.KeyValueStore = (*Store)(nil)
	_ domain.KeyLister     = (*Store)(nil)
)
