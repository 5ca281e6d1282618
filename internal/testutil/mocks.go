// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/runoshun/tasklist/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockKV is an in-memory domain.KeyValueStore.
// Fields are ordered to minimize memory padding.
type MockKV struct {
	Values   map[string]string
	GetErr   error
	SetErr   error
	SetCalls int
}

// NewMockKV creates a new MockKV with an initialized map.
func NewMockKV() *MockKV {
	return &MockKV{Values: make(map[string]string)}
}

// Ensure MockKV implements domain.KeyValueStore and domain.KeyLister interfaces.
var (
	_ domain.KeyValueStore = (*MockKV)(nil)
	_ domain.KeyLister     = (*MockKV)(nil)
)

// Get returns the stored value or the configured error.
func (m *MockKV) Get(key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

// Set stores the value unless SetErr is configured.
func (m *MockKV) Set(key, value string) error {
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Values[key] = value
	return nil
}

// Keys returns the stored keys in sorted order, or GetErr.
func (m *MockKV) Keys() ([]string, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	keys := make([]string, 0, len(m.Values))
	for k := range m.Values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// MockIDGenerator returns sequential ids: id-1, id-2, ...
type MockIDGenerator struct {
	Prefix string
	n      int
}

// Ensure MockIDGenerator implements domain.IDGenerator interface.
var _ domain.IDGenerator = (*MockIDGenerator)(nil)

// NewID returns the next sequential id.
func (m *MockIDGenerator) NewID() string {
	m.n++
	prefix := m.Prefix
	if prefix == "" {
		prefix = "id-"
	}
	return fmt.Sprintf("%s%d", prefix, m.n)
}

// LogEntry is a single entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// Count returns the number of entries at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	ConfigPath string
	Exist      bool
	InitCalled bool
	InitForce  bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{ConfigPath: "/home/test/.config/tasklist/config.toml"}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// Path returns the configured path.
func (m *MockConfigManager) Path() string {
	return m.ConfigPath
}

// Exists returns the configured existence flag.
func (m *MockConfigManager) Exists() bool {
	return m.Exist
}

// Init records the call and returns the configured error.
// Returns domain.ErrConfigExists when Exist is set and force is not.
func (m *MockConfigManager) Init(force bool) error {
	m.InitCalled = true
	m.InitForce = force
	if m.InitErr != nil {
		return m.InitErr
	}
	if m.Exist && !force {
		return domain.ErrConfigExists
	}
	m.Exist = true
	return nil
}
