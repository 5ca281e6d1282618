package domain

import "time"

// Storage keys.
const (
	TasksKey     = "tasks"     // Encoded task record list
	DarkThemeKey = "darkTheme" // "true" or "false"
)

// KeyValueStore is the persistence medium for tasks and preferences.
type KeyValueStore interface {
	// Get returns the value stored under key.
	// ok is false (with a nil error) when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key.
	Set(key, value string) error
}

// KeyLister is implemented by stores that can enumerate their keys.
type KeyLister interface {
	// Keys returns the stored keys in sorted order.
	Keys() ([]string, error)
}

// TaskCodec converts between the persisted text format and task records.
type TaskCodec interface {
	// Encode serializes records into their textual form.
	Encode(records []TaskRecord) (string, error)

	// Decode parses the textual form back into records.
	Decode(data string) ([]TaskRecord, error)
}

// IDGenerator produces unique task IDs.
type IDGenerator interface {
	// NewID returns an ID not returned by any earlier call in this process.
	NewID() string
}

// Logger provides levelled, categorized logging.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ConfigManager manages the config file.
type ConfigManager interface {
	// Path returns the config file path.
	Path() string
	// Exists reports whether the config file exists.
	Exists() bool
	// Init writes the default template. Returns ErrConfigExists unless force is set.
	Init(force bool) error
}
