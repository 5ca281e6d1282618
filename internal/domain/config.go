package domain

import (
	_ "embed"
	"fmt"
	"path/filepath"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Storage  StorageConfig `toml:"storage"`
	Log      LogConfig     `toml:"log"`
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend string `toml:"backend,omitempty"` // "json" (default) or "dir"
	Path    string `toml:"path,omitempty"`    // File (json) or directory (dir); empty = under data dir
	Format  string `toml:"format,omitempty"`  // Task list encoding: "json" (default) or "yaml"
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	Dir   string `toml:"dir,omitempty"`   // Log directory; empty = <data dir>/logs
}

// Storage backends.
const (
	BackendJSON = "json"
	BackendDir  = "dir"
)

// Task list formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Default configuration values.
const (
	DefaultLogLevel = "info"
	AppDirName      = "tasklist"
	ConfigFileName  = "config.toml"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Format:  FormatJSON,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendDir:
	default:
		return fmt.Errorf("%w: storage.backend %q (want %q or %q)", ErrConfigInvalid, c.Storage.Backend, BackendJSON, BackendDir)
	}
	switch c.Storage.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: storage.format %q (want %q or %q)", ErrConfigInvalid, c.Storage.Format, FormatJSON, FormatYAML)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrConfigInvalid, c.Log.Level)
	}
	return nil
}

// ConfigTemplate returns the commented default configuration file.
func ConfigTemplate() string {
	return configTemplateContent
}

// AppDir returns the application directory under a base directory
// such as XDG_CONFIG_HOME or XDG_DATA_HOME.
func AppDir(base string) string {
	return filepath.Join(base, AppDirName)
}

// ConfigPath returns the config file path under configHome.
func ConfigPath(configHome string) string {
	return filepath.Join(AppDir(configHome), ConfigFileName)
}

// StoragePath returns the default storage location for a backend.
func StoragePath(dataDir, backend string) string {
	if backend == BackendDir {
		return filepath.Join(dataDir, "storage")
	}
	return filepath.Join(dataDir, "storage.json")
}

// LogPath returns the path to the log file.
func LogPath(logDir string) string {
	return filepath.Join(logDir, "tasklist.log")
}
