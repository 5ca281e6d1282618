package config

import (
	"os"
	"path/filepath"

	"github.com/runoshun/tasklist/internal/domain"
)

// Environment overrides.
const (
	ConfigEnv  = "TASKLIST_CONFIG"   // Config file path
	DataDirEnv = "TASKLIST_DATA_DIR" // Data directory
)

// DefaultConfigPath returns $TASKLIST_CONFIG, else
// $XDG_CONFIG_HOME/tasklist/config.toml (falling back to ~/.config).
// Returns "" if no home directory is known.
func DefaultConfigPath() string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.ConfigPath(configHome)
}

// DefaultDataDir returns the directory holding storage and logs:
// $TASKLIST_DATA_DIR, else $XDG_DATA_HOME/tasklist, else ~/.local/share/tasklist.
func DefaultDataDir() string {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.AppDir(dataHome)
}
