package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/tasklist/internal/domain"
)

// Manager manages the configuration file.
type Manager struct {
	path string
}

// NewManager creates a new Manager for the config file at path.
// An empty path means the default location.
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultConfigPath()
	}
	return &Manager{path: path}
}

// Path returns the config file path.
func (m *Manager) Path() string {
	return m.path
}

// Exists reports whether the config file exists.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

// Init writes the default config template.
// Returns domain.ErrConfigExists unless force is set.
func (m *Manager) Init(force bool) error {
	if m.path == "" {
		return fmt.Errorf("%w: no config path", domain.ErrConfigInvalid)
	}
	if m.Exists() && !force {
		return domain.ErrConfigExists
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(m.path, []byte(domain.ConfigTemplate()), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

var _ domain.ConfigManager = (*Manager)(nil)
