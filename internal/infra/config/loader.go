// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tasklist/internal/domain"
)

// Loader loads configuration from a TOML file.
type Loader struct {
	path string // Path to config.toml (may not exist)
}

// NewLoader creates a new Loader for the config file at path.
// An empty path means the default location under XDG_CONFIG_HOME.
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultConfigPath()
	}
	return &Loader{path: path}
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the configuration merged over defaults.
// A missing file yields the default configuration.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.path == "" {
		return base, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrConfigInvalid, l.path, err)
	}

	cfg := mergeConfigs(base, convertRawToDomainConfig(raw))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Unknown keys and values of the wrong type are reported and ignored.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "storage", "log":
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}

		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s]: expected table", section))
			continue
		}

		for k, v := range m {
			var dst *string
			switch section + "." + k {
			case "storage.backend":
				dst = &res.Storage.Backend
			case "storage.path":
				dst = &res.Storage.Path
			case "storage.format":
				dst = &res.Storage.Format
			case "log.level":
				dst = &res.Log.Level
			case "log.dir":
				dst = &res.Log.Dir
			default:
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
				continue
			}
			s, ok := v.(string)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("[%s] %s: expected string", section, k))
				continue
			}
			*dst = s
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs overlays non-empty values of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	res := *base
	if override.Storage.Backend != "" {
		res.Storage.Backend = override.Storage.Backend
	}
	if override.Storage.Path != "" {
		res.Storage.Path = override.Storage.Path
	}
	if override.Storage.Format != "" {
		res.Storage.Format = override.Storage.Format
	}
	if override.Log.Level != "" {
		res.Log.Level = override.Log.Level
	}
	if override.Log.Dir != "" {
		res.Log.Dir = override.Log.Dir
	}
	res.Warnings = append(append([]string(nil), base.Warnings...), override.Warnings...)
	return &res
}
