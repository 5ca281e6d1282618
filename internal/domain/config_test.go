package domain

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Storage.Backend != BackendJSON {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, BackendJSON)
	}
	if cfg.Storage.Format != FormatJSON {
		t.Errorf("Storage.Format = %q, want %q", cfg.Storage.Format, FormatJSON)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"bad backend", func(c *Config) { c.Storage.Backend = "sqlite" }, "storage.backend"},
		{"bad format", func(c *Config) { c.Storage.Format = "xml" }, "storage.format"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrConfigInvalid) {
				t.Fatalf("Validate() error = %v, want ErrConfigInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention %s", err, tt.field)
			}
		})
	}
}

func TestStoragePath(t *testing.T) {
	if got := StoragePath("/data", BackendJSON); got != filepath.Join("/data", "storage.json") {
		t.Errorf("StoragePath(json) = %q", got)
	}
	if got := StoragePath("/data", BackendDir); got != filepath.Join("/data", "storage") {
		t.Errorf("StoragePath(dir) = %q", got)
	}
}

func TestConfigTemplate(t *testing.T) {
	tmpl := ConfigTemplate()
	for _, want := range []string{"[storage]", "[log]", "backend", "format", "level"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("template missing %q", want)
		}
	}
}
