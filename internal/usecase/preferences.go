package usecase

import (
	"fmt"
	"strconv"

	"github.com/runoshun/tasklist/internal/domain"
)

// Preferences stores the theme preference.
type Preferences struct {
	kv     domain.KeyValueStore
	logger domain.Logger
}

// NewPreferences creates a new Preferences.
func NewPreferences(kv domain.KeyValueStore, logger domain.Logger) *Preferences {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Preferences{kv: kv, logger: logger}
}

// DarkTheme reports whether the dark theme is enabled.
// Absent, unreadable or unparseable values mean light.
func (p *Preferences) DarkTheme() bool {
	value, ok, err := p.kv.Get(domain.DarkThemeKey)
	if err != nil {
		p.logger.Warn("prefs", fmt.Sprintf("read theme: %v", err))
		return false
	}
	if !ok {
		return false
	}
	dark, err := strconv.ParseBool(value)
	return err == nil && dark
}

// SetDarkTheme stores the theme preference.
func (p *Preferences) SetDarkTheme(dark bool) error {
	if err := p.kv.Set(domain.DarkThemeKey, strconv.FormatBool(dark)); err != nil {
		p.logger.Warn("prefs", fmt.Sprintf("save theme: %v", err))
		return fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
	}
	return nil
}

// ToggleTheme flips the theme preference and returns the new value.
// The returned value is the new theme even if saving failed.
func (p *Preferences) ToggleTheme() (bool, error) {
	dark := !p.DarkTheme()
	return dark, p.SetDarkTheme(dark)
}
