// Package config provides configuration management for keyflow.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	kferrors "github.com/keyflow/keyflow/internal/errors"
	"github.com/keyflow/keyflow/internal/theme"
)

// Config holds the configuration for a keyflow session.
type Config struct {
	// Theme is the preference used when nothing is persisted:
	// "light", "dark", or "system" (default: "system").
	Theme string

	// StorageKey is the key the preference is persisted under
	// (default: "ui-theme").
	StorageKey string

	// StatePath is the path of the preference storage file
	// (default: <user config dir>/keyflow/storage.json).
	StatePath string

	// SchemeFile is an optional file whose content ("light"/"dark") is
	// watched as the OS colour-scheme signal. When empty, the scheme is
	// detected once at startup and no change events are delivered.
	SchemeFile string

	// DisableSystem removes "system" from the selectable preferences.
	DisableSystem bool

	// KeepTransitions disables the one-frame flash suppression when the
	// theme flips.
	KeepTransitions bool

	// Attribute names the marker slot written to the render surface
	// (default: "data-theme"; "class" applies the marker as a class).
	Attribute string

	// LightLabel and DarkLabel override the marker values
	// (defaults: "light" and "dark").
	LightLabel string
	DarkLabel  string

	// NoPersist keeps the preference in memory only.
	NoPersist bool

	// Minimal disables the TUI and prints a plain status line instead.
	Minimal bool
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Theme:      string(theme.PreferenceSystem),
		StorageKey: theme.DefaultStorageKey,
		StatePath:  DefaultStatePath(),
		Attribute:  theme.DefaultAttribute,
		LightLabel: string(theme.SchemeLight),
		DarkLabel:  string(theme.SchemeDark),
	}
}

// DefaultStatePath returns the default preference storage file path.
// Falls back to a dotfile in the working directory when the user config
// dir cannot be determined.
func DefaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".keyflow-storage.json"
	}
	return filepath.Join(dir, "keyflow", "storage.json")
}

// Validate checks that the configuration is valid.
// Returns an error if validation fails.
func (c *Config) Validate() error {
	if !theme.ValidPreference(c.Theme) {
		return fmt.Errorf("%w: %q", kferrors.ErrUnknownTheme, c.Theme)
	}
	if c.DisableSystem && c.Theme == string(theme.PreferenceSystem) {
		return kferrors.ErrSystemDisabled
	}
	if c.StorageKey == "" {
		return fmt.Errorf("storage key cannot be empty")
	}
	if c.Attribute == "" {
		return fmt.Errorf("attribute cannot be empty")
	}
	return nil
}

// ThemeOptions converts the configuration to theme store options.
func (c *Config) ThemeOptions() theme.Options {
	return theme.Options{
		DefaultTheme:    theme.Preference(c.Theme),
		StorageKey:      c.StorageKey,
		DisableSystem:   c.DisableSystem,
		KeepTransitions: c.KeepTransitions,
		Attribute:       c.Attribute,
		Values: theme.Labels{
			Light: c.LightLabel,
			Dark:  c.DarkLabel,
		},
	}
}
