// Package config provides configuration management for keyflow.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the configuration loaded from .keyflow/config.toml.
type FileConfig struct {
	// Theme is the preference used when nothing is persisted.
	Theme string `toml:"theme"`

	// StorageKey is the persistence key for the preference.
	StorageKey string `toml:"storage_key"`

	// StatePath is the path of the preference storage file.
	StatePath string `toml:"state_path"`

	// SchemeFile is the watched OS colour-scheme file.
	SchemeFile string `toml:"scheme_file"`

	// DisableSystem removes "system" from the selectable preferences.
	DisableSystem bool `toml:"disable_system"`

	// KeepTransitions disables the one-frame flash suppression.
	KeepTransitions bool `toml:"keep_transitions"`

	// Attribute names the marker slot ("class" for class application).
	Attribute string `toml:"attribute"`

	// Values overrides the marker labels.
	Values *ValuesConfig `toml:"values"`
}

// ValuesConfig represents the [values] section in config.toml.
type ValuesConfig struct {
	Light string `toml:"light"`
	Dark  string `toml:"dark"`
}

// LoadFileConfig reads configuration from .keyflow/config.toml in the
// working directory. Returns nil if the file doesn't exist (not an error).
func LoadFileConfig(workingDir string) (*FileConfig, error) {
	configPath := filepath.Join(workingDir, ".keyflow", "config.toml")
	return LoadFileConfigFrom(configPath)
}

// LoadFileConfigFrom reads configuration from a specific file path.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfigFrom(configPath string) (*FileConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Apply overlays the file configuration onto cfg. Only fields the file
// actually sets are applied.
func (fc *FileConfig) Apply(cfg *Config) {
	if fc == nil {
		return
	}
	if fc.Theme != "" {
		cfg.Theme = fc.Theme
	}
	if fc.StorageKey != "" {
		cfg.StorageKey = fc.StorageKey
	}
	if fc.StatePath != "" {
		cfg.StatePath = fc.StatePath
	}
	if fc.SchemeFile != "" {
		cfg.SchemeFile = fc.SchemeFile
	}
	if fc.DisableSystem {
		cfg.DisableSystem = true
	}
	if fc.KeepTransitions {
		cfg.KeepTransitions = true
	}
	if fc.Attribute != "" {
		cfg.Attribute = fc.Attribute
	}
	if fc.Values != nil {
		if fc.Values.Light != "" {
			cfg.LightLabel = fc.Values.Light
		}
		if fc.Values.Dark != "" {
			cfg.DarkLabel = fc.Values.Dark
		}
	}
}
