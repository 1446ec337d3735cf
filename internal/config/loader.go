package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads the settings file and merges it over defaults.
type Loader struct{}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the YAML file at path and returns a Config with defaults
// applied for missing fields. A missing file yields pure defaults. An
// unreadable or invalid file is skipped with a warning rather than
// failing the command.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("config file not found, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		slog.Warn("config file unreadable, using defaults", "path", path, "error", err)
		return cfg, nil
	}

	// Decoding over the prefilled struct keeps defaults for absent keys.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Warn("config file invalid, using defaults", "path", path, "error", err)
		return NewDefaultConfig(), nil
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}
