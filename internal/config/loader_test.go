package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes content to a temp config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UI.Theme != "charm" || cfg.UI.Width != 80 {
		t.Errorf("defaults = %+v", cfg.UI)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "ui:\n  theme: ocean\n")
	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UI.Theme != "ocean" {
		t.Errorf("theme = %q, want ocean", cfg.UI.Theme)
	}
	if cfg.UI.Width != 80 {
		t.Errorf("absent width should keep default 80, got %d", cfg.UI.Width)
	}
}

func TestLoadInvalidYAMLFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "ui: [not: a: mapping\n")
	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() should not fail on invalid YAML: %v", err)
	}
	if cfg.UI.Theme != "charm" {
		t.Errorf("invalid file should yield defaults, got theme %q", cfg.UI.Theme)
	}
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "ui:\n  theme: neon-dreams\n")
	if _, err := NewLoader().Load(path); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("Load() error = %v, want ErrUnknownTheme", err)
	}
}

func TestValidateWidthBounds(t *testing.T) {
	t.Parallel()

	for _, width := range []int{0, 19, 201} {
		cfg := NewDefaultConfig()
		cfg.UI.Width = width
		if err := Validate(cfg); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("Validate(width=%d) error = %v, want ErrInvalidWidth", width, err)
		}
	}
}

func TestValidateCategories(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()
	cfg.Run.Categories = []string{"behavioral", "structural"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("valid categories rejected: %v", err)
	}

	cfg.Run.Categories = append(cfg.Run.Categories, "quantum")
	if err := Validate(cfg); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("Validate() error = %v, want ErrUnknownCategory", err)
	}
}
