package config

import (
	"fmt"

	"github.com/Alan-Rodz/DesignPatterns/internal/catalog"
	"github.com/Alan-Rodz/DesignPatterns/internal/ui"
)

// Validate checks a loaded configuration for values the application
// cannot honor.
func Validate(cfg *Config) error {
	if !ui.KnownTheme(cfg.UI.Theme) {
		return fmt.Errorf("%w: %q (known: %v)", ErrUnknownTheme, cfg.UI.Theme, ui.ThemeNames())
	}
	if cfg.UI.Width < 20 || cfg.UI.Width > 200 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, cfg.UI.Width)
	}
	for _, c := range cfg.Run.Categories {
		if !knownCategory(c) {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
	}
	return nil
}

func knownCategory(name string) bool {
	for _, c := range catalog.Categories() {
		if string(c) == name {
			return true
		}
	}
	return false
}
