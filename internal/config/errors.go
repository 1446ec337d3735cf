package config

import "errors"

var (
	// ErrUnknownTheme is returned when ui.theme names no shipped palette.
	ErrUnknownTheme = errors.New("config: unknown theme")

	// ErrInvalidWidth is returned when ui.width is outside 20..200.
	ErrInvalidWidth = errors.New("config: width must be between 20 and 200")

	// ErrUnknownCategory is returned when run.categories names no
	// pattern category.
	ErrUnknownCategory = errors.New("config: unknown category")
)
