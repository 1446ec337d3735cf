// Package config loads the optional .patterns.yaml settings file.
package config

// UIConfig controls terminal rendering.
type UIConfig struct {
	// Theme selects a named color palette.
	Theme string `yaml:"theme"`
	// NoColor disables all styling; equivalent to the --no-color flag.
	NoColor bool `yaml:"no_color"`
	// Width bounds rendered markdown in `patterns explain`.
	Width int `yaml:"width"`
}

// RunConfig controls which demos `patterns run --all` executes.
type RunConfig struct {
	// Categories limits runs to these categories; empty means all.
	Categories []string `yaml:"categories"`
}

// Config is the merged application configuration.
type Config struct {
	UI  UIConfig  `yaml:"ui"`
	Run RunConfig `yaml:"run"`
}
