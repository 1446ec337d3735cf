package config

// DefaultFileName is the settings file looked up in the working
// directory when --config is not given.
const DefaultFileName = ".patterns.yaml"

const (
	defaultTheme = "charm"
	defaultWidth = 80
)

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme: defaultTheme,
			Width: defaultWidth,
		},
	}
}
