package interfaces

import "time"

// Config represents the application configuration
type Config struct {
	TemplateDir  string        `toml:"template_dir" mapstructure:"template_dir"`
	Languages    []string      `toml:"languages" mapstructure:"languages"`
	Theme        string        `toml:"theme" mapstructure:"theme"`
	GitignoreURL string        `toml:"gitignore_url" mapstructure:"gitignore_url"`
	FetchTimeout time.Duration `toml:"fetch_timeout" mapstructure:"fetch_timeout"`
}

// ConfigManager handles configuration loading and resolution
type ConfigManager interface {
	// Load loads configuration from the specified path, creating it on first run
	Load(path string) (*Config, error)

	// SetFlag records a command-line override for key
	SetFlag(key string, value interface{})

	// Resolve applies precedence rules (flags > env > config > defaults)
	Resolve() (*Config, error)

	// Validate validates the configuration values
	Validate(config *Config) error

	// Save writes the configuration back to the loaded path
	Save(config *Config) error
}
