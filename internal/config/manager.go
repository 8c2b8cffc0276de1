// Package config loads and persists the scaffer configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/interfaces"
	"scaffer/internal/output"
	"scaffer/internal/scaffold"
	"scaffer/internal/template"
)

const (
	// AppName names the configuration directory.
	AppName = "scaffer"

	// FileName is the configuration file inside the configuration directory.
	FileName = "config.toml"

	// EnvPrefix prefixes environment overrides, e.g. SCAFFER_TEMPLATE_DIR.
	EnvPrefix = "SCAFFER"
)

// DefaultLanguages are offered by create when no language is given
var DefaultLanguages = []string{"Rust", "Python", "Java", "PHP", "C", "C++", "HTML", "Go"}

// Manager implements the ConfigManager interface
type Manager struct {
	v     *viper.Viper
	flags map[string]interface{} // Store flag values for precedence
	path  string
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v, "")

	return &Manager{
		v:     v,
		flags: make(map[string]interface{}),
	}
}

// DefaultDir returns the per-user configuration directory, e.g. ~/.config/scaffer
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// DefaultPath returns the configuration file used when none is given
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// setDefaults sets the default configuration values. The template directory
// defaults to a "templates" directory next to the configuration file.
func setDefaults(v *viper.Viper, configDir string) {
	if configDir != "" {
		v.SetDefault("template_dir", filepath.Join(configDir, "templates"))
	}
	v.SetDefault("languages", DefaultLanguages)
	v.SetDefault("theme", output.DefaultTheme)
	v.SetDefault("gitignore_url", scaffold.DefaultGitignoreBaseURL)
	v.SetDefault("fetch_timeout", scaffold.DefaultFetchTimeout.String())
}

// Path returns the configuration file of the last Load
func (m *Manager) Path() string {
	return m.path
}

// Load reads the configuration at path, or at DefaultPath when path is empty.
// A missing file is created first with defaults and the bundled templates.
func (m *Manager) Load(path string) (*interfaces.Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	path = expandPath(path)
	m.path = path

	setDefaults(m.v, filepath.Dir(path))

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := m.Init(path); err != nil {
			return nil, err
		}
	}

	m.v.SetConfigFile(path)

	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	output.Debug("loaded configuration", "path", path)
	return m.getConfigFromViper(), nil
}

// Init writes a default configuration to path and installs the bundled
// example templates into the default template directory.
func (m *Manager) Init(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return scerrors.IOFailure("create configuration directory", dir, err)
	}

	config := &interfaces.Config{
		TemplateDir:  filepath.Join(dir, "templates"),
		Languages:    append([]string{}, DefaultLanguages...),
		Theme:        output.DefaultTheme,
		GitignoreURL: scaffold.DefaultGitignoreBaseURL,
		FetchTimeout: scaffold.DefaultFetchTimeout,
	}

	if err := m.write(path, config); err != nil {
		return err
	}

	if err := template.InstallBundled(config.TemplateDir); err != nil {
		return err
	}

	output.Info("created configuration", "path", path, "templates", config.TemplateDir)
	return nil
}

// SetFlag sets a flag value for precedence resolution
func (m *Manager) SetFlag(key string, value interface{}) {
	m.flags[key] = value
}

// Resolve applies precedence rules (flags > env > config > defaults)
func (m *Manager) Resolve() (*interfaces.Config, error) {
	config := m.getConfigFromViper()

	// Apply flag overrides (highest precedence)
	m.applyFlagOverrides(config)

	return config, nil
}

// applyFlagOverrides applies flag values over the configuration
func (m *Manager) applyFlagOverrides(config *interfaces.Config) {
	if val, exists := m.flags["template_dir"]; exists && val != nil {
		if str, ok := val.(string); ok && str != "" {
			config.TemplateDir = expandPath(str)
		}
	}

	if val, exists := m.flags["theme"]; exists && val != nil {
		if str, ok := val.(string); ok && str != "" {
			config.Theme = str
		}
	}
}

// Validate validates the configuration values
func (m *Manager) Validate(config *interfaces.Config) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if !output.IsValidTheme(config.Theme) {
		return scerrors.InvalidInput("theme",
			fmt.Sprintf("%q is not one of %s", config.Theme, strings.Join(output.Themes(), ", ")), nil)
	}

	if config.FetchTimeout < 0 {
		return scerrors.InvalidInput("fetch_timeout", "must not be negative", nil)
	}

	if config.TemplateDir == "" {
		return scerrors.InvalidInput("template_dir", "must not be empty", nil)
	}

	// Validate template directory exists or can be created
	if _, err := os.Stat(config.TemplateDir); os.IsNotExist(err) {
		if err := os.MkdirAll(config.TemplateDir, 0755); err != nil {
			return scerrors.IOFailure("create template directory", config.TemplateDir, err)
		}
	}

	return nil
}

// Save writes config to the file of the last Load, or to DefaultPath
func (m *Manager) Save(config *interfaces.Config) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	path := m.path
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return err
		}
	}

	return m.write(path, config)
}

// write uses its own viper instance so that saved values never shadow env overrides.
func (m *Manager) write(path string, config *interfaces.Config) error {
	w := viper.New()
	w.SetConfigType("toml")
	w.Set("template_dir", config.TemplateDir)
	w.Set("languages", config.Languages)
	w.Set("theme", config.Theme)
	w.Set("gitignore_url", config.GitignoreURL)
	w.Set("fetch_timeout", config.FetchTimeout.String())

	if err := w.WriteConfigAs(path); err != nil {
		return scerrors.IOFailure("write configuration", path, err)
	}

	output.Debug("saved configuration", "path", path)
	return nil
}

// getConfigFromViper converts viper configuration to Config struct
// This handles env > config > defaults precedence (flags are applied separately)
func (m *Manager) getConfigFromViper() *interfaces.Config {
	return &interfaces.Config{
		TemplateDir:  expandPath(m.v.GetString("template_dir")),
		Languages:    m.v.GetStringSlice("languages"),
		Theme:        m.v.GetString("theme"),
		GitignoreURL: m.v.GetString("gitignore_url"),
		FetchTimeout: m.v.GetDuration("fetch_timeout"),
	}
}

// expandPath expands ~ to user home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path // Return original path if we can't get home dir
	}

	return filepath.Join(homeDir, path[2:])
}
