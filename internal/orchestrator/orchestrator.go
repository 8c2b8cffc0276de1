// Package orchestrator runs the scaffer commands: it loads the configuration,
// gathers missing input and drives the template and scaffold packages.
package orchestrator

import (
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"scaffer/internal/config"
	"scaffer/internal/interactive"
	"scaffer/internal/interfaces"
	"scaffer/internal/output"
	"scaffer/internal/scaffold"
	"scaffer/internal/template"
)

// Orchestrator coordinates all components to create projects and manage templates
type Orchestrator struct {
	configManager interfaces.ConfigManager
	prompter      interfaces.Prompter
	fetcher       interfaces.IgnoreFetcher
	newFS         func(root string) billy.Filesystem
	out           io.Writer

	cfg      *interfaces.Config
	reporter *Reporter
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithConfigManager replaces the viper-backed configuration manager
func WithConfigManager(m interfaces.ConfigManager) Option {
	return func(o *Orchestrator) {
		o.configManager = m
	}
}

// WithPrompter replaces the terminal prompter, e.g. with interactive.Scripted
func WithPrompter(p interfaces.Prompter) Option {
	return func(o *Orchestrator) {
		o.prompter = p
	}
}

// WithFetcher replaces the HTTP ignore-file fetcher
func WithFetcher(f interfaces.IgnoreFetcher) Option {
	return func(o *Orchestrator) {
		o.fetcher = f
	}
}

// WithFilesystem replaces the destination filesystem factory
func WithFilesystem(newFS func(root string) billy.Filesystem) Option {
	return func(o *Orchestrator) {
		o.newFS = newFS
	}
}

// WithOutput redirects user-facing output
func WithOutput(w io.Writer) Option {
	return func(o *Orchestrator) {
		o.out = w
	}
}

// New creates a new orchestrator with all required components
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		configManager: config.NewManager(),
		newFS: func(root string) billy.Filesystem {
			return osfs.New(root)
		},
		out: os.Stdout,
	}

	for _, opt := range opts {
		opt(o)
	}

	o.reporter = NewReporter(o.out, output.DefaultTheme)
	return o
}

// LoadConfiguration loads, resolves and validates the configuration. The
// template directory and theme overrides take precedence when non-empty.
func (o *Orchestrator) LoadConfiguration(configPath, templateDir, theme string) (*interfaces.Config, error) {
	if _, err := o.configManager.Load(configPath); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	o.configManager.SetFlag("template_dir", templateDir)
	o.configManager.SetFlag("theme", theme)

	cfg, err := o.configManager.Resolve()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve configuration: %w", err)
	}

	if err := o.configManager.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	o.cfg = cfg
	o.reporter = NewReporter(o.out, cfg.Theme)
	output.Debug("resolved configuration", "template_dir", cfg.TemplateDir, "theme", cfg.Theme)

	return cfg, nil
}

// Config returns the configuration of the last LoadConfiguration
func (o *Orchestrator) Config() *interfaces.Config {
	return o.cfg
}

// store opens the template store of the loaded configuration
func (o *Orchestrator) store() *template.Store {
	return template.NewStore(o.cfg.TemplateDir)
}

// prompterFor returns the injected prompter or a terminal prompter
func (o *Orchestrator) prompterFor(numberSelect bool) interfaces.Prompter {
	if o.prompter != nil {
		return o.prompter
	}
	return interactive.NewSurveyPrompter(numberSelect)
}

// fetcherFor returns the injected fetcher or an HTTP fetcher wrapped in a spinner
func (o *Orchestrator) fetcherFor() interfaces.IgnoreFetcher {
	if o.fetcher != nil {
		return o.fetcher
	}
	return &spinnerFetcher{
		inner:   scaffold.NewHTTPFetcher(o.cfg.GitignoreURL, o.cfg.FetchTimeout),
		timeout: o.cfg.FetchTimeout,
	}
}

// Capitalize upper-cases the first rune of s and keeps the rest as typed
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
