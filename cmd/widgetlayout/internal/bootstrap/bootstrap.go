package bootstrap

import (
	"fmt"
	"strings"

	widgetlayout "github.com/goliatone/go-widgetlayout"
	"github.com/goliatone/go-widgetlayout/internal/logging"
	"github.com/goliatone/go-widgetlayout/pkg/interfaces"
)

// Options captures configuration for CLI bootstraps.
type Options struct {
	ConfigPath     string
	FixturesPath   string
	Verbose        bool
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the widget layout module and the CLI logger.
type Module struct {
	Module *widgetlayout.Module
	Logger interfaces.Logger
}

// BuildModule loads configuration and constructs the module. Flags override
// values read from the config file and environment.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := widgetlayout.LoadConfig(strings.TrimSpace(opts.ConfigPath))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if path := strings.TrimSpace(opts.FixturesPath); path != "" {
		cfg.Fixtures.Path = path
	}
	if opts.Verbose {
		cfg.Features.Logger = true
		cfg.Logging.Level = "debug"
	}

	var moduleOpts []widgetlayout.Option
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, widgetlayout.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := widgetlayout.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise widget layout module: %w", err)
	}

	return &Module{
		Module: module,
		Logger: logging.ModuleLogger(module.Container().LoggerProvider(), "widgets.cli"),
	}, nil
}

// ParseAreaKey splits "template/location" on its last slash. Templates such as
// "groups/details.tpl" contain slashes themselves.
func ParseAreaKey(value string) (widgetlayout.AreaKey, error) {
	trimmed := strings.TrimSpace(value)
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return widgetlayout.AreaKey{}, fmt.Errorf("area %q must be template/location", value)
	}
	key := widgetlayout.AreaKey{
		Template: strings.TrimSpace(trimmed[:idx]),
		Location: strings.TrimSpace(trimmed[idx+1:]),
	}
	if key.Location == "" {
		return widgetlayout.AreaKey{}, fmt.Errorf("area %q has no location", value)
	}
	return key, nil
}
