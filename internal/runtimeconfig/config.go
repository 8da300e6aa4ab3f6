package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrStorageProviderUnknown  = errors.New("widgets config: storage provider is invalid")
	ErrStorageDialectUnknown   = errors.New("widgets config: storage dialect is invalid")
	ErrStorageDSNRequired      = errors.New("widgets config: storage dsn is required for the bun provider")
	ErrCacheTTLInvalid         = errors.New("widgets config: cache ttl must be positive when cache is enabled")
	ErrLookupConcurrency       = errors.New("widgets config: lookup concurrency must be zero or positive")
	ErrAreaInvalid             = errors.New("widgets config: area is invalid")
	ErrWidgetInvalid           = errors.New("widgets config: widget definition is invalid")
	ErrLoggingProviderRequired = errors.New("widgets config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown  = errors.New("widgets config: logging provider is invalid")
	ErrLoggingLevelInvalid     = errors.New("widgets config: logging level is invalid")
	ErrLoggingFormatInvalid    = errors.New("widgets config: logging format is invalid")
	ErrTracingExporterUnknown  = errors.New("widgets config: tracing exporter is invalid")
	ErrTracingFileRequired     = errors.New("widgets config: tracing file path is required for the file exporter")
)

// Config aggregates feature flags and adapter bindings for the widget layout
// module.
type Config struct {
	Enabled   bool            `mapstructure:"enabled"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Layout    LayoutConfig    `mapstructure:"layout"`
	Areas     []AreaConfig    `mapstructure:"areas"`
	Widgets   WidgetConfig    `mapstructure:"widgets"`
	Templates TemplateConfig  `mapstructure:"templates"`
	Fixtures  FixturesConfig  `mapstructure:"fixtures"`
	Features  Features        `mapstructure:"features"`
	Commands  CommandsConfig  `mapstructure:"commands"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	HTTP      HTTPConfig      `mapstructure:"http"`
}

// StorageConfig selects where placements and groups are read from.
type StorageConfig struct {
	Provider string `mapstructure:"provider"` // memory or bun
	Dialect  string `mapstructure:"dialect"`  // sqlite or postgres
	DSN      string `mapstructure:"dsn"`
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
}

// LayoutConfig tunes the layout assembler.
type LayoutConfig struct {
	LookupConcurrency int `mapstructure:"lookup_concurrency"`
}

// AreaConfig declares an extra area contributed through configuration.
type AreaConfig struct {
	Name     string `mapstructure:"name"`
	Template string `mapstructure:"template"`
	Location string `mapstructure:"location"`
}

// Validate checks the fields every area needs.
func (a AreaConfig) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Location, validation.Required),
	)
}

// WidgetConfig lists widget definitions contributed through configuration.
type WidgetConfig struct {
	Definitions []WidgetDefinitionConfig `mapstructure:"definitions"`
}

// WidgetDefinitionConfig mirrors widgets.WidgetDefinition.
type WidgetDefinitionConfig struct {
	Widget      string         `mapstructure:"widget"`
	Name        string         `mapstructure:"name"`
	Description string         `mapstructure:"description"`
	Content     string         `mapstructure:"content"`
	Meta        map[string]any `mapstructure:"meta"`
}

// Validate checks the fields every definition needs.
func (w WidgetDefinitionConfig) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Widget, validation.Required),
		validation.Field(&w.Name, validation.Required),
	)
}

// TemplateConfig points the renderer at templates on disk. Embedded templates
// are used when BaseDir is empty.
type TemplateConfig struct {
	BaseDir      string `mapstructure:"base_dir"`
	Extension    string `mapstructure:"extension"`
	SettingsHelp string `mapstructure:"settings_help"`
}

// FixturesConfig seeds the configured storage from a YAML document.
type FixturesConfig struct {
	Path string `mapstructure:"path"`
}

// Features toggles module functionality.
type Features struct {
	Logger  bool `mapstructure:"logger"`
	Tracing bool `mapstructure:"tracing"`
	Cache   bool `mapstructure:"cache"`
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Timeout     time.Duration `mapstructure:"timeout"`
	RefreshCron string        `mapstructure:"refresh_cron"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// TracingConfig selects the span exporter.
type TracingConfig struct {
	Exporter    string  `mapstructure:"exporter"`
	FilePath    string  `mapstructure:"file_path"`
	SampleRate  float64 `mapstructure:"sample_rate"`
	ServiceName string  `mapstructure:"service_name"`
}

// HTTPConfig configures the admin API listener.
type HTTPConfig struct {
	Addr     string `mapstructure:"addr"`
	BasePath string `mapstructure:"base_path"`
}

// DefaultConfig returns defaults for an in-process memory deployment.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "memory",
			Dialect:  "sqlite",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Layout:    LayoutConfig{},
		Areas:     []AreaConfig{},
		Widgets:   WidgetConfig{Definitions: []WidgetDefinitionConfig{}},
		Templates: TemplateConfig{Extension: ".tpl"},
		Features:  Features{},
		Commands:  CommandsConfig{Timeout: 30 * time.Second},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Tracing: TracingConfig{
			Exporter:    "none",
			SampleRate:  1.0,
			ServiceName: "widgetlayout",
		},
		HTTP: HTTPConfig{
			Addr:     ":8080",
			BasePath: "/admin",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	switch normalize(cfg.Storage.Provider) {
	case "memory":
	case "bun":
		switch normalize(cfg.Storage.Dialect) {
		case "sqlite", "postgres":
		default:
			return fmt.Errorf("%w: %s", ErrStorageDialectUnknown, cfg.Storage.Dialect)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}
	if (cfg.Cache.Enabled || cfg.Features.Cache) && cfg.Cache.DefaultTTL <= 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Layout.LookupConcurrency < 0 {
		return ErrLookupConcurrency
	}
	for i, area := range cfg.Areas {
		if err := area.Validate(); err != nil {
			return fmt.Errorf("%w: areas[%d]: %v", ErrAreaInvalid, i, err)
		}
	}
	for i, def := range cfg.Widgets.Definitions {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("%w: widgets.definitions[%d]: %v", ErrWidgetInvalid, i, err)
		}
	}
	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	if cfg.Features.Tracing {
		switch normalize(cfg.Tracing.Exporter) {
		case "", "none", "stdout":
		case "file":
			if strings.TrimSpace(cfg.Tracing.FilePath) == "" {
				return ErrTracingFileRequired
			}
		default:
			return fmt.Errorf("%w: %s", ErrTracingExporterUnknown, cfg.Tracing.Exporter)
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
