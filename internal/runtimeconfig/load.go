package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. WIDGETLAYOUT_STORAGE_DSN.
const EnvPrefix = "WIDGETLAYOUT"

// Load reads configuration from path (YAML, JSON or TOML) layered over
// DefaultConfig, applies environment overrides and validates the result. An
// empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("widgets config: %s not found: %w", path, err)
			}
			return Config{}, fmt.Errorf("widgets config: read %s: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("widgets config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every scalar key so environment overrides are seen by
// Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("enabled", d.Enabled)

	v.SetDefault("storage.provider", d.Storage.Provider)
	v.SetDefault("storage.dialect", d.Storage.Dialect)
	v.SetDefault("storage.dsn", d.Storage.DSN)

	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.default_ttl", d.Cache.DefaultTTL)

	v.SetDefault("layout.lookup_concurrency", d.Layout.LookupConcurrency)

	v.SetDefault("templates.base_dir", d.Templates.BaseDir)
	v.SetDefault("templates.extension", d.Templates.Extension)
	v.SetDefault("templates.settings_help", d.Templates.SettingsHelp)

	v.SetDefault("fixtures.path", d.Fixtures.Path)

	v.SetDefault("features.logger", d.Features.Logger)
	v.SetDefault("features.tracing", d.Features.Tracing)
	v.SetDefault("features.cache", d.Features.Cache)

	v.SetDefault("commands.enabled", d.Commands.Enabled)
	v.SetDefault("commands.timeout", d.Commands.Timeout)
	v.SetDefault("commands.refresh_cron", d.Commands.RefreshCron)

	v.SetDefault("logging.provider", d.Logging.Provider)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.add_source", d.Logging.AddSource)

	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)

	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("http.base_path", d.HTTP.BasePath)
}
