package widgetlayout

import "github.com/goliatone/go-widgetlayout/internal/runtimeconfig"

var (
	ErrStorageProviderUnknown  = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDialectUnknown   = runtimeconfig.ErrStorageDialectUnknown
	ErrStorageDSNRequired      = runtimeconfig.ErrStorageDSNRequired
	ErrCacheTTLInvalid         = runtimeconfig.ErrCacheTTLInvalid
	ErrLookupConcurrency       = runtimeconfig.ErrLookupConcurrency
	ErrAreaInvalid             = runtimeconfig.ErrAreaInvalid
	ErrWidgetInvalid           = runtimeconfig.ErrWidgetInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrTracingExporterUnknown  = runtimeconfig.ErrTracingExporterUnknown
	ErrTracingFileRequired     = runtimeconfig.ErrTracingFileRequired
)

type (
	Config                 = runtimeconfig.Config
	StorageConfig          = runtimeconfig.StorageConfig
	CacheConfig            = runtimeconfig.CacheConfig
	LayoutConfig           = runtimeconfig.LayoutConfig
	AreaConfig             = runtimeconfig.AreaConfig
	WidgetConfig           = runtimeconfig.WidgetConfig
	WidgetDefinitionConfig = runtimeconfig.WidgetDefinitionConfig
	TemplateConfig         = runtimeconfig.TemplateConfig
	FixturesConfig         = runtimeconfig.FixturesConfig
	Features               = runtimeconfig.Features
	CommandsConfig         = runtimeconfig.CommandsConfig
	LoggingConfig          = runtimeconfig.LoggingConfig
	TracingConfig          = runtimeconfig.TracingConfig
	HTTPConfig             = runtimeconfig.HTTPConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML or JSON config file merged with WIDGETLAYOUT_*
// environment variables. An empty path uses defaults and the environment only.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
