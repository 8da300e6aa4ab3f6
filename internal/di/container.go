package di

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	layoutcmd "github.com/goliatone/go-widgetlayout/internal/commands/layout"
	"github.com/goliatone/go-widgetlayout/internal/fixtures"
	"github.com/goliatone/go-widgetlayout/internal/groups"
	"github.com/goliatone/go-widgetlayout/internal/hooks"
	adminapi "github.com/goliatone/go-widgetlayout/internal/http"
	"github.com/goliatone/go-widgetlayout/internal/layout"
	"github.com/goliatone/go-widgetlayout/internal/logging"
	"github.com/goliatone/go-widgetlayout/internal/logging/console"
	"github.com/goliatone/go-widgetlayout/internal/logging/gologger"
	"github.com/goliatone/go-widgetlayout/internal/placements"
	"github.com/goliatone/go-widgetlayout/internal/render"
	"github.com/goliatone/go-widgetlayout/internal/runtimeconfig"
	"github.com/goliatone/go-widgetlayout/internal/tracing"
	"github.com/goliatone/go-widgetlayout/pkg/interfaces"
)

// Container wires the widget layout module from runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	traceWriter    io.Writer

	bunDB         *bun.DB
	ownsDB        bool
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	registry  *hooks.Registry
	template  interfaces.TemplateRenderer
	groupRepo groups.Repository
	memPlaces *placements.MemoryRepository
	bunPlaces *placements.BunRepository
	placeRepo placements.Repository
	lookup    interfaces.AreaContentLookup
	areaCache *placements.CachedLookup
	groupSvc  *groups.Service
	tracer    *tracing.Provider
	layoutSvc layout.Service
	refresh   *layoutcmd.RefreshLayoutHandler
	admin     *adminapi.AdminAPI

	resultMu   sync.Mutex
	lastResult layoutcmd.RefreshResult
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBunDB supplies the database used by the bun storage provider. The
// container does not close databases it did not open.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache service.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithTemplate overrides the default pongo2 renderer.
func WithTemplate(tr interfaces.TemplateRenderer) Option {
	return func(c *Container) {
		c.template = tr
	}
}

// WithHooks shares a hook registry with the host application.
func WithHooks(registry *hooks.Registry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// WithTraceWriter sends stdout exporter spans to w.
func WithTraceWriter(w io.Writer) Option {
	return func(c *Container) {
		c.traceWriter = w
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cfg.Cache.DefaultTTL,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.cacheTTL <= 0 {
		c.cacheTTL = time.Minute
	}

	ctx := context.Background()
	steps := []func(context.Context) error{
		c.configureLogging,
		c.configureStorage,
		c.configureRepositories,
		c.configureFixtures,
		c.configureHooks,
		c.configureRenderer,
		c.configureTracing,
		c.configureServices,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			_ = c.Close(ctx)
			return nil, err
		}
	}

	logging.WithFields(logging.ModuleLogger(c.loggerProvider, ""), map[string]any{
		"storage": normalize(cfg.Storage.Provider),
		"cache":   c.areaCache != nil,
		"tracing": c.tracer.Enabled(),
		"hooks":   c.registry.Names(),
	}).Info("widgets.container.configured")

	return c, nil
}

func (c *Container) configureLogging(context.Context) error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	switch normalize(c.Config.Logging.Provider) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		level := console.ParseLevel(c.Config.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{MinLevel: &level})
	}
	return nil
}

func (c *Container) configureStorage(ctx context.Context) error {
	if normalize(c.Config.Storage.Provider) != "bun" {
		return nil
	}
	if c.bunDB == nil {
		db, err := openDB(c.Config.Storage)
		if err != nil {
			return err
		}
		c.bunDB = db
		c.ownsDB = true
	}
	if err := groups.CreateSchema(ctx, c.bunDB); err != nil {
		return fmt.Errorf("di: create groups schema: %w", err)
	}
	if err := placements.CreateSchema(ctx, c.bunDB); err != nil {
		return fmt.Errorf("di: create placements schema: %w", err)
	}
	return nil
}

func openDB(cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	switch normalize(cfg.Dialect) {
	case "postgres":
		sqldb, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("di: open postgres: %w", err)
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	default:
		sqldb, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("di: open sqlite: %w", err)
		}
		sqldb.SetMaxOpenConns(1)
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	}
}

func (c *Container) configureCacheDefaults() {
	if !c.cacheEnabled() {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		cfg.TTL = c.cacheTTL
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories(context.Context) error {
	c.configureCacheDefaults()

	if c.bunDB != nil && normalize(c.Config.Storage.Provider) == "bun" {
		if c.cacheEnabled() {
			c.groupRepo = groups.NewBunGroupRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.groupRepo = groups.NewBunGroupRepository(c.bunDB)
		}
		c.bunPlaces = placements.NewBunRepository(c.bunDB)
		c.placeRepo = c.bunPlaces
		return nil
	}

	c.groupRepo = groups.NewMemoryRepository()
	c.memPlaces = placements.NewMemoryRepository()
	c.placeRepo = c.memPlaces
	return nil
}

func (c *Container) configureFixtures(ctx context.Context) error {
	path := strings.TrimSpace(c.Config.Fixtures.Path)
	if path == "" {
		return nil
	}
	doc, err := fixtures.LoadFile(path)
	if err != nil {
		return err
	}

	var loader fixtures.PlacementLoader
	if c.memPlaces != nil {
		loader = c.memPlaces
	}
	if err := doc.Seed(ctx, c.groupRepo, loader); err != nil {
		return err
	}
	if c.bunPlaces != nil {
		if err := c.bunPlaces.Insert(ctx, doc.Placements...); err != nil {
			return fmt.Errorf("fixtures: seed placements: %w", err)
		}
	}

	logging.WithFields(logging.PlacementsLogger(c.loggerProvider), map[string]any{
		"path":       path,
		"groups":     len(doc.Groups),
		"placements": len(doc.Placements),
	}).Info("widgets.fixtures.seeded")
	return nil
}

func (c *Container) configureHooks(context.Context) error {
	if c.registry == nil {
		c.registry = hooks.NewRegistry()
	}
	return registerConfigPlugins(c.registry, c.Config)
}

func (c *Container) configureRenderer(context.Context) error {
	if c.template != nil {
		return nil
	}
	options := []render.Option{
		render.WithBaseDir(c.Config.Templates.BaseDir),
		render.WithExtension(c.Config.Templates.Extension),
	}
	if help := strings.TrimSpace(c.Config.Templates.SettingsHelp); help != "" {
		options = append(options, render.WithGlobalData(map[string]any{"settings_help": help}))
	}
	engine, err := render.New(options...)
	if err != nil {
		return err
	}
	c.template = engine
	return nil
}

func (c *Container) configureTracing(context.Context) error {
	exporter := normalize(c.Config.Tracing.Exporter)
	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:     c.Config.Features.Tracing && exporter != "" && exporter != "none",
		Exporter:    exporter,
		FilePath:    c.Config.Tracing.FilePath,
		SampleRate:  c.Config.Tracing.SampleRate,
		ServiceName: c.Config.Tracing.ServiceName,
		Writer:      c.traceWriter,
	})
	if err != nil {
		return err
	}
	c.tracer = provider
	return nil
}

func (c *Container) configureServices(context.Context) error {
	groupSvc, err := groups.NewService(c.groupRepo, groups.WithLogger(logging.GroupsLogger(c.loggerProvider)))
	if err != nil {
		return err
	}
	c.groupSvc = groupSvc

	c.lookup = placements.NewLookup(c.placeRepo, logging.PlacementsLogger(c.loggerProvider))
	if c.cacheEnabled() {
		c.areaCache = placements.NewCachedLookup(c.lookup, c.cacheTTL)
		c.lookup = c.areaCache
	}

	enabled := c.Config.Enabled
	layoutEnabled := func() bool { return enabled }
	svc, err := layout.NewService(c.registry, c.lookup, c.groupSvc, c.template,
		layout.WithEnabled(layoutEnabled),
		layout.WithLogger(logging.LayoutLogger(c.loggerProvider)),
		layout.WithTracer(c.tracer.Tracer()),
		layout.WithLookupConcurrency(c.Config.Layout.LookupConcurrency),
	)
	if err != nil {
		return err
	}
	c.layoutSvc = svc

	var invalidator layoutcmd.AreaInvalidator
	if c.areaCache != nil {
		invalidator = c.areaCache
	}
	c.refresh = layoutcmd.NewRefreshLayoutHandler(
		c.layoutSvc,
		invalidator,
		logging.CommandsLogger(c.loggerProvider),
		layoutcmd.FeatureGates{LayoutEnabled: layoutEnabled},
		c.recordRefresh,
		layoutcmd.WithTimeout(c.Config.Commands.Timeout),
	).WithCronExpression(c.Config.Commands.RefreshCron)

	adminOpts := []adminapi.AdminOption{
		adminapi.WithBasePath(c.Config.HTTP.BasePath),
		adminapi.WithLayoutService(c.layoutSvc),
		adminapi.WithLogger(logging.HTTPLogger(c.loggerProvider)),
	}
	if c.Config.Commands.Enabled {
		adminOpts = append(adminOpts, adminapi.WithRefresher(c.refresh))
	}
	c.admin = adminapi.NewAdminAPI(adminOpts...)
	return nil
}

func (c *Container) cacheEnabled() bool {
	return c.Config.Cache.Enabled || c.Config.Features.Cache
}

// LayoutService returns the assembled layout service.
func (c *Container) LayoutService() layout.Service {
	return c.layoutSvc
}

// Hooks returns the registry plugins register their filters on.
func (c *Container) Hooks() *hooks.Registry {
	return c.registry
}

// GroupService returns the group listing service.
func (c *Container) GroupService() *groups.Service {
	return c.groupSvc
}

// GroupRepository returns the configured group store.
func (c *Container) GroupRepository() groups.Repository {
	return c.groupRepo
}

// PlacementRepository returns the configured placement store.
func (c *Container) PlacementRepository() placements.Repository {
	return c.placeRepo
}

// MemoryPlacements returns the in-memory placement store, or nil when the
// bun provider is active.
func (c *Container) MemoryPlacements() *placements.MemoryRepository {
	return c.memPlaces
}

// TemplateRenderer returns the renderer used for the settings panel.
func (c *Container) TemplateRenderer() interfaces.TemplateRenderer {
	return c.template
}

// RefreshHandler returns the layout refresh command handler.
func (c *Container) RefreshHandler() *layoutcmd.RefreshLayoutHandler {
	return c.refresh
}

// LastRefresh returns the counts reported by the latest successful refresh.
func (c *Container) LastRefresh() layoutcmd.RefreshResult {
	c.resultMu.Lock()
	defer c.resultMu.Unlock()
	return c.lastResult
}

func (c *Container) recordRefresh(result layoutcmd.RefreshResult) {
	c.resultMu.Lock()
	c.lastResult = result
	c.resultMu.Unlock()
}

// AdminAPI returns the HTTP handlers for the admin layout editor.
func (c *Container) AdminAPI() *adminapi.AdminAPI {
	return c.admin
}

// LoggerProvider returns the active provider. It is nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// BunDB returns the database backing the bun provider, if any.
func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}

// Close flushes spans and closes the database when the container opened it.
func (c *Container) Close(ctx context.Context) error {
	var errs []error
	if c.tracer != nil {
		errs = append(errs, c.tracer.Shutdown(ctx))
	}
	if c.ownsDB && c.bunDB != nil {
		errs = append(errs, c.bunDB.Close())
		c.bunDB = nil
	}
	return errors.Join(errs...)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
