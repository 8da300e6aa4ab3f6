package widgetlayout

import (
	"context"
	"net/http"

	layoutcmd "github.com/goliatone/go-widgetlayout/internal/commands/layout"
	"github.com/goliatone/go-widgetlayout/internal/di"
	"github.com/goliatone/go-widgetlayout/internal/hooks"
	"github.com/goliatone/go-widgetlayout/internal/layout"
	"github.com/goliatone/go-widgetlayout/widgets"
)

// LayoutService exports the layout assembler contract.
type LayoutService = layout.Service

// HookRegistry exports the ordered filter registry plugins register on.
type HookRegistry = hooks.Registry

// RefreshLayoutCommand exports the layout refresh command message.
type RefreshLayoutCommand = layoutcmd.RefreshLayoutCommand

// AreaKey exports the area identifier used by RefreshLayoutCommand.
type AreaKey = layoutcmd.AreaKey

// Option configures the module container.
type Option = di.Option

var (
	WithLoggerProvider = di.WithLoggerProvider
	WithBunDB          = di.WithBunDB
	WithCache          = di.WithCache
	WithTemplate       = di.WithTemplate
	WithHooks          = di.WithHooks
	WithTraceWriter    = di.WithTraceWriter
)

// NewHookRegistry returns an empty registry that can be shared through
// WithHooks.
func NewHookRegistry() *HookRegistry {
	return hooks.NewRegistry()
}

// Module represents the top level widget layout runtime façade.
type Module struct {
	container *di.Container
}

// New builds the module from cfg.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container.
func (m *Module) Container() *di.Container {
	return m.container
}

// Layout returns the layout assembler.
func (m *Module) Layout() LayoutService {
	return m.container.LayoutService()
}

// Hooks returns the filter registry.
func (m *Module) Hooks() *HookRegistry {
	return m.container.Hooks()
}

// OnAreas registers a plugin on the area filter. The draft zone is added after
// the chain runs and is never passed to fn.
func (m *Module) OnAreas(plugin string, priority int, fn func(ctx context.Context, areas []widgets.Area) ([]widgets.Area, error)) error {
	return hooks.On(m.container.Hooks(), widgets.FilterAreas, plugin, priority, fn)
}

// OnWidgets registers a plugin on the widget catalog filter.
func (m *Module) OnWidgets(plugin string, priority int, fn func(ctx context.Context, defs []widgets.WidgetDefinition) ([]widgets.WidgetDefinition, error)) error {
	return hooks.On(m.container.Hooks(), widgets.FilterWidgets, plugin, priority, fn)
}

// RegisterRoutes mounts the admin layout endpoints on mux.
func (m *Module) RegisterRoutes(mux *http.ServeMux) error {
	return m.container.AdminAPI().Register(mux)
}

// Refresh runs the layout refresh command.
func (m *Module) Refresh(ctx context.Context, cmd RefreshLayoutCommand) error {
	return m.container.RefreshHandler().Execute(ctx, cmd)
}

// Close releases tracing and storage resources.
func (m *Module) Close(ctx context.Context) error {
	return m.container.Close(ctx)
}
