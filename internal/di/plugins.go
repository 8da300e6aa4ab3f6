package di

import (
	"context"
	"maps"

	"github.com/goliatone/go-widgetlayout/internal/hooks"
	"github.com/goliatone/go-widgetlayout/internal/runtimeconfig"
	"github.com/goliatone/go-widgetlayout/widgets"
)

// ConfigPlugin is the plugin id recorded for filters contributed by runtime
// configuration.
const ConfigPlugin = "config"

// registerConfigPlugins appends configured areas and widget definitions to
// their filter chains. Nothing is registered for empty sections.
func registerConfigPlugins(registry *hooks.Registry, cfg runtimeconfig.Config) error {
	if len(cfg.Areas) > 0 {
		areas := make([]widgets.Area, 0, len(cfg.Areas))
		for _, area := range cfg.Areas {
			areas = append(areas, widgets.Area{
				Name:     area.Name,
				Template: area.Template,
				Location: area.Location,
			})
		}
		err := hooks.On(registry, widgets.FilterAreas, ConfigPlugin, 0, func(_ context.Context, in []widgets.Area) ([]widgets.Area, error) {
			out := widgets.CloneAreas(in)
			return append(out, widgets.CloneAreas(areas)...), nil
		})
		if err != nil {
			return err
		}
	}

	if len(cfg.Widgets.Definitions) > 0 {
		defs := make([]widgets.WidgetDefinition, 0, len(cfg.Widgets.Definitions))
		for _, def := range cfg.Widgets.Definitions {
			defs = append(defs, widgets.WidgetDefinition{
				Widget:      def.Widget,
				Name:        def.Name,
				Description: def.Description,
				Content:     def.Content,
				Meta:        maps.Clone(def.Meta),
			})
		}
		err := hooks.On(registry, widgets.FilterWidgets, ConfigPlugin, 0, func(_ context.Context, in []widgets.WidgetDefinition) ([]widgets.WidgetDefinition, error) {
			out := widgets.CloneWidgets(in)
			return append(out, widgets.CloneWidgets(defs)...), nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
