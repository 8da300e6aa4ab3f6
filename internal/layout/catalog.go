package layout

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/goliatone/go-widgetlayout/internal/hooks"
	"github.com/goliatone/go-widgetlayout/widgets"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// AvailableWidgets collects plugin widgets and appends the rendered settings
// panel to each definition's content.
func (s *service) AvailableWidgets(ctx context.Context) ([]widgets.WidgetDefinition, error) {
	if !s.isEnabled() {
		return nil, widgets.ErrFeatureDisabled
	}
	ctx, span := s.tracer.Start(ctx, "widgets.catalog.list")
	defer span.End()

	var (
		defs     []widgets.WidgetDefinition
		fragment string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		listed, err := hooks.Apply(gctx, s.filters, widgets.FilterWidgets, []widgets.WidgetDefinition{})
		if err != nil {
			return fmt.Errorf("widgets: collect widgets: %w", err)
		}
		defs = listed
		return nil
	})
	g.Go(func() error {
		rendered, err := s.renderSettings(gctx)
		if err != nil {
			return err
		}
		fragment = rendered
		return nil
	})
	if err := g.Wait(); err != nil {
		fail(span, err)
		return nil, err
	}

	decorated := make([]widgets.WidgetDefinition, len(defs))
	for i, def := range defs {
		decorated[i] = def.WithContent(def.Content + fragment)
	}

	span.SetAttributes(attribute.Int("widgets.available", len(decorated)))
	return decorated, nil
}

// renderSettings renders the shared settings panel listing every non
// privilege group, system groups first.
func (s *service) renderSettings(ctx context.Context) (string, error) {
	ctx, span := s.tracer.Start(ctx, "widgets.settings.render")
	defer span.End()

	groups, err := s.groups.ListNonPrivilegeGroups(ctx, widgets.SortCreateTime, 0, -1)
	if err != nil {
		fail(span, err)
		return "", fmt.Errorf("widgets: list groups: %w", err)
	}
	groups = SortSystemFirst(groups)

	rendered, err := s.renderer.Render(widgets.SettingsTemplate, map[string]any{
		"groups": groups,
	})
	if err != nil {
		fail(span, err)
		return "", fmt.Errorf("widgets: render settings: %w", err)
	}
	span.SetAttributes(attribute.Int("widgets.groups", len(groups)))
	return rendered, nil
}

// SortSystemFirst returns a copy of groups with system groups ahead of the
// rest. Relative order inside each partition is preserved.
func SortSystemFirst(groups []widgets.Group) []widgets.Group {
	out := slices.Clone(groups)
	slices.SortStableFunc(out, func(a, b widgets.Group) int {
		return cmp.Compare(systemRank(b), systemRank(a))
	})
	return out
}

func systemRank(g widgets.Group) int {
	if g.System {
		return 1
	}
	return 0
}
