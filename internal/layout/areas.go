package layout

import (
	"context"
	"fmt"

	"github.com/goliatone/go-widgetlayout/internal/hooks"
	"github.com/goliatone/go-widgetlayout/widgets"
	"go.opentelemetry.io/otel/attribute"
)

// Areas returns the default areas extended by the area filter, followed by the
// draft zone, each carrying its current content.
func (s *service) Areas(ctx context.Context) ([]widgets.Area, error) {
	if !s.isEnabled() {
		return nil, widgets.ErrFeatureDisabled
	}
	ctx, span := s.tracer.Start(ctx, "widgets.areas.resolve")
	defer span.End()

	areas, err := hooks.Apply(ctx, s.filters, widgets.FilterAreas, widgets.DefaultAreas())
	if err != nil {
		fail(span, err)
		return nil, fmt.Errorf("widgets: extend areas: %w", err)
	}

	// The draft zone is never exposed to the area filter.
	candidates := make([]widgets.Area, 0, len(areas)+1)
	candidates = append(candidates, areas...)
	candidates = append(candidates, widgets.DraftZone())

	resolved, err := gather(ctx, s.lookupLimit, candidates, func(ctx context.Context, area widgets.Area) (widgets.Area, error) {
		data, err := s.lookup.LookupArea(ctx, area.Template, area.Location)
		if err != nil {
			return widgets.Area{}, fmt.Errorf("widgets: lookup area %s/%s: %w", area.Template, area.Location, err)
		}
		return area.WithData(data), nil
	})
	if err != nil {
		fail(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("widgets.areas", len(resolved)))
	return resolved, nil
}
