package layout

import (
	"context"
	"time"

	"github.com/goliatone/go-widgetlayout/internal/logging"
	"github.com/goliatone/go-widgetlayout/pkg/interfaces"
	"github.com/goliatone/go-widgetlayout/widgets"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/goliatone/go-widgetlayout/internal/layout"

// Service assembles the data needed by the admin widget layout editor.
type Service interface {
	Get(ctx context.Context) (*widgets.Layout, error)
	Areas(ctx context.Context) ([]widgets.Area, error)
	AvailableWidgets(ctx context.Context) ([]widgets.WidgetDefinition, error)
}

// ServiceOption configures the layout service.
type ServiceOption func(*service)

// WithLogger overrides the logger used by the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTracer wires the tracer used for per-branch spans.
func WithTracer(tracer trace.Tracer) ServiceOption {
	return func(s *service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithLookupConcurrency bounds the number of in-flight area content lookups.
// Zero or negative values leave lookups unbounded.
func WithLookupConcurrency(limit int) ServiceOption {
	return func(s *service) {
		s.lookupLimit = limit
	}
}

// WithEnabled gates every operation. When enabled reports false the service
// fails with widgets.ErrFeatureDisabled before touching any collaborator.
func WithEnabled(enabled func() bool) ServiceOption {
	return func(s *service) {
		s.enabled = enabled
	}
}

// WithClock overrides the time source used for duration logging.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type service struct {
	filters     interfaces.FilterRunner
	lookup      interfaces.AreaContentLookup
	groups      interfaces.GroupLister
	renderer    interfaces.FragmentRenderer
	enabled     func() bool
	logger      interfaces.Logger
	tracer      trace.Tracer
	lookupLimit int
	now         func() time.Time
}

// NewService constructs a layout service from its collaborators.
func NewService(filters interfaces.FilterRunner, lookup interfaces.AreaContentLookup, groups interfaces.GroupLister, renderer interfaces.FragmentRenderer, opts ...ServiceOption) (Service, error) {
	switch {
	case filters == nil:
		return nil, widgets.ErrFilterRunnerRequired
	case lookup == nil:
		return nil, widgets.ErrAreaLookupRequired
	case groups == nil:
		return nil, widgets.ErrGroupListerRequired
	case renderer == nil:
		return nil, widgets.ErrRendererRequired
	}

	s := &service{
		filters:  filters,
		lookup:   lookup,
		groups:   groups,
		renderer: renderer,
		logger:   logging.NoOp(),
		tracer:   noop.NewTracerProvider().Tracer(tracerName),
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Get resolves areas and available widgets concurrently and groups the areas
// by template. No partial payload is returned when either branch fails.
func (s *service) Get(ctx context.Context) (*widgets.Layout, error) {
	if !s.isEnabled() {
		return nil, widgets.ErrFeatureDisabled
	}
	ctx, span := s.tracer.Start(ctx, "widgets.layout.get")
	defer span.End()
	start := s.now()

	var (
		areas []widgets.Area
		defs  []widgets.WidgetDefinition
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resolved, err := s.Areas(gctx)
		if err != nil {
			return err
		}
		areas = resolved
		return nil
	})
	g.Go(func() error {
		available, err := s.AvailableWidgets(gctx)
		if err != nil {
			return err
		}
		defs = available
		return nil
	})
	if err := g.Wait(); err != nil {
		fail(span, err)
		s.logger.WithContext(ctx).Error("layout.get.failed", "error", err)
		return nil, err
	}

	payload := &widgets.Layout{
		Templates:        BuildTemplates(areas),
		Areas:            areas,
		AvailableWidgets: defs,
	}

	span.SetAttributes(
		attribute.Int("widgets.areas", len(payload.Areas)),
		attribute.Int("widgets.templates", len(payload.Templates)),
		attribute.Int("widgets.available", len(payload.AvailableWidgets)),
	)
	logging.WithFields(s.logger, map[string]any{
		"areas":     len(payload.Areas),
		"templates": len(payload.Templates),
		"widgets":   len(payload.AvailableWidgets),
		"duration":  s.now().Sub(start).String(),
	}).Debug("layout.get.completed")

	return payload, nil
}

func (s *service) isEnabled() bool {
	return s.enabled == nil || s.enabled()
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
