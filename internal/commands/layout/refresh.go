package layoutcmd

import (
	"context"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-widgetlayout/internal/layout"
	"github.com/goliatone/go-widgetlayout/internal/logging"
	"github.com/goliatone/go-widgetlayout/pkg/interfaces"
	"github.com/goliatone/go-widgetlayout/widgets"
)

// RefreshLayoutMessageType identifies the layout refresh command.
const RefreshLayoutMessageType = "cms.widgets.layout.refresh"

// AreaKey names an area whose cached content should be dropped.
type AreaKey struct {
	Template string `json:"template"`
	Location string `json:"location"`
}

// RefreshLayoutCommand rebuilds the layout payload, optionally dropping cached
// area content first. An empty Areas list with Invalidate set flushes every
// area.
type RefreshLayoutCommand struct {
	Invalidate bool      `json:"invalidate,omitempty"`
	Areas      []AreaKey `json:"areas,omitempty"`
}

// Type implements command.Message.
func (RefreshLayoutCommand) Type() string { return RefreshLayoutMessageType }

// Validate ensures every listed area names a location.
func (m RefreshLayoutCommand) Validate() error {
	errs := validation.Errors{}
	for i, area := range m.Areas {
		if strings.TrimSpace(area.Location) == "" {
			errs["areas."+strconv.Itoa(i)+".location"] = validation.NewError("cms.widgets.layout.refresh.location_required", "location is required")
		}
	}
	if len(m.Areas) > 0 && !m.Invalidate {
		errs["invalidate"] = validation.NewError("cms.widgets.layout.refresh.invalidate_required", "areas can only be listed when invalidate is set")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AreaInvalidator drops cached area content.
type AreaInvalidator interface {
	Invalidate(template, location string)
	Flush()
}

// RefreshResult reports the counts of the rebuilt layout.
type RefreshResult struct {
	Areas     int
	Templates int
	Widgets   int
}

const defaultRefreshTimeout = 30 * time.Second

// Option configures a RefreshLayoutHandler.
type Option func(*RefreshLayoutHandler)

// WithTimeout bounds each refresh. Zero disables the deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(h *RefreshLayoutHandler) {
		h.timeout = max(timeout, 0)
	}
}

// RefreshLayoutHandler rebuilds the admin layout: it validates the message,
// checks the feature gate, drops cached areas and logs the resulting counts.
type RefreshLayoutHandler struct {
	service    layout.Service
	cache      AreaInvalidator
	logger     interfaces.Logger
	gates      FeatureGates
	onResult   func(RefreshResult)
	timeout    time.Duration
	cronConfig command.HandlerConfig
}

// NewRefreshLayoutHandler constructs a handler over service. cache may be nil
// when area content is not cached; onResult, when set, receives the counts of
// every successful refresh.
func NewRefreshLayoutHandler(service layout.Service, cache AreaInvalidator, logger interfaces.Logger, gates FeatureGates, onResult func(RefreshResult), opts ...Option) *RefreshLayoutHandler {
	if logger == nil {
		logger = logging.NoOp()
	}
	h := &RefreshLayoutHandler{
		service:  service,
		cache:    cache,
		logger:   logger,
		gates:    gates,
		onResult: onResult,
		timeout:  defaultRefreshTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Execute satisfies command.Commander[RefreshLayoutCommand].
func (h *RefreshLayoutHandler) Execute(ctx context.Context, msg RefreshLayoutCommand) error {
	if err := command.ValidateMessage(msg); err != nil {
		return invalidRefresh(err)
	}

	logger := logging.WithFields(h.logger, map[string]any{
		"command":    command.GetMessageType(msg),
		"invalidate": msg.Invalidate,
		"area_keys":  len(msg.Areas),
		"timeout":    h.timeout.String(),
	})
	if !h.gates.layoutEnabled() {
		logger.Debug("widgets.command.layout.disabled")
		return refreshFailure(widgets.ErrFeatureDisabled)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return refreshFailure(err)
	}

	result, err := h.refresh(ctx, msg)
	if err != nil {
		logger.Error("widgets.command.layout.failed", "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return refreshFailure(ctxErr)
		}
		return refreshFailure(err)
	}

	logging.WithFields(logger, map[string]any{
		"areas":     result.Areas,
		"templates": result.Templates,
		"widgets":   result.Widgets,
	}).Info("widgets.command.layout.refreshed")
	if h.onResult != nil {
		h.onResult(result)
	}
	return nil
}

func (h *RefreshLayoutHandler) refresh(ctx context.Context, msg RefreshLayoutCommand) (RefreshResult, error) {
	if msg.Invalidate && h.cache != nil {
		if len(msg.Areas) == 0 {
			h.cache.Flush()
		}
		for _, area := range msg.Areas {
			h.cache.Invalidate(strings.TrimSpace(area.Template), strings.TrimSpace(area.Location))
		}
	}

	payload, err := h.service.Get(ctx)
	if err != nil {
		return RefreshResult{}, err
	}
	return RefreshResult{
		Areas:     len(payload.Areas),
		Templates: len(payload.Templates),
		Widgets:   len(payload.AvailableWidgets),
	}, nil
}

func (h *RefreshLayoutHandler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}

// WithCronExpression schedules a full invalidating refresh. A blank
// expression leaves the handler unscheduled.
func (h *RefreshLayoutHandler) WithCronExpression(expression string) *RefreshLayoutHandler {
	h.cronConfig.Expression = strings.TrimSpace(expression)
	return h
}

// CronHandler satisfies command.CronCommand.
func (h *RefreshLayoutHandler) CronHandler() func() error {
	return func() error {
		return h.Execute(context.Background(), RefreshLayoutCommand{Invalidate: true})
	}
}

// CronOptions satisfies command.CronCommand.
func (h *RefreshLayoutHandler) CronOptions() command.HandlerConfig {
	return h.cronConfig
}

// CLIHandler exposes the refresh handler to CLI integrations.
func (h *RefreshLayoutHandler) CLIHandler() any {
	return h
}

// CLIOptions describes the CLI metadata for the layout refresh.
func (h *RefreshLayoutHandler) CLIOptions() command.CLIConfig {
	return command.CLIConfig{
		Path:        []string{"widgets", "layout", "refresh"},
		Group:       "widgets",
		Description: "Rebuild the admin widget layout; --invalidate drops cached area content",
	}
}
