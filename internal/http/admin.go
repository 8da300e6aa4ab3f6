package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	layoutcmd "github.com/goliatone/go-widgetlayout/internal/commands/layout"
	"github.com/goliatone/go-widgetlayout/internal/layout"
	"github.com/goliatone/go-widgetlayout/internal/logging"
	"github.com/goliatone/go-widgetlayout/pkg/interfaces"
)

// Refresher executes the layout refresh command.
type Refresher interface {
	Execute(ctx context.Context, msg layoutcmd.RefreshLayoutCommand) error
}

// AdminAPI registers the widget layout admin endpoints.
type AdminAPI struct {
	basePath  string
	layout    layout.Service
	refresher Refresher
	logger    interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base path (defaults to "/admin").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithLayoutService wires the layout service.
func WithLayoutService(service layout.Service) AdminOption {
	return func(api *AdminAPI) {
		api.layout = service
	}
}

// WithRefresher wires the refresh command handler. Without it the refresh
// route is not registered.
func WithRefresher(refresher Refresher) AdminOption {
	return func(api *AdminAPI) {
		api.refresher = refresher
	}
}

// WithLogger overrides the request logger.
func WithLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the admin endpoints to the provided mux.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: admin api is nil")
	}
	if api.layout == nil {
		return fmt.Errorf("http: layout service is required")
	}

	root := joinPath(api.basePath, "widgets")
	mux.HandleFunc("GET "+root, api.handleLayout)
	mux.HandleFunc("GET "+root+"/areas", api.handleAreas)
	mux.HandleFunc("GET "+root+"/available", api.handleAvailable)
	if api.refresher != nil {
		mux.HandleFunc("POST "+root+"/refresh", api.handleRefresh)
	}
	return nil
}

func (api *AdminAPI) handleLayout(w http.ResponseWriter, r *http.Request) {
	payload, err := api.layout.Get(r.Context())
	if err != nil {
		api.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (api *AdminAPI) handleAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := api.layout.Areas(r.Context())
	if err != nil {
		api.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, areas)
}

func (api *AdminAPI) handleAvailable(w http.ResponseWriter, r *http.Request) {
	defs, err := api.layout.AvailableWidgets(r.Context())
	if err != nil {
		api.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, defs)
}

func (api *AdminAPI) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var msg layoutcmd.RefreshLayoutCommand
	if err := decodeJSON(r, &msg); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json", Message: err.Error()})
		return
	}
	if err := api.refresher.Execute(r.Context(), msg); err != nil {
		api.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (api *AdminAPI) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, payload := mapError(err)
	logging.WithFields(api.logger, map[string]any{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": status,
	}).WithContext(r.Context()).Error("http.request.failed", "error", err)
	writeJSON(w, status, payload)
}
