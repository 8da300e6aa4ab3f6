package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-widgetlayout/pkg/interfaces"
)

const (
	rootModule       = "widgets"
	layoutModule     = "widgets.layout"
	groupsModule     = "widgets.groups"
	placementsModule = "widgets.placements"
	httpModule       = "widgets.http"
	commandsModule   = "widgets.commands"
)

const (
	fieldTemplate = "template"
	fieldLocation = "location"
)

// ModuleLogger returns a logger scoped to module. A nil provider, or one that
// returns nil, yields the no-op logger. The module name is attached as the
// "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	module = strings.TrimSpace(module)
	if module == "" {
		module = rootModule
	}

	var logger interfaces.Logger = noopLogger{}
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}
	return WithFields(logger, map[string]any{"module": module})
}

// LayoutLogger is used by the layout assembler.
func LayoutLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, layoutModule)
}

// GroupsLogger is used by group listing.
func GroupsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, groupsModule)
}

// PlacementsLogger is used by area content lookups.
func PlacementsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, placementsModule)
}

// HTTPLogger is used by the admin HTTP routes.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// CommandsLogger is used by command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithAreaContext adds the template and location of an area. Empty values are
// skipped.
func WithAreaContext(logger interfaces.Logger, template, location string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(template); trimmed != "" {
		fields[fieldTemplate] = trimmed
	}
	if trimmed := strings.TrimSpace(location); trimmed != "" {
		fields[fieldLocation] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that discards every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger { return n }

func (n noopLogger) WithContext(context.Context) interfaces.Logger { return n }
