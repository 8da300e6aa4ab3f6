package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-widgetlayout/pkg/interfaces"
)

type recordingLogger struct {
	fields []map[string]any
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	r.fields = append(r.fields, fields)
	return r
}

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, layoutModule)
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger.WithContext(context.Background()).Debug("noop")
}

func TestModuleLoggerAnnotatesModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = LayoutLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != layoutModule {
		t.Fatalf("expected %s requested, got %v", layoutModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != layoutModule {
		t.Fatalf("expected module field %s, got %v", layoutModule, rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = ModuleLogger(provider, "  ")
	if provider.requested[0] != rootModule {
		t.Fatalf("expected root module, got %v", provider.requested)
	}
}

func TestWithAreaContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}
	WithAreaContext(rec, "global", " ")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	if rec.fields[0][fieldTemplate] != "global" {
		t.Fatalf("expected template field, got %v", rec.fields[0])
	}
	if _, ok := rec.fields[0][fieldLocation]; ok {
		t.Fatalf("expected blank location to be skipped")
	}
}

func TestContextFieldsMergeAndCopy(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"request_id": "r1"})
	ctx = ContextWithFields(ctx, map[string]any{"route": "/admin"})

	fields := ContextFields(ctx)
	if fields["request_id"] != "r1" || fields["route"] != "/admin" {
		t.Fatalf("unexpected merged fields %v", fields)
	}
	fields["request_id"] = "mutated"
	if ContextFields(ctx)["request_id"] != "r1" {
		t.Fatalf("expected ContextFields to return a copy")
	}
}
