package hooks

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func appendFilter(tag string) Filter {
	return func(_ context.Context, value any) (any, error) {
		list, _ := value.([]string)
		return append(list, tag), nil
	}
}

func TestRegistryFireWithoutHandlersReturnsInput(t *testing.T) {
	reg := NewRegistry()
	input := []string{"seed"}

	out, err := reg.Fire(context.Background(), "filter:missing", input)
	if err != nil {
		t.Fatalf("Fire() error = %v", err)
	}
	if got := out.([]string); !slices.Equal(got, input) {
		t.Fatalf("expected input back, got %v", got)
	}
}

func TestRegistryRunsHandlersByPriorityThenRegistration(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, "filter:list", 10, appendFilter("late"))
	mustRegister(t, reg, "filter:list", 0, appendFilter("first"))
	mustRegister(t, reg, "filter:list", 0, appendFilter("second"))

	out, err := reg.Fire(context.Background(), "filter:list", []string{})
	if err != nil {
		t.Fatalf("Fire() error = %v", err)
	}
	want := []string{"first", "second", "late"}
	if got := out.([]string); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRegistryHandlerErrorAbortsChain(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("boom")
	called := false

	if err := reg.RegisterPlugin("filter:list", "broken-plugin", 0, func(context.Context, any) (any, error) {
		return nil, boom
	}); err != nil {
		t.Fatalf("RegisterPlugin() error = %v", err)
	}
	mustRegister(t, reg, "filter:list", 1, func(_ context.Context, value any) (any, error) {
		called = true
		return value, nil
	})

	_, err := reg.Fire(context.Background(), "filter:list", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom error, got %v", err)
	}
	if called {
		t.Fatalf("expected chain to stop after failing handler")
	}
}

func TestRegistryRejectsInvalidRegistrations(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(" ", 0, appendFilter("x")); !errors.Is(err, ErrFilterNameRequired) {
		t.Fatalf("expected ErrFilterNameRequired, got %v", err)
	}
	if err := reg.Register("filter:list", 0, nil); !errors.Is(err, ErrFilterRequired) {
		t.Fatalf("expected ErrFilterRequired, got %v", err)
	}
	if reg.Has("filter:list") {
		t.Fatalf("expected no handlers after rejected registrations")
	}
}

func TestRegistryIntrospection(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, "filter:b", 0, appendFilter("b"))
	if err := reg.RegisterPlugin("filter:a", "builtin", 0, appendFilter("a")); err != nil {
		t.Fatalf("RegisterPlugin() error = %v", err)
	}

	if names := reg.Names(); !slices.Equal(names, []string{"filter:a", "filter:b"}) {
		t.Fatalf("unexpected names %v", names)
	}
	if plugins := reg.Plugins("filter:a"); !slices.Equal(plugins, []string{"builtin"}) {
		t.Fatalf("unexpected plugins %v", plugins)
	}
	if plugins := reg.Plugins("filter:b"); !slices.Equal(plugins, []string{"#0"}) {
		t.Fatalf("unexpected anonymous plugin ids %v", plugins)
	}
}

func TestRegistryFireHonoursCancelledContext(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, "filter:list", 0, appendFilter("x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := reg.Fire(ctx, "filter:list", []string{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTypedHelpers(t *testing.T) {
	reg := NewRegistry()
	if err := On(reg, "filter:list", "typed", 0, func(_ context.Context, in []string) ([]string, error) {
		return append(in, "typed"), nil
	}); err != nil {
		t.Fatalf("On() error = %v", err)
	}

	out, err := Apply(context.Background(), reg, "filter:list", []string{"seed"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !slices.Equal(out, []string{"seed", "typed"}) {
		t.Fatalf("unexpected typed output %v", out)
	}

	if _, err := Apply(context.Background(), reg, "filter:list", 42); !errors.Is(err, ErrResultType) {
		t.Fatalf("expected ErrResultType for mismatched seed, got %v", err)
	}
}

func TestApplyRejectsMistypedResult(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, "filter:list", 0, func(context.Context, any) (any, error) {
		return "not a slice", nil
	})

	if _, err := Apply(context.Background(), reg, "filter:list", []string{}); !errors.Is(err, ErrResultType) {
		t.Fatalf("expected ErrResultType, got %v", err)
	}

	mustRegister(t, reg, "filter:dropped", 0, func(context.Context, any) (any, error) {
		return nil, nil
	})
	if _, err := Apply(context.Background(), reg, "filter:dropped", []string{"kept"}); !errors.Is(err, ErrResultType) {
		t.Fatalf("expected ErrResultType for an untyped nil result, got %v", err)
	}
}

func TestApplyAcceptsTypedNilSlice(t *testing.T) {
	reg := NewRegistry()
	if err := On(reg, "filter:list", "empty", 0, func(context.Context, []string) ([]string, error) {
		return nil, nil
	}); err != nil {
		t.Fatalf("On() error = %v", err)
	}

	got, err := Apply(context.Background(), reg, "filter:list", []string{"seed"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected an empty result, got %v", got)
	}
}

func mustRegister(t *testing.T, reg *Registry, name string, priority int, fn Filter) {
	t.Helper()
	if err := reg.Register(name, priority, fn); err != nil {
		t.Fatalf("Register(%q) error = %v", name, err)
	}
}
