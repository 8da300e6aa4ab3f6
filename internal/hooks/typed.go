package hooks

import (
	"context"
	"fmt"

	"github.com/goliatone/go-widgetlayout/pkg/interfaces"
)

// On registers a typed filter. Values of another type reaching the handler
// fail the chain with ErrResultType.
func On[T any](r *Registry, name, plugin string, priority int, fn func(ctx context.Context, value T) (T, error)) error {
	if fn == nil {
		return ErrFilterRequired
	}
	return r.RegisterPlugin(name, plugin, priority, func(ctx context.Context, value any) (any, error) {
		typed, err := as[T](name, value)
		if err != nil {
			return nil, err
		}
		return fn(ctx, typed)
	})
}

// Apply fires the filter chain with seed and asserts the result type.
func Apply[T any](ctx context.Context, runner interfaces.FilterRunner, name string, seed T) (T, error) {
	var zero T
	result, err := runner.Fire(ctx, name, seed)
	if err != nil {
		return zero, err
	}
	return as[T](name, result)
}

// as accepts a typed nil such as a nil slice but rejects an untyped nil, which
// only a handler that dropped the chain value can produce.
func as[T any](name string, value any) (T, error) {
	var zero T
	if value == nil {
		return zero, fmt.Errorf("%w: %s got nil, want %T", ErrResultType, name, zero)
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s got %T, want %T", ErrResultType, name, value, zero)
	}
	return typed, nil
}
