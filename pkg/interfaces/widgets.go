package interfaces

import (
	"context"

	"github.com/goliatone/go-widgetlayout/widgets"
)

// FilterRunner dispatches a value through a named filter chain and returns the
// transformed value. Implementations must return the input unchanged when no
// handlers are registered for name.
type FilterRunner interface {
	Fire(ctx context.Context, name string, value any) (any, error)
}

// AreaContentLookup returns the widgets currently placed in a template area.
type AreaContentLookup interface {
	LookupArea(ctx context.Context, template, location string) ([]widgets.PlacedWidget, error)
}

// GroupLister lists groups that are not privilege groups. A limit of -1 means
// unbounded.
type GroupLister interface {
	ListNonPrivilegeGroups(ctx context.Context, sortKey string, offset, limit int) ([]widgets.Group, error)
}
