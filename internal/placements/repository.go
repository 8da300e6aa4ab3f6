package placements

import "context"

// Repository reads widget placements. Results are ordered by position.
type Repository interface {
	ListByArea(ctx context.Context, template, location string) ([]*Placement, error)
	ListAll(ctx context.Context) ([]*Placement, error)
}
