package groups

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository persists user groups.
type Repository interface {
	Create(ctx context.Context, group *Group) (*Group, error)
	GetBySlug(ctx context.Context, slug string) (*Group, error)
	List(ctx context.Context) ([]*Group, error)
}

// NotFoundError is returned when a group lookup misses.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// NewGroupRepository builds the go-repository-bun repository for groups.
func NewGroupRepository(db *bun.DB) repository.Repository[*Group] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Group]{
		NewRecord: func() *Group { return &Group{} },
		GetID: func(g *Group) uuid.UUID {
			return g.ID
		},
		SetID: func(g *Group, id uuid.UUID) {
			g.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(g *Group) string {
			return g.Slug
		},
	})
}

// normalizeGroup fills the id and derives the slug from the name when missing.
func normalizeGroup(group *Group) (*Group, error) {
	if group == nil || strings.TrimSpace(group.Name) == "" {
		return nil, ErrGroupNameRequired
	}
	out := cloneGroup(group)
	out.Name = strings.TrimSpace(out.Name)
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	source := out.Slug
	if strings.TrimSpace(source) == "" {
		source = out.Name
	}
	normalized, err := slug.Normalize(source)
	if err != nil {
		return nil, fmt.Errorf("groups: slug %q: %w", source, err)
	}
	if normalized == "" {
		return nil, ErrGroupSlugInvalid
	}
	out.Slug = normalized
	return out, nil
}
