package groups

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"
)

// BunGroupRepository implements Repository with optional caching.
type BunGroupRepository struct {
	repo repository.Repository[*Group]
}

var _ Repository = (*BunGroupRepository)(nil)

// NewBunGroupRepository creates a group repository without caching.
func NewBunGroupRepository(db *bun.DB) *BunGroupRepository {
	return NewBunGroupRepositoryWithCache(db, nil, nil)
}

// NewBunGroupRepositoryWithCache creates a group repository with caching support.
func NewBunGroupRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunGroupRepository {
	base := NewGroupRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunGroupRepository{repo: base}
}

// CreateSchema creates the groups table when missing.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().Model((*Group)(nil)).IfNotExists().Exec(ctx)
	return err
}

func (r *BunGroupRepository) Create(ctx context.Context, group *Group) (*Group, error) {
	record, err := normalizeGroup(group)
	if err != nil {
		return nil, err
	}
	if _, err := r.repo.GetByIdentifier(ctx, record.Slug); err == nil {
		return nil, ErrDuplicateSlug
	}
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "group", record.Slug)
	}
	return created, nil
}

func (r *BunGroupRepository) GetBySlug(ctx context.Context, slug string) (*Group, error) {
	record, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "group", slug)
	}
	return record, nil
}

// List returns groups oldest first.
func (r *BunGroupRepository) List(ctx context.Context) ([]*Group, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("created_at ASC", "name ASC")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "group", "*")
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
