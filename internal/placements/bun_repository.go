package placements

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var errDatabaseRequired = errors.New("placements: bun repository requires a database")

// BunRepository reads placements from the widget_area_placements table.
type BunRepository struct {
	db *bun.DB
}

var _ Repository = (*BunRepository)(nil)

// NewBunRepository constructs a Bun-backed placement repository.
func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{db: db}
}

// CreateSchema creates the placements table when missing.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().Model((*Placement)(nil)).IfNotExists().Exec(ctx)
	return err
}

func (r *BunRepository) ListByArea(ctx context.Context, template, location string) ([]*Placement, error) {
	if r.db == nil {
		return nil, errDatabaseRequired
	}
	records := make([]*Placement, 0)
	err := r.db.NewSelect().
		Model(&records).
		Where("?TableAlias.template = ?", template).
		Where("?TableAlias.location = ?", location).
		Order("position ASC", "created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *BunRepository) ListAll(ctx context.Context) ([]*Placement, error) {
	if r.db == nil {
		return nil, errDatabaseRequired
	}
	records := make([]*Placement, 0)
	if err := r.db.NewSelect().Model(&records).Order("template ASC", "location ASC", "position ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

// Insert stores items, assigning ids to records that have none.
func (r *BunRepository) Insert(ctx context.Context, items ...*Placement) error {
	if r.db == nil {
		return errDatabaseRequired
	}
	records := make([]*Placement, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		record := clonePlacement(item)
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil
	}
	_, err := r.db.NewInsert().Model(&records).Exec(ctx)
	return err
}
