package placements

import (
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Placement is a widget configured inside a template area.
type Placement struct {
	bun.BaseModel `bun:"table:widget_area_placements,alias:wap"`

	ID        uuid.UUID      `bun:",pk,type:uuid" json:"id" yaml:"id"`
	Template  string         `bun:"template,notnull" json:"template" yaml:"template"`
	Location  string         `bun:"location,notnull" json:"location" yaml:"location"`
	Widget    string         `bun:"widget,notnull" json:"widget" yaml:"widget"`
	Data      map[string]any `bun:"data,type:jsonb" json:"data,omitempty" yaml:"data,omitempty"`
	Position  int            `bun:"position,notnull,default:0" json:"position" yaml:"position"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at" yaml:"created_at,omitempty"`
}

func clonePlacement(src *Placement) *Placement {
	if src == nil {
		return nil
	}
	out := *src
	out.Data = maps.Clone(src.Data)
	return &out
}

// areaKey identifies a template area. The NUL separator cannot appear in
// template or location names coming from configuration or the database.
func areaKey(template, location string) string {
	return template + "\x00" + location
}
