package groups

import (
	"time"

	"github.com/goliatone/go-widgetlayout/widgets"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Group is the persisted user group record.
type Group struct {
	bun.BaseModel `bun:"table:user_groups,alias:ug"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id" yaml:"id"`
	Name        string    `bun:"name,notnull" json:"name" yaml:"name"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug" yaml:"slug"`
	Description string    `bun:"description" json:"description,omitempty" yaml:"description,omitempty"`
	System      bool      `bun:"system,notnull,default:false" json:"system" yaml:"system"`
	Private     bool      `bun:"private,notnull,default:false" json:"private" yaml:"private"`
	Hidden      bool      `bun:"hidden,notnull,default:false" json:"hidden" yaml:"hidden"`
	MemberCount int       `bun:"member_count,notnull,default:0" json:"member_count" yaml:"member_count"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at" yaml:"created_at"`
}

// View converts the record to the value exposed to the layout editor.
func (g *Group) View() widgets.Group {
	return widgets.Group{
		ID:          g.ID,
		Name:        g.Name,
		Slug:        g.Slug,
		Description: g.Description,
		System:      g.System,
		Private:     g.Private,
		Hidden:      g.Hidden,
		MemberCount: g.MemberCount,
		CreatedAt:   g.CreatedAt,
	}
}

func cloneGroup(src *Group) *Group {
	if src == nil {
		return nil
	}
	out := *src
	return &out
}
