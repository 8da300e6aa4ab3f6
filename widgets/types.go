package widgets

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// Area is a named slot in a page template where widgets can be placed.
// Data stays nil until the area content has been resolved.
type Area struct {
	Name     string         `json:"name" yaml:"name"`
	Template string         `json:"template" yaml:"template"`
	Location string         `json:"location" yaml:"location"`
	Data     []PlacedWidget `json:"data" yaml:"data,omitempty"`
}

// Resolved reports whether the area content has been looked up.
func (a Area) Resolved() bool {
	return a.Data != nil
}

// WithData returns a copy of the area carrying the provided content. A nil
// slice is normalised to an empty one so the copy always reports Resolved.
func (a Area) WithData(data []PlacedWidget) Area {
	out := a
	if data == nil {
		data = []PlacedWidget{}
	}
	out.Data = ClonePlacedWidgets(data)
	return out
}

// Ref returns the name/location pair used by template groups.
func (a Area) Ref() AreaRef {
	return AreaRef{Name: a.Name, Location: a.Location}
}

// PlacedWidget is a widget instance currently configured inside an area.
type PlacedWidget struct {
	Widget string         `json:"widget" yaml:"widget"`
	Data   map[string]any `json:"data" yaml:"data"`
}

// AreaRef identifies an area inside a template group.
type AreaRef struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// TemplateGroup lists the areas owned by a single template.
type TemplateGroup struct {
	Template string    `json:"template"`
	Areas    []AreaRef `json:"areas"`
}

// WidgetDefinition describes a widget that can be placed into an area. Content
// holds the editor markup shown in the admin panel.
type WidgetDefinition struct {
	Widget      string         `json:"widget" yaml:"widget"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Content     string         `json:"content" yaml:"content"`
	Meta        map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// WithContent returns a copy of the definition with content replaced.
func (w WidgetDefinition) WithContent(content string) WidgetDefinition {
	out := w
	out.Content = content
	out.Meta = maps.Clone(w.Meta)
	return out
}

// Group is a user group offered in the widget visibility settings.
type Group struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Slug        string    `json:"slug" yaml:"slug"`
	Description string    `json:"description" yaml:"description"`
	System      bool      `json:"system" yaml:"system"`
	Private     bool      `json:"private" yaml:"private"`
	Hidden      bool      `json:"hidden" yaml:"hidden"`
	MemberCount int       `json:"memberCount" yaml:"member_count"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
}

// Layout is the payload consumed by the admin widget layout editor.
type Layout struct {
	Templates        []TemplateGroup    `json:"templates"`
	Areas            []Area             `json:"areas"`
	AvailableWidgets []WidgetDefinition `json:"availableWidgets"`
}

// CloneAreas copies the slice and each area's content.
func CloneAreas(areas []Area) []Area {
	if areas == nil {
		return nil
	}
	out := make([]Area, len(areas))
	for i, area := range areas {
		out[i] = area
		out[i].Data = ClonePlacedWidgets(area.Data)
	}
	return out
}

// CloneWidgets copies the slice and each definition's metadata.
func CloneWidgets(defs []WidgetDefinition) []WidgetDefinition {
	if defs == nil {
		return nil
	}
	out := make([]WidgetDefinition, len(defs))
	for i, def := range defs {
		out[i] = def.WithContent(def.Content)
	}
	return out
}

// ClonePlacedWidgets copies placed widgets including their data maps.
func ClonePlacedWidgets(items []PlacedWidget) []PlacedWidget {
	if items == nil {
		return nil
	}
	out := make([]PlacedWidget, len(items))
	for i, item := range items {
		out[i] = PlacedWidget{Widget: item.Widget, Data: maps.Clone(item.Data)}
	}
	return out
}
