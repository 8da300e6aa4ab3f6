package fixtures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-widgetlayout/internal/groups"
	"github.com/goliatone/go-widgetlayout/internal/placements"
)

// Document is the YAML seed for groups and area placements.
type Document struct {
	Groups     []*groups.Group         `yaml:"groups"`
	Placements []*placements.Placement `yaml:"placements"`
}

// PlacementLoader accepts seeded placements.
type PlacementLoader interface {
	Load(items ...*placements.Placement)
}

// Parse decodes a fixture document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("fixtures: decode: %w", err)
	}
	for i, g := range doc.Groups {
		if g == nil || strings.TrimSpace(g.Name) == "" {
			return nil, fmt.Errorf("fixtures: groups[%d]: name is required", i)
		}
	}
	for i, p := range doc.Placements {
		if p == nil || p.Location == "" || p.Widget == "" {
			return nil, fmt.Errorf("fixtures: placements[%d]: location and widget are required", i)
		}
	}
	return doc, nil
}

// LoadFile reads and parses the fixture document at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read %s: %w", path, err)
	}
	return Parse(data)
}

// Seed writes the document into the given stores. Either store may be nil.
func (d *Document) Seed(ctx context.Context, groupRepo groups.Repository, loader PlacementLoader) error {
	if groupRepo != nil {
		for _, g := range d.Groups {
			if _, err := groupRepo.Create(ctx, g); err != nil {
				return fmt.Errorf("fixtures: seed group %q: %w", g.Name, err)
			}
		}
	}
	if loader != nil && len(d.Placements) > 0 {
		loader.Load(d.Placements...)
	}
	return nil
}
