package layout_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/goliatone/go-widgetlayout/internal/hooks"
	"github.com/goliatone/go-widgetlayout/internal/layout"
	"github.com/goliatone/go-widgetlayout/widgets"
)

func areaGen() *rapid.Generator[widgets.Area] {
	return rapid.Custom(func(t *rapid.T) widgets.Area {
		return widgets.Area{
			Name:     rapid.StringMatching(`[A-Z][a-z]{0,8}`).Draw(t, "name"),
			Template: rapid.SampledFrom([]string{"", "global", "groups/details.tpl", "topic.tpl", "category.tpl"}).Draw(t, "template"),
			Location: rapid.SampledFrom([]string{"sidebar", "header", "footer", "left", "right"}).Draw(t, "location"),
		}
	})
}

func TestBuildTemplatesExample(t *testing.T) {
	areas := []widgets.Area{
		{Name: "area0", Template: "a", Location: "l0"},
		{Name: "area1", Template: "b", Location: "l1"},
		{Name: "area2", Template: "a", Location: "l2"},
	}
	want := []widgets.TemplateGroup{
		{Template: "a", Areas: []widgets.AreaRef{{Name: "area0", Location: "l0"}, {Name: "area2", Location: "l2"}}},
		{Template: "b", Areas: []widgets.AreaRef{{Name: "area1", Location: "l1"}}},
	}
	if diff := cmp.Diff(want, layout.BuildTemplates(areas)); diff != "" {
		t.Fatalf("unexpected groups (-want +got):\n%s", diff)
	}
	if got := layout.BuildTemplates(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil groups, got %#v", got)
	}
}

func TestBuildTemplatesPartitionsAreas(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		areas := rapid.SliceOfN(areaGen(), 0, 30).Draw(t, "areas")
		groups := layout.BuildTemplates(areas)

		total := 0
		seen := map[string]bool{}
		var firstSeen []string
		for _, area := range areas {
			if !seen[area.Template] {
				seen[area.Template] = true
				firstSeen = append(firstSeen, area.Template)
			}
		}
		if len(groups) != len(firstSeen) {
			t.Fatalf("expected %d groups, got %d", len(firstSeen), len(groups))
		}
		for i, group := range groups {
			if group.Template != firstSeen[i] {
				t.Fatalf("group %d template %q, want %q", i, group.Template, firstSeen[i])
			}
			var members []widgets.AreaRef
			for _, area := range areas {
				if area.Template == group.Template {
					members = append(members, area.Ref())
				}
			}
			if diff := cmp.Diff(members, group.Areas); diff != "" {
				t.Fatalf("group %q members differ (-want +got):\n%s", group.Template, diff)
			}
			total += len(group.Areas)
		}
		if total != len(areas) {
			t.Fatalf("partition covers %d areas, want %d", total, len(areas))
		}
	})
}

func TestAreasPropertyDraftZoneLastAndResolved(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		extra := rapid.SliceOfN(areaGen(), 0, 10).Draw(t, "extra")
		identity := rapid.Bool().Draw(t, "identity")

		f := newFixture()
		expected := len(widgets.DefaultAreas())
		if !identity {
			expected += len(extra)
			_ = hooks.On(f.registry, widgets.FilterAreas, "extend", 0, func(_ context.Context, areas []widgets.Area) ([]widgets.Area, error) {
				return append(areas, extra...), nil
			})
		}
		f.lookup = func(context.Context, string, string) ([]widgets.PlacedWidget, error) {
			return nil, nil
		}

		areas, err := f.service(t).Areas(context.Background())
		if err != nil {
			t.Fatalf("Areas() error = %v", err)
		}
		if len(areas) != expected+1 {
			t.Fatalf("expected %d areas, got %d", expected+1, len(areas))
		}
		if diff := cmp.Diff(widgets.DraftZone().WithData(nil), areas[len(areas)-1]); diff != "" {
			t.Fatalf("draft zone must be last (-want +got):\n%s", diff)
		}
		for i, area := range areas {
			if !area.Resolved() {
				t.Fatalf("area %d has undefined data", i)
			}
		}
	})
}

func TestAvailableWidgetsPropertyContentSuffix(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		contents := rapid.SliceOfN(rapid.String(), 0, 12).Draw(t, "contents")
		fragment := rapid.String().Draw(t, "fragment")

		f := newFixture()
		f.renderer.fragment = fragment
		_ = hooks.On(f.registry, widgets.FilterWidgets, "gen", 0, func(_ context.Context, defs []widgets.WidgetDefinition) ([]widgets.WidgetDefinition, error) {
			for i, content := range contents {
				defs = append(defs, widgets.WidgetDefinition{Widget: string(rune('a' + i)), Content: content})
			}
			return defs, nil
		})

		defs, err := f.service(t).AvailableWidgets(context.Background())
		if err != nil {
			t.Fatalf("AvailableWidgets() error = %v", err)
		}
		if len(defs) != len(contents) {
			t.Fatalf("expected %d widgets, got %d", len(contents), len(defs))
		}
		for i, def := range defs {
			if def.Content != contents[i]+fragment {
				t.Fatalf("widget %d content %q, want %q", i, def.Content, contents[i]+fragment)
			}
		}
	})
}

func TestSortSystemFirstIsStable(t *testing.T) {
	in := []widgets.Group{
		{Name: "first", System: false},
		{Name: "system", System: true},
		{Name: "second", System: false},
	}
	got := layout.SortSystemFirst(in)
	want := []widgets.Group{in[1], in[0], in[2]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if in[0].Name != "first" {
		t.Fatalf("input must not be reordered")
	}

	rapid.Check(t, func(t *rapid.T) {
		flags := rapid.SliceOfN(rapid.Bool(), 0, 20).Draw(t, "system")
		groups := make([]widgets.Group, len(flags))
		for i, flag := range flags {
			groups[i] = widgets.Group{MemberCount: i, System: flag}
		}
		sorted := layout.SortSystemFirst(groups)
		lastSystem, lastOther := -1, -1
		inOthers := false
		for _, g := range sorted {
			if g.System {
				if inOthers {
					t.Fatalf("system group after non-system group")
				}
				if g.MemberCount < lastSystem {
					t.Fatalf("system partition reordered")
				}
				lastSystem = g.MemberCount
				continue
			}
			inOthers = true
			if g.MemberCount < lastOther {
				t.Fatalf("non-system partition reordered")
			}
			lastOther = g.MemberCount
		}
	})
}
