package render_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-widgetlayout/internal/render"
	"github.com/goliatone/go-widgetlayout/widgets"
)

func TestEngineRendersEmbeddedSettingsPanel(t *testing.T) {
	engine, err := render.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	groups := []widgets.Group{
		{Name: "administrators", System: true},
		{Name: "Fans & Friends"},
	}
	var sink bytes.Buffer
	out, err := engine.Render(widgets.SettingsTemplate, map[string]any{"groups": groups}, &sink)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if sink.String() != out {
		t.Fatalf("expected writer to receive the rendered output")
	}
	if !strings.Contains(out, `<option value="administrators" data-system="true">administrators</option>`) {
		t.Fatalf("expected system group option, got:\n%s", out)
	}
	if !strings.Contains(out, "Fans &amp; Friends") {
		t.Fatalf("expected escaped group name, got:\n%s", out)
	}
	if strings.Index(out, "administrators") > strings.Index(out, "Fans") {
		t.Fatalf("expected input order preserved")
	}
}

func TestEngineSanitizeFilterOnGlobalHelp(t *testing.T) {
	engine, err := render.New(render.WithGlobalData(map[string]any{
		"settings_help": `<b>Pick</b> groups<script>alert(1)</script>`,
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	out, err := engine.RenderTemplate(widgets.SettingsTemplate, map[string]any{"groups": []widgets.Group{}})
	if err != nil {
		t.Fatalf("RenderTemplate() error = %v", err)
	}
	if !strings.Contains(out, "<b>Pick</b> groups") {
		t.Fatalf("expected sanitized markup kept, got:\n%s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected script stripped, got:\n%s", out)
	}
}

func TestEngineOverrideFSAndInlineTemplates(t *testing.T) {
	files := fstest.MapFS{
		"admin/partials/widget-settings.tpl": {Data: []byte(`{% for g in groups %}[{{ g.name }}]{% endfor %}`)},
	}
	engine, err := render.New(render.WithFS(files))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	out, err := engine.Render(widgets.SettingsTemplate, map[string]any{
		"groups": []widgets.Group{{Name: "a"}, {Name: "b"}},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "[a][b]" {
		t.Fatalf("unexpected override output %q", out)
	}

	inline, err := engine.Render("hello {{ name }}", map[string]any{"name": "admin"})
	if err != nil {
		t.Fatalf("inline Render() error = %v", err)
	}
	if inline != "hello admin" {
		t.Fatalf("unexpected inline output %q", inline)
	}
}

func TestEngineMissingTemplate(t *testing.T) {
	engine, _ := render.New(render.WithFS(fstest.MapFS{}))
	if _, err := engine.RenderTemplate("admin/partials/missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestSanitizeHTML(t *testing.T) {
	if got := render.SanitizeHTML(`  <a href="https://example.com" onclick="x()">x</a> `); strings.Contains(got, "onclick") {
		t.Fatalf("expected event handler stripped, got %q", got)
	}
	if got := render.SanitizeHTML("   "); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
