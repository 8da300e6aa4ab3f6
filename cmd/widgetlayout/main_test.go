package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-widgetlayout/widgets"
)

const forumFixtures = "../../internal/fixtures/testdata/forum.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDumpAreasSection(t *testing.T) {
	out, err := execute(t, "dump", "--section", "areas", "--fixtures", forumFixtures)
	if err != nil {
		t.Fatalf("dump returned error: %v", err)
	}

	var areas []widgets.Area
	if err := json.Unmarshal([]byte(out), &areas); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(areas) != 6 {
		t.Fatalf("expected 6 areas, got %d", len(areas))
	}
	if areas[0].Data[0].Widget != "recentposts" {
		t.Fatalf("expected fixture content in the sidebar, got %+v", areas[0].Data)
	}
	if last := areas[len(areas)-1]; last.Location != "drafts" {
		t.Fatalf("expected draft zone last, got %+v", last)
	}
}

func TestServeReturnsCanceledOnInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	root := newRootCommand(&out)
	root.SetArgs([]string{"serve", "--addr", "127.0.0.1:0"})
	if err := root.ExecuteContext(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled after shutdown, got %v", err)
	}
}

func TestDumpRejectsUnknownSection(t *testing.T) {
	_, err := execute(t, "dump", "--section", "menus")
	if err == nil || !strings.Contains(err.Error(), "unknown section") {
		t.Fatalf("expected unknown section error, got %v", err)
	}
}

func TestHooksWithoutPlugins(t *testing.T) {
	out, err := execute(t, "hooks")
	if err != nil {
		t.Fatalf("hooks returned error: %v", err)
	}
	if strings.TrimSpace(out) != "no filters registered" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRefreshPrintsCounts(t *testing.T) {
	out, err := execute(t, "refresh", "--invalidate", "--area", "global/sidebar")
	if err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}
	if strings.TrimSpace(out) != "areas=6 templates=2 widgets=0" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRefreshRejectsMalformedArea(t *testing.T) {
	if _, err := execute(t, "refresh", "--invalidate", "--area", "sidebar"); err == nil {
		t.Fatalf("expected malformed area to fail")
	}
}

func TestRefreshRequiresInvalidateForAreas(t *testing.T) {
	if _, err := execute(t, "refresh", "--area", "global/sidebar"); err == nil {
		t.Fatalf("expected validation error without --invalidate")
	}
}
