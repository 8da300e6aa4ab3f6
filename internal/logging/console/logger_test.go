package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-widgetlayout/internal/logging"
	"github.com/goliatone/go-widgetlayout/internal/logging/console"
)

func TestConsoleLogger_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 3, 14, 15, 9, 26, 0, time.UTC)
	level := console.LevelDebug

	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &level,
	})

	ctx := logging.ContextWithFields(context.Background(), map[string]any{"request_id": "req-1"})
	logger := provider.GetLogger("widgets.layout").
		WithContext(ctx)
	logger = logging.WithFields(logger, map[string]any{"module": "widgets.layout"})

	logger.Info("layout.get.completed", "areas", 6, "error", errors.New("none at all"))

	got := strings.TrimSpace(buf.String())
	want := `2024-03-14T15:09:26Z INFO layout.get.completed areas=6 error="none at all" logger=widgets.layout module=widgets.layout request_id=req-1`
	if got != want {
		t.Fatalf("unexpected entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	level := console.ParseLevel("warn")
	provider := console.NewProvider(console.Options{Writer: &buf, MinLevel: &level})

	logger := provider.GetLogger("widgets.test")
	logger.Info("skipped")
	logger.Warn("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 || !strings.Contains(lines[0], "WARN kept") {
		t.Fatalf("expected only the warn entry, got %q", buf.String())
	}
}

func TestConsoleLogger_OddArgsKeepTrailingValue(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{Writer: &buf})

	provider.GetLogger("widgets.test").Info("odd", "key", "value", "dangling")

	if !strings.Contains(buf.String(), "arg_2=dangling") {
		t.Fatalf("expected dangling arg to be kept, got %q", buf.String())
	}
}
