package layout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestGatherKeepsInputOrder(t *testing.T) {
	items := []int{5, 4, 3, 2, 1, 0}
	got, err := gather(context.Background(), 0, items, func(_ context.Context, n int) (int, error) {
		time.Sleep(time.Duration(n) * time.Millisecond)
		return n * 10, nil
	})
	if err != nil {
		t.Fatalf("gather() error = %v", err)
	}
	for i, n := range items {
		if got[i] != n*10 {
			t.Fatalf("result %d = %d, want %d", i, got[i], n*10)
		}
	}
}

func TestGatherRespectsLimit(t *testing.T) {
	var inflight, peak atomic.Int32
	_, err := gather(context.Background(), 2, make([]struct{}, 8), func(context.Context, struct{}) (struct{}, error) {
		cur := inflight.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		inflight.Add(-1)
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatalf("gather() error = %v", err)
	}
	if peak.Load() > 2 {
		t.Fatalf("expected at most 2 concurrent tasks, saw %d", peak.Load())
	}
}

func TestGatherReturnsFirstErrorWithoutResults(t *testing.T) {
	boom := errors.New("boom")
	got, err := gather(context.Background(), 0, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil results on failure, got %v", got)
	}
}

func TestGatherEmptyInput(t *testing.T) {
	got, err := gather(context.Background(), 0, []string(nil), func(context.Context, string) (string, error) {
		t.Fatalf("fn must not run")
		return "", nil
	})
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v / %v", got, err)
	}
}
