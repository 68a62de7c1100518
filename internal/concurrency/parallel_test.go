package concurrency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestForEachVisitsEveryIndex(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i * 2
	}

	got := make([]int, len(items))
	errs := ForEach(context.Background(), items, Options{MaxWorkers: 4},
		func(_ context.Context, i, item int) error {
			got[i] = item + 1
			return nil
		})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for i, v := range got {
		if v != items[i]+1 {
			t.Errorf("index %d = %d, want %d", i, v, items[i]+1)
		}
	}
}

func TestForEachCollectsErrors(t *testing.T) {
	boom := errors.New("boom")
	items := []int{0, 1, 2, 3, 4, 5}

	errs := ForEach(context.Background(), items, DefaultOptions(),
		func(_ context.Context, _ int, item int) error {
			if item%2 == 0 {
				return boom
			}
			return nil
		})
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3", len(errs))
	}
	for _, err := range errs {
		if !errors.Is(err, boom) {
			t.Errorf("unexpected error %v", err)
		}
	}
}

func TestForEachEmptyInput(t *testing.T) {
	if errs := ForEach(context.Background(), nil, DefaultOptions(),
		func(context.Context, int, int) error { return nil }); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestForEachBadWorkerCount(t *testing.T) {
	var calls atomic.Int64
	errs := ForEach(context.Background(), []int{1, 2, 3}, Options{MaxWorkers: -1},
		func(context.Context, int, int) error {
			calls.Add(1)
			return nil
		})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if calls.Load() != 3 {
		t.Errorf("fn called %d times, want 3", calls.Load())
	}
}

func TestForEachCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]int, 1000)
	var calls atomic.Int64
	errs := ForEach(ctx, items, Options{MaxWorkers: 2},
		func(context.Context, int, int) error {
			calls.Add(1)
			return nil
		})

	if len(errs) == 0 {
		t.Fatal("expected a context error")
	}
	found := false
	for _, err := range errs {
		if errors.Is(err, context.Canceled) {
			found = true
		}
	}
	if !found {
		t.Errorf("errors %v do not include context.Canceled", errs)
	}
	if calls.Load() == int64(len(items)) {
		t.Error("cancellation did not stop the feed")
	}
}
