package out_test

import (
	"context"
	"testing"

	progressout "wird/internal/modules/progress/adapter/out"
	"wird/internal/platform/kv"
)

type fakeCacheClearer struct {
	cleared int
}

func (f *fakeCacheClearer) Clear(context.Context) error {
	f.cleared++
	return nil
}

func TestWipeClearsStoreAndComposedCaches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	if err := store.Set(ctx, "progress_record", []byte(`{"daily_goal_minutes":15}`)); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	cache := &fakeCacheClearer{}

	wiper := progressout.NewKVDataWiper(store, cache)
	if err := wiper.Wipe(ctx); err != nil {
		t.Fatalf("wipe: %v", err)
	}

	if _, found, err := store.Get(ctx, "progress_record"); err != nil || found {
		t.Fatalf("store must be empty, found=%v err=%v", found, err)
	}
	if cache.cleared != 1 {
		t.Fatalf("composed cache must be cleared once, got %d", cache.cleared)
	}
}
