package out

import (
	"context"

	progressout "wird/internal/modules/progress/port/out"
	"wird/internal/platform/kv"
)

// CacheClearer drops derived data kept outside the kv store, such as the
// scripture cache tables.
type CacheClearer interface {
	Clear(ctx context.Context) error
}

// KVDataWiper clears every persisted document: progress record, session log,
// settings, cached prayer times, and any composed caches.
type KVDataWiper struct {
	store  kv.Store
	caches []CacheClearer
}

func NewKVDataWiper(store kv.Store, caches ...CacheClearer) progressout.DataWiper {
	return &KVDataWiper{store: store, caches: caches}
}

func (w *KVDataWiper) Wipe(ctx context.Context) error {
	if err := w.store.Clear(ctx); err != nil {
		return err
	}
	for _, cache := range w.caches {
		if err := cache.Clear(ctx); err != nil {
			return err
		}
	}
	return nil
}
