package out

import (
	"context"
	"encoding/json"
	"time"

	"wird/internal/modules/prayer/domain"
	prayerout "wird/internal/modules/prayer/port/out"
	"wird/internal/platform/kv"
)

const timesCacheKeyPrefix = "prayer_times:"

// KVTimesCache stores one timings document per coordinate key. Malformed
// documents read as absent.
type KVTimesCache struct {
	store kv.Store
}

func NewKVTimesCache(store kv.Store) prayerout.TimesCache {
	return &KVTimesCache{store: store}
}

type cachedTimes struct {
	Times     domain.Times `json:"times"`
	FetchedAt time.Time    `json:"fetched_at"`
}

func (c *KVTimesCache) Get(ctx context.Context, key string) (domain.Times, time.Time, bool, error) {
	payload, found, err := c.store.Get(ctx, timesCacheKeyPrefix+key)
	if err != nil {
		return domain.Times{}, time.Time{}, false, err
	}
	if !found {
		return domain.Times{}, time.Time{}, false, nil
	}
	var cached cachedTimes
	if err := json.Unmarshal(payload, &cached); err != nil {
		return domain.Times{}, time.Time{}, false, nil
	}
	return cached.Times, cached.FetchedAt, true, nil
}

func (c *KVTimesCache) Put(ctx context.Context, key string, times domain.Times, fetchedAt time.Time) error {
	payload, err := json.Marshal(cachedTimes{Times: times, FetchedAt: fetchedAt})
	if err != nil {
		return err
	}
	return c.store.Set(ctx, timesCacheKeyPrefix+key, payload)
}
