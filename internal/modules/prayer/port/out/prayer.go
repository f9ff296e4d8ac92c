package out

import (
	"context"
	"time"

	"wird/internal/modules/prayer/domain"
)

// TimesSource fetches one day's timings for a coordinate.
type TimesSource interface {
	FetchTimes(ctx context.Context, latitude, longitude float64, date time.Time) (domain.Times, error)
}

// TimesCache persists fetched timings with their fetch instant so staleness
// can be judged on read.
type TimesCache interface {
	Get(ctx context.Context, key string) (domain.Times, time.Time, bool, error)
	Put(ctx context.Context, key string, times domain.Times, fetchedAt time.Time) error
}
