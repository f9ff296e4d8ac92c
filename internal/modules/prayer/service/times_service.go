package service

import (
	"context"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"wird/internal/modules/prayer/domain"
	prayerout "wird/internal/modules/prayer/port/out"
	"wird/internal/platform/clock"
)

// TimesService serves daily timings cache-first with a 24h staleness bound,
// falling back to built-in approximate times when nothing else can serve.
type TimesService struct {
	clock  clock.Clock
	source prayerout.TimesSource
	cache  prayerout.TimesCache
	logger hclog.Logger
}

func NewTimesService(clk clock.Clock, source prayerout.TimesSource, cache prayerout.TimesCache, logger hclog.Logger) *TimesService {
	return &TimesService{clock: clk, source: source, cache: cache, logger: logger}
}

func (s *TimesService) TimesFor(ctx context.Context, latitude, longitude float64) domain.Times {
	now := s.clock.Now()
	key := cacheKey(latitude, longitude)

	var stale domain.Times
	var haveStale bool
	if s.cache != nil {
		times, fetchedAt, found, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("read prayer times cache failed", "error", err)
		} else if found {
			if now.Sub(fetchedAt) < domain.CacheTTL {
				return times
			}
			stale, haveStale = times, true
		}
	}

	times, err := s.source.FetchTimes(ctx, latitude, longitude, now)
	if err != nil {
		s.logger.Warn("fetch prayer times failed", "error", err)
		if haveStale {
			return stale
		}
		return domain.FallbackTimes()
	}
	if s.cache != nil {
		if err := s.cache.Put(ctx, key, times, now); err != nil {
			s.logger.Warn("cache prayer times failed", "error", err)
		}
	}
	return times
}

func (s *TimesService) NextPrayer(ctx context.Context, latitude, longitude float64) domain.Prayer {
	return s.TimesFor(ctx, latitude, longitude).NextPrayer(s.clock.Now())
}

func cacheKey(latitude, longitude float64) string {
	return fmt.Sprintf("%.2f,%.2f", latitude, longitude)
}
