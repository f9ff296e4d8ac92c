package service

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"wird/internal/modules/progress/domain"
	progressout "wird/internal/modules/progress/port/out"
	"wird/internal/platform/clock"
)

// LogService owns the retention-bounded session log and the derived values
// computed from it. Derivations are stateless recomputations on every call.
type LogService struct {
	clock  clock.Clock
	store  progressout.SessionLogStore
	logger hclog.Logger
}

func NewLogService(clk clock.Clock, store progressout.SessionLogStore, logger hclog.Logger) *LogService {
	return &LogService{clock: clk, store: store, logger: logger}
}

// Append records a completed session, prunes the retention window, and
// persists the whole log under its document key. Non-positive durations are
// silently dropped. Reports whether the session was recorded.
func (s *LogService) Append(ctx context.Context, session domain.Session) bool {
	if session.DurationMin <= 0 {
		return false
	}
	log := s.List(ctx)
	log = domain.AppendSession(log, session, s.clock.Now())
	if err := s.store.Save(ctx, log); err != nil {
		s.logger.Warn("persist session log failed", "error", err)
	}
	return true
}

// List returns a snapshot of the retained sessions in insertion order.
func (s *LogService) List(ctx context.Context) []domain.Session {
	log, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("load session log failed, using empty log", "error", err)
		return []domain.Session{}
	}
	return log
}

func (s *LogService) SessionsInWindow(ctx context.Context, sinceDays int) []domain.Session {
	since := s.clock.Now().AddDate(0, 0, -sinceDays)
	return domain.SessionsInWindow(s.List(ctx), since)
}

func (s *LogService) TodayReadingMin(ctx context.Context) int {
	return domain.TodayReadingMin(s.List(ctx), s.clock.Now())
}

func (s *LogService) CurrentStreak(ctx context.Context) int {
	return domain.CurrentStreak(s.List(ctx), s.clock.Now())
}

func (s *LogService) StatsSince(ctx context.Context, sinceDays int) domain.PeriodStats {
	now := s.clock.Now()
	return domain.StatsSince(s.List(ctx), now.AddDate(0, 0, -sinceDays), now)
}
