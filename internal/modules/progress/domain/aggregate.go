package domain

import (
	"math"
	"time"
)

// PeriodStats summarizes reading activity over a window.
type PeriodStats struct {
	TotalMinutes int
	TotalVerses  int
	DaysActive   int
	AverageDaily int
}

// TodayReadingMin sums the durations of sessions whose calendar date, in
// now's timezone, equals now's date. A rolling 24h window would be wrong here.
func TodayReadingMin(log []Session, now time.Time) int {
	total := 0
	for _, s := range log {
		if sameDay(s.Date, now, now.Location()) {
			total += s.DurationMin
		}
	}
	return total
}

// CurrentStreak walks backward day by day from today. Today having no
// session does not break the streak (the day is not over yet) but only
// counts when a session exists; the first earlier day without a session
// ends the walk. The scan is bounded to keep termination guaranteed.
func CurrentStreak(log []Session, now time.Time) int {
	if len(log) == 0 {
		return 0
	}
	streak := 0
	day := now
	for i := 0; i < StreakHorizonDays; i++ {
		if hasSessionOn(log, day, now.Location()) {
			streak++
		} else if i != 0 {
			break
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// GoalProgressPercent reports today's minutes against the daily goal,
// rounded half up and clamped to 100. A non-positive goal reads as 0%.
func GoalProgressPercent(todayMin, goalMin int) int {
	if goalMin <= 0 {
		return 0
	}
	pct := int(math.Round(float64(todayMin) / float64(goalMin) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// StatsSince aggregates the sessions dated at or after since.
func StatsSince(log []Session, since, now time.Time) PeriodStats {
	stats := PeriodStats{}
	days := map[string]struct{}{}
	for _, s := range SessionsInWindow(log, since) {
		stats.TotalMinutes += s.DurationMin
		stats.TotalVerses += s.VersesRead
		days[s.Date.In(now.Location()).Format("2006-01-02")] = struct{}{}
	}
	stats.DaysActive = len(days)
	if stats.DaysActive > 0 {
		stats.AverageDaily = int(math.Round(float64(stats.TotalMinutes) / float64(stats.DaysActive)))
	}
	return stats
}

func hasSessionOn(log []Session, day time.Time, loc *time.Location) bool {
	for _, s := range log {
		if sameDay(s.Date, day, loc) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
