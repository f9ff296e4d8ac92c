package domain

import "time"

// AppendSession adds a completed session to the log and prunes everything
// older than the retention window. Sessions without positive duration are
// dropped and the log is returned unchanged.
func AppendSession(log []Session, s Session, now time.Time) []Session {
	if s.DurationMin <= 0 {
		return log
	}
	return PruneSessions(append(snapshot(log), s), now)
}

// PruneSessions removes sessions dated before now minus the retention window.
func PruneSessions(log []Session, now time.Time) []Session {
	cutoff := now.AddDate(0, 0, -RetentionDays)
	out := make([]Session, 0, len(log))
	for _, s := range log {
		if !s.Date.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// SessionsInWindow returns the sessions dated at or after since, in stored order.
func SessionsInWindow(log []Session, since time.Time) []Session {
	out := make([]Session, 0, len(log))
	for _, s := range log {
		if !s.Date.Before(since) {
			out = append(out, s)
		}
	}
	return out
}

func snapshot(log []Session) []Session {
	out := make([]Session, len(log))
	copy(out, log)
	return out
}
