package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns local time. Streak and daily-goal math compare
// calendar days in the reader's own timezone, so local is intentional.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
