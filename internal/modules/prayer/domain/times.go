package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CacheTTL bounds how long fetched timings are reused.
const CacheTTL = 24 * time.Hour

// Times holds one day's timings in "HH:MM" 24-hour form.
type Times struct {
	Fajr    string `json:"fajr"`
	Sunrise string `json:"sunrise"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
	Sunset  string `json:"sunset"`
}

// Prayer is one named timing.
type Prayer struct {
	Name string
	Time string
}

// Prayers lists the five daily prayers in order. Sunrise and sunset are
// informational and excluded.
func (t Times) Prayers() []Prayer {
	return []Prayer{
		{Name: "Fajr", Time: t.Fajr},
		{Name: "Dhuhr", Time: t.Dhuhr},
		{Name: "Asr", Time: t.Asr},
		{Name: "Maghrib", Time: t.Maghrib},
		{Name: "Isha", Time: t.Isha},
	}
}

// NextPrayer returns the first prayer after now, wrapping to tomorrow's fajr
// when the day's prayers have passed.
func (t Times) NextPrayer(now time.Time) Prayer {
	current := now.Hour()*60 + now.Minute()
	for _, p := range t.Prayers() {
		minutes, err := parseClock(p.Time)
		if err != nil {
			continue
		}
		if minutes > current {
			return p
		}
	}
	return Prayer{Name: "Fajr", Time: t.Fajr}
}

// Format12Hour renders "HH:MM" as "h:MM AM/PM". Unparseable input is
// returned untouched.
func Format12Hour(clock string) string {
	minutes, err := parseClock(clock)
	if err != nil {
		return clock
	}
	hours := minutes / 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes%60, period)
}

// FallbackTimes serves when neither the API nor the cache can.
func FallbackTimes() Times {
	return Times{
		Fajr:    "05:30",
		Sunrise: "06:45",
		Dhuhr:   "12:30",
		Asr:     "15:45",
		Maghrib: "18:15",
		Isha:    "19:45",
		Sunset:  "18:00",
	}
}

func parseClock(clock string) (int, error) {
	// aladhan sometimes suffixes a timezone, e.g. "05:30 (EET)".
	if i := strings.IndexByte(clock, ' '); i > 0 {
		clock = clock[:i]
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock %q out of range", clock)
	}
	return hours*60 + minutes, nil
}
