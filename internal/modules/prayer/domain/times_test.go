package domain_test

import (
	"testing"
	"time"

	"wird/internal/modules/prayer/domain"
)

func TestNextPrayerPicksFirstUpcoming(t *testing.T) {
	t.Parallel()
	times := domain.FallbackTimes()
	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"before fajr", time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC), "Fajr"},
		{"mid morning", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), "Dhuhr"},
		{"afternoon", time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC), "Asr"},
		{"after isha wraps to fajr", time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC), "Fajr"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := times.NextPrayer(tc.at)
			if got.Name != tc.want {
				t.Fatalf("at %s expected %s, got %s", tc.at.Format("15:04"), tc.want, got.Name)
			}
		})
	}
}

func TestNextPrayerSkipsUnparseableTimings(t *testing.T) {
	t.Parallel()
	times := domain.FallbackTimes()
	times.Dhuhr = "garbage"
	got := times.NextPrayer(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	if got.Name != "Asr" {
		t.Fatalf("unparseable dhuhr must be skipped, got %s", got.Name)
	}
}

func TestFormat12Hour(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"05:30", "5:30 AM"},
		{"12:30", "12:30 PM"},
		{"00:05", "12:05 AM"},
		{"18:15", "6:15 PM"},
		{"18:15 (EET)", "6:15 PM"},
		{"nonsense", "nonsense"},
	}
	for _, tc := range cases {
		if got := domain.Format12Hour(tc.in); got != tc.want {
			t.Fatalf("Format12Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
