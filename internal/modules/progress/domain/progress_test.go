package domain_test

import (
	"testing"

	"wird/internal/modules/progress/domain"
)

func TestDefaultRecord(t *testing.T) {
	t.Parallel()
	rec := domain.DefaultRecord()
	if rec.CurrentSurah != 1 || rec.CurrentAyah != 1 {
		t.Fatalf("default position must be 1:1, got %d:%d", rec.CurrentSurah, rec.CurrentAyah)
	}
	if rec.DailyGoalMin != domain.DefaultDailyGoalMin {
		t.Fatalf("default goal must be %d, got %d", domain.DefaultDailyGoalMin, rec.DailyGoalMin)
	}
	if rec.Bookmarks == nil || rec.CompletedSurahs == nil {
		t.Fatal("default record must carry empty slices, not nil")
	}
}

func TestWithBookmarkIdempotent(t *testing.T) {
	t.Parallel()
	rec := domain.DefaultRecord()
	once := rec.WithBookmark(36)
	twice := once.WithBookmark(36)
	if len(once.Bookmarks) != 1 || len(twice.Bookmarks) != 1 {
		t.Fatalf("bookmark add must be idempotent: %v then %v", once.Bookmarks, twice.Bookmarks)
	}
	if len(rec.Bookmarks) != 0 {
		t.Fatal("WithBookmark must not mutate the receiver")
	}
}

func TestWithoutBookmarkRemovesAndTolerates(t *testing.T) {
	t.Parallel()
	rec := domain.DefaultRecord().WithBookmark(18).WithBookmark(36)
	gone := rec.WithoutBookmark(18)
	if gone.HasBookmark(18) || !gone.HasBookmark(36) {
		t.Fatalf("expected only 36 left, got %v", gone.Bookmarks)
	}
	same := gone.WithoutBookmark(99)
	if len(same.Bookmarks) != 1 {
		t.Fatalf("removing an absent bookmark must be a no-op, got %v", same.Bookmarks)
	}
}

func TestToggleRoundTripViaAddRemove(t *testing.T) {
	t.Parallel()
	rec := domain.DefaultRecord()
	on := rec.WithBookmark(55)
	off := on.WithoutBookmark(55)
	if len(off.Bookmarks) != len(rec.Bookmarks) {
		t.Fatalf("add then remove must restore membership, got %v", off.Bookmarks)
	}
}

func TestWithCompletedSurahIdempotent(t *testing.T) {
	t.Parallel()
	rec := domain.DefaultRecord().WithCompletedSurah(2).WithCompletedSurah(2)
	if len(rec.CompletedSurahs) != 1 {
		t.Fatalf("completion must record a surah once, got %v", rec.CompletedSurahs)
	}
}

func TestPatchApplyMergesOnlySetFields(t *testing.T) {
	t.Parallel()
	rec := domain.DefaultRecord()
	rec.TotalReadingMin = 120
	goal := 30
	merged := rec.Apply(domain.Patch{DailyGoalMin: &goal})
	if merged.DailyGoalMin != 30 {
		t.Fatalf("patched goal not applied, got %d", merged.DailyGoalMin)
	}
	if merged.TotalReadingMin != 120 || merged.CurrentSurah != 1 {
		t.Fatalf("unpatched fields must survive the merge: %+v", merged)
	}
}

func TestNormalizeRepairsBadValues(t *testing.T) {
	t.Parallel()
	rec := domain.Record{CurrentSurah: 0, CurrentAyah: -3, DailyGoalMin: 0, Bookmarks: []int{5, 5, 9}}.Normalize()
	if rec.CurrentSurah != 1 || rec.CurrentAyah != 1 {
		t.Fatalf("position must fall back to 1:1, got %d:%d", rec.CurrentSurah, rec.CurrentAyah)
	}
	if rec.DailyGoalMin != domain.DefaultDailyGoalMin {
		t.Fatalf("goal must fall back to default, got %d", rec.DailyGoalMin)
	}
	if len(rec.Bookmarks) != 2 {
		t.Fatalf("duplicate bookmarks must collapse, got %v", rec.Bookmarks)
	}
}
