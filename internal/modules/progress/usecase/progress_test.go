package usecase_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	progressout "wird/internal/modules/progress/adapter/out"
	progressdto "wird/internal/modules/progress/dto"
	progressin "wird/internal/modules/progress/port/in"
	"wird/internal/modules/progress/service"
	"wird/internal/modules/progress/usecase"
	apperrors "wird/internal/platform/errors"
	"wird/internal/platform/kv"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type fakeID struct{}

func (fakeID) New() string { return "sess-1" }

func newTestUsecase(t *testing.T, clk *fakeClock) (progressin.Usecase, kv.Store) {
	t.Helper()
	dataPath := t.TempDir()
	store := kv.NewMemoryStore()
	logger := hclog.NewNullLogger()
	records := service.NewRecordService(progressout.NewKVRecordStore(store), logger)
	log := service.NewLogService(clk, progressout.NewKVSessionLogStore(store), logger)
	uc := usecase.NewInteractor(
		clk,
		fakeID{},
		records,
		log,
		progressout.NewFileActiveSessionStore(dataPath),
		progressout.NewMarkdownJournalStore(dataPath),
		progressout.NewKVDataWiper(store),
		logger,
	)
	return uc, store
}

func TestSessionLifecycleUpdatesLogAndRecord(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 10, 45, 0, 0, time.UTC),
	}}
	uc, _ := newTestUsecase(t, clk)
	ctx := context.Background()

	start, err := uc.StartSession(ctx, progressdto.StartSessionInput{Surah: 2, Ayah: 10})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if start.SessionID == "" {
		t.Fatal("session id must be set")
	}

	active, err := uc.GetActive(ctx)
	if err != nil {
		t.Fatalf("get active session: %v", err)
	}
	if active.Surah != 2 || active.Ayah != 10 {
		t.Fatalf("active session must carry the starting position, got %d:%d", active.Surah, active.Ayah)
	}

	end, err := uc.EndSession(ctx, progressdto.EndSessionInput{VersesRead: 12, SurahsRead: []int{2}})
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if end.DurationMin != 45 || !end.Recorded {
		t.Fatalf("expected recorded 45 minute session, got %+v", end)
	}

	record, err := uc.Record(ctx)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	if record.TotalReadingMin != 45 {
		t.Fatalf("total reading minutes must accumulate, got %d", record.TotalReadingMin)
	}
	if record.LastReadDate == "" {
		t.Fatal("last read date must be stamped")
	}

	sessions, err := uc.Sessions(ctx)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].VersesRead != 12 {
		t.Fatalf("expected one logged session with 12 verses, got %+v", sessions)
	}

	if _, err := uc.GetActive(ctx); err != apperrors.ErrNoActiveSession {
		t.Fatalf("expected no active session after end, got %v", err)
	}

	b, err := os.ReadFile(end.JournalPath)
	if err != nil {
		t.Fatalf("read journal note: %v", err)
	}
	if !strings.Contains(string(b), "duration_minutes: 45") {
		t.Fatalf("journal note missing duration field: %s", b)
	}
}

func TestStartFallsBackToRecordPositionAndRejectsSecondStart(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)}}
	uc, _ := newTestUsecase(t, clk)
	ctx := context.Background()

	if err := uc.SetPosition(ctx, 18, 60); err != nil {
		t.Fatalf("set position: %v", err)
	}
	if _, err := uc.StartSession(ctx, progressdto.StartSessionInput{}); err != nil {
		t.Fatalf("start session: %v", err)
	}
	active, err := uc.GetActive(ctx)
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if active.Surah != 18 || active.Ayah != 60 {
		t.Fatalf("expected position from record, got %d:%d", active.Surah, active.Ayah)
	}
	if _, err := uc.StartSession(ctx, progressdto.StartSessionInput{Surah: 1, Ayah: 1}); err != apperrors.ErrActiveSessionExists {
		t.Fatalf("expected active session exists error, got %v", err)
	}
}

func TestZeroMinuteSessionIsNotRecorded(t *testing.T) {
	t.Parallel()
	started := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	restarted := started.Add(10 * time.Minute)
	clk := &fakeClock{values: []time.Time{
		started,
		started.Add(20 * time.Second),
		started.Add(20 * time.Second),
		restarted,
		restarted.Add(45 * time.Second),
		restarted.Add(45 * time.Second),
	}}
	uc, _ := newTestUsecase(t, clk)
	ctx := context.Background()

	if _, err := uc.StartSession(ctx, progressdto.StartSessionInput{Surah: 1, Ayah: 1}); err != nil {
		t.Fatalf("start session: %v", err)
	}
	end, err := uc.EndSession(ctx, progressdto.EndSessionInput{VersesRead: 3})
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if end.Recorded {
		t.Fatal("20s session must be dropped")
	}
	sessions, _ := uc.Sessions(ctx)
	if len(sessions) != 0 {
		t.Fatalf("log must stay empty, got %+v", sessions)
	}
	record, _ := uc.Record(ctx)
	if record.TotalReadingMin != 0 {
		t.Fatalf("totals must be untouched, got %d", record.TotalReadingMin)
	}

	// 45s rounds to the nearest minute and counts as real reading.
	if _, err := uc.StartSession(ctx, progressdto.StartSessionInput{Surah: 1, Ayah: 1}); err != nil {
		t.Fatalf("restart session: %v", err)
	}
	end, err = uc.EndSession(ctx, progressdto.EndSessionInput{VersesRead: 2})
	if err != nil {
		t.Fatalf("end 45s session: %v", err)
	}
	if !end.Recorded || end.DurationMin != 1 {
		t.Fatalf("45s session must record one minute, got recorded=%t duration=%d", end.Recorded, end.DurationMin)
	}
	sessions, _ = uc.Sessions(ctx)
	if len(sessions) != 1 || sessions[0].DurationMin != 1 {
		t.Fatalf("expected one 1-minute session, got %+v", sessions)
	}
	record, _ = uc.Record(ctx)
	if record.TotalReadingMin != 1 {
		t.Fatalf("expected one minute total, got %d", record.TotalReadingMin)
	}
}

func TestEndFailsWithoutActiveAndOnMismatchedID(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 10, 5, 0, 0, time.UTC),
	}}
	uc, _ := newTestUsecase(t, clk)
	ctx := context.Background()

	if _, err := uc.EndSession(ctx, progressdto.EndSessionInput{VersesRead: 1}); err != apperrors.ErrNoActiveSession {
		t.Fatalf("expected no active session error, got %v", err)
	}
	if _, err := uc.StartSession(ctx, progressdto.StartSessionInput{Surah: 1, Ayah: 1}); err != nil {
		t.Fatalf("start session: %v", err)
	}
	if _, err := uc.EndSession(ctx, progressdto.EndSessionInput{SessionID: "other", VersesRead: 1}); err == nil {
		t.Fatal("mismatched session id must fail")
	}
	if _, err := uc.EndSession(ctx, progressdto.EndSessionInput{VersesRead: -1}); err != apperrors.ErrInvalidInput {
		t.Fatalf("negative verse count must be rejected, got %v", err)
	}
}

func TestBookmarkAndCompletionOperations(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)}}
	uc, _ := newTestUsecase(t, clk)
	ctx := context.Background()

	if err := uc.AddBookmark(ctx, 0); err != apperrors.ErrInvalidInput {
		t.Fatalf("zero verse id must be rejected, got %v", err)
	}
	if err := uc.AddBookmark(ctx, 262); err != nil {
		t.Fatalf("add bookmark: %v", err)
	}
	if err := uc.AddBookmark(ctx, 262); err != nil {
		t.Fatalf("repeated add must succeed: %v", err)
	}
	record, _ := uc.Record(ctx)
	if len(record.Bookmarks) != 1 {
		t.Fatalf("repeated add must not duplicate, got %v", record.Bookmarks)
	}

	on, err := uc.ToggleBookmark(ctx, 262)
	if err != nil || on {
		t.Fatalf("toggle on an existing bookmark must remove it, got on=%v err=%v", on, err)
	}
	on, err = uc.ToggleBookmark(ctx, 262)
	if err != nil || !on {
		t.Fatalf("second toggle must restore it, got on=%v err=%v", on, err)
	}
	record, _ = uc.Record(ctx)
	if len(record.Bookmarks) != 1 || record.Bookmarks[0] != 262 {
		t.Fatalf("double toggle must restore membership, got %v", record.Bookmarks)
	}

	if err := uc.MarkSurahCompleted(ctx, -1); err != apperrors.ErrInvalidInput {
		t.Fatalf("negative surah must be rejected, got %v", err)
	}
	if err := uc.MarkSurahCompleted(ctx, 114); err != nil {
		t.Fatalf("mark completed: %v", err)
	}
	if err := uc.MarkSurahCompleted(ctx, 114); err != nil {
		t.Fatalf("repeated completion must succeed: %v", err)
	}
	record, _ = uc.Record(ctx)
	if len(record.CompletedSurahs) != 1 {
		t.Fatalf("completion must be idempotent, got %v", record.CompletedSurahs)
	}
}

func TestOverviewComputesGoalPercentAndStreak(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{
		day, day.Add(10 * time.Minute), // first session, 10 minutes
		day.Add(time.Hour), day.Add(time.Hour),
	}}
	uc, _ := newTestUsecase(t, clk)
	ctx := context.Background()

	if _, err := uc.StartSession(ctx, progressdto.StartSessionInput{Surah: 1, Ayah: 1}); err != nil {
		t.Fatalf("start session: %v", err)
	}
	if _, err := uc.EndSession(ctx, progressdto.EndSessionInput{VersesRead: 7}); err != nil {
		t.Fatalf("end session: %v", err)
	}

	overview, err := uc.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TodayMinutes != 10 {
		t.Fatalf("expected 10 minutes today, got %d", overview.TodayMinutes)
	}
	if overview.GoalPercent != 67 {
		t.Fatalf("10 of 15 minutes must round to 67%%, got %d", overview.GoalPercent)
	}
	if overview.CurrentStreak != 1 {
		t.Fatalf("expected streak 1, got %d", overview.CurrentStreak)
	}
}

func TestWeeklyStatsAndClearAll(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{
		day, day.Add(10 * time.Minute),
		day.Add(time.Hour), day.Add(time.Hour + 20*time.Minute),
		day.Add(2 * time.Hour),
	}}
	uc, store := newTestUsecase(t, clk)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := uc.StartSession(ctx, progressdto.StartSessionInput{Surah: 1, Ayah: 1}); err != nil {
			t.Fatalf("start session %d: %v", i, err)
		}
		if _, err := uc.EndSession(ctx, progressdto.EndSessionInput{VersesRead: 5}); err != nil {
			t.Fatalf("end session %d: %v", i, err)
		}
	}

	stats, err := uc.WeeklyStats(ctx)
	if err != nil {
		t.Fatalf("weekly stats: %v", err)
	}
	if stats.TotalMinutes != 30 || stats.DaysActive != 1 {
		t.Fatalf("two sessions on one day must report 30 minutes over 1 active day, got %+v", stats)
	}

	if err := uc.ClearAll(ctx); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if _, found, _ := store.Get(ctx, kv.KeyProgressRecord); found {
		t.Fatal("clear must wipe the record document")
	}
	record, _ := uc.Record(ctx)
	if record.TotalReadingMin != 0 || record.CurrentSurah != 1 {
		t.Fatalf("record must read as defaults after clear, got %+v", record)
	}
	sessions, _ := uc.Sessions(ctx)
	if len(sessions) != 0 {
		t.Fatal("session log must be empty after clear")
	}
}
