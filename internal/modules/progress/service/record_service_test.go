package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	progressout "wird/internal/modules/progress/adapter/out"
	"wird/internal/modules/progress/domain"
	"wird/internal/modules/progress/service"
	"wird/internal/platform/kv"
)

type failingRecordStore struct {
	loadErr error
	saveErr error
	record  domain.Record
}

func (s *failingRecordStore) Load(context.Context) (domain.Record, error) {
	if s.loadErr != nil {
		return domain.Record{}, s.loadErr
	}
	return s.record, nil
}

func (s *failingRecordStore) Save(_ context.Context, record domain.Record) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.record = record
	return nil
}

func TestLoadFallsBackToDefaultsWhenStoreFails(t *testing.T) {
	t.Parallel()
	store := &failingRecordStore{loadErr: errors.New("disk gone")}
	svc := service.NewRecordService(store, hclog.NewNullLogger())
	record := svc.Load(context.Background())
	if record.CurrentSurah != 1 || record.DailyGoalMin != domain.DefaultDailyGoalMin {
		t.Fatalf("expected defaults on load failure, got %+v", record)
	}
}

func TestLoadPrefersLastKnownValueAfterStoreFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	stored := domain.DefaultRecord()
	stored.TotalReadingMin = 90
	store := &failingRecordStore{record: stored}
	svc := service.NewRecordService(store, hclog.NewNullLogger())

	if got := svc.Load(ctx); got.TotalReadingMin != 90 {
		t.Fatalf("expected stored record, got %+v", got)
	}
	store.loadErr = errors.New("disk gone")
	if got := svc.Load(ctx); got.TotalReadingMin != 90 {
		t.Fatalf("expected last known value after failure, got %+v", got)
	}
}

func TestMergeReturnsMergedValueEvenWhenPersistFails(t *testing.T) {
	t.Parallel()
	store := &failingRecordStore{record: domain.DefaultRecord(), saveErr: errors.New("readonly")}
	svc := service.NewRecordService(store, hclog.NewNullLogger())
	goal := 45
	merged := svc.Merge(context.Background(), domain.Patch{DailyGoalMin: &goal})
	if merged.DailyGoalMin != 45 {
		t.Fatalf("merge must succeed in memory despite persist failure, got %+v", merged)
	}
}

func TestMergeRoundTripsThroughKVStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	logger := hclog.NewNullLogger()
	svc := service.NewRecordService(progressout.NewKVRecordStore(store), logger)

	surah, ayah, total := 36, 12, 75
	svc.Merge(ctx, domain.Patch{CurrentSurah: &surah, CurrentAyah: &ayah, TotalReadingMin: &total})

	fresh := service.NewRecordService(progressout.NewKVRecordStore(store), logger)
	record := fresh.Load(ctx)
	if record.CurrentSurah != 36 || record.CurrentAyah != 12 || record.TotalReadingMin != 75 {
		t.Fatalf("merged record must survive a reload, got %+v", record)
	}
	if record.DailyGoalMin != domain.DefaultDailyGoalMin {
		t.Fatalf("unmerged fields must keep defaults, got %+v", record)
	}
}

func TestCorruptRecordDocumentReadsAsDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	if err := store.Set(ctx, kv.KeyProgressRecord, []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt document: %v", err)
	}
	svc := service.NewRecordService(progressout.NewKVRecordStore(store), hclog.NewNullLogger())
	record := svc.Load(ctx)
	if record.CurrentSurah != 1 || record.DailyGoalMin != domain.DefaultDailyGoalMin {
		t.Fatalf("corrupt document must read as defaults, got %+v", record)
	}
}

type failingLogStore struct {
	sessions []domain.Session
	loadErr  error
}

func (s *failingLogStore) Load(context.Context) ([]domain.Session, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.sessions, nil
}

func (s *failingLogStore) Save(_ context.Context, sessions []domain.Session) error {
	s.sessions = sessions
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestLogListDegradesToEmptyOnStoreFailure(t *testing.T) {
	t.Parallel()
	clk := fixedClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	svc := service.NewLogService(clk, &failingLogStore{loadErr: errors.New("disk gone")}, hclog.NewNullLogger())
	if got := svc.List(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty log on failure, got %+v", got)
	}
	if got := svc.CurrentStreak(context.Background()); got != 0 {
		t.Fatalf("streak over an unavailable log must be 0, got %d", got)
	}
}

func TestLogAppendPrunesOldSessionsOnWrite(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store := &failingLogStore{sessions: []domain.Session{
		{Date: now.AddDate(0, 0, -40), DurationMin: 10},
		{Date: now.AddDate(0, 0, -3), DurationMin: 20},
	}}
	svc := service.NewLogService(fixedClock{now: now}, store, hclog.NewNullLogger())
	if !svc.Append(context.Background(), domain.Session{Date: now, DurationMin: 15}) {
		t.Fatal("valid session must be recorded")
	}
	if len(store.sessions) != 2 {
		t.Fatalf("append must prune expired sessions, got %+v", store.sessions)
	}
	if svc.Append(context.Background(), domain.Session{Date: now, DurationMin: 0}) {
		t.Fatal("zero duration session must be dropped")
	}
}
