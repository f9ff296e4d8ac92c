package usecase

import (
	"context"
	"fmt"
	"math"

	hclog "github.com/hashicorp/go-hclog"

	"wird/internal/modules/progress/domain"
	progressdto "wird/internal/modules/progress/dto"
	progressin "wird/internal/modules/progress/port/in"
	progressout "wird/internal/modules/progress/port/out"
	"wird/internal/modules/progress/service"
	"wird/internal/platform/clock"
	apperrors "wird/internal/platform/errors"
	"wird/internal/platform/id"
)

type Interactor struct {
	clock       clock.Clock
	idGen       id.Generator
	records     *service.RecordService
	log         *service.LogService
	activeStore progressout.ActiveSessionStore
	journal     progressout.JournalStore
	wiper       progressout.DataWiper
	logger      hclog.Logger
}

func NewInteractor(
	clk clock.Clock,
	idGen id.Generator,
	records *service.RecordService,
	log *service.LogService,
	activeStore progressout.ActiveSessionStore,
	journal progressout.JournalStore,
	wiper progressout.DataWiper,
	logger hclog.Logger,
) progressin.Usecase {
	return &Interactor{
		clock:       clk,
		idGen:       idGen,
		records:     records,
		log:         log,
		activeStore: activeStore,
		journal:     journal,
		wiper:       wiper,
		logger:      logger,
	}
}

func (i *Interactor) StartSession(ctx context.Context, input progressdto.StartSessionInput) (progressdto.StartSessionOutput, error) {
	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return progressdto.StartSessionOutput{}, apperrors.ErrActiveSessionExists
	}
	if err != apperrors.ErrNoActiveSession {
		return progressdto.StartSessionOutput{}, err
	}

	surah, ayah := input.Surah, input.Ayah
	if surah <= 0 || ayah <= 0 {
		record := i.records.Load(ctx)
		surah, ayah = record.CurrentSurah, record.CurrentAyah
	}
	active := domain.ActiveSession{
		SessionID: i.idGen.New(),
		Surah:     surah,
		Ayah:      ayah,
		StartedAt: i.clock.Now(),
	}
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return progressdto.StartSessionOutput{}, err
	}
	return progressdto.StartSessionOutput{SessionID: active.SessionID, StartedAt: active.StartedAt}, nil
}

func (i *Interactor) EndSession(ctx context.Context, input progressdto.EndSessionInput) (progressdto.EndSessionOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return progressdto.EndSessionOutput{}, err
	}
	if input.SessionID != "" && input.SessionID != active.SessionID {
		return progressdto.EndSessionOutput{}, fmt.Errorf("session id mismatch")
	}
	if input.VersesRead < 0 {
		return progressdto.EndSessionOutput{}, apperrors.ErrInvalidInput
	}

	endedAt := i.clock.Now()
	// Nearest minute, so a 45s session still counts as one minute of reading.
	duration := int(math.Round(endedAt.Sub(active.StartedAt).Minutes()))
	session := domain.Session{
		Date:        endedAt,
		DurationMin: duration,
		VersesRead:  input.VersesRead,
		SurahsRead:  input.SurahsRead,
	}

	out := progressdto.EndSessionOutput{SessionID: active.SessionID, DurationMin: duration}
	if i.log.Append(ctx, session) {
		out.Recorded = true
		record := i.records.Load(ctx)
		total := record.TotalReadingMin + duration
		lastRead := endedAt.Format("2006-01-02T15:04:05Z07:00")
		i.records.Merge(ctx, domain.Patch{TotalReadingMin: &total, LastReadDate: &lastRead})
		if i.journal != nil {
			path, err := i.journal.Save(ctx, session)
			if err != nil {
				i.logger.Warn("write session journal note failed", "error", err)
			} else {
				out.JournalPath = path
			}
		}
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return progressdto.EndSessionOutput{}, err
	}
	return out, nil
}

func (i *Interactor) GetActive(ctx context.Context) (progressdto.ActiveSessionOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return progressdto.ActiveSessionOutput{}, err
	}
	return progressdto.ActiveSessionOutput{
		SessionID: active.SessionID,
		Surah:     active.Surah,
		Ayah:      active.Ayah,
		StartedAt: active.StartedAt,
	}, nil
}

func (i *Interactor) Record(ctx context.Context) (progressdto.RecordOutput, error) {
	return toRecordOutput(i.records.Load(ctx)), nil
}

func (i *Interactor) SetPosition(ctx context.Context, surah, ayah int) error {
	if surah <= 0 || ayah <= 0 {
		return apperrors.ErrInvalidInput
	}
	i.records.Merge(ctx, domain.Patch{CurrentSurah: &surah, CurrentAyah: &ayah})
	return nil
}

func (i *Interactor) SetDailyGoal(ctx context.Context, minutes int) error {
	if minutes <= 0 {
		return apperrors.ErrInvalidInput
	}
	i.records.Merge(ctx, domain.Patch{DailyGoalMin: &minutes})
	return nil
}

func (i *Interactor) AddBookmark(ctx context.Context, verseID int) error {
	return i.records.AddBookmark(ctx, verseID)
}

func (i *Interactor) RemoveBookmark(ctx context.Context, verseID int) error {
	return i.records.RemoveBookmark(ctx, verseID)
}

func (i *Interactor) ToggleBookmark(ctx context.Context, verseID int) (bool, error) {
	return i.records.ToggleBookmark(ctx, verseID)
}

func (i *Interactor) MarkSurahCompleted(ctx context.Context, number int) error {
	return i.records.MarkSurahCompleted(ctx, number)
}

func (i *Interactor) Sessions(ctx context.Context) ([]progressdto.SessionOutput, error) {
	log := i.log.List(ctx)
	out := make([]progressdto.SessionOutput, 0, len(log))
	for _, s := range log {
		out = append(out, progressdto.SessionOutput{
			Date:        s.Date,
			DurationMin: s.DurationMin,
			VersesRead:  s.VersesRead,
			SurahsRead:  s.SurahsRead,
		})
	}
	return out, nil
}

func (i *Interactor) Overview(ctx context.Context) (progressdto.OverviewOutput, error) {
	record := i.records.Load(ctx)
	today := i.log.TodayReadingMin(ctx)
	return progressdto.OverviewOutput{
		TodayMinutes:    today,
		CurrentStreak:   i.log.CurrentStreak(ctx),
		GoalPercent:     domain.GoalProgressPercent(today, record.DailyGoalMin),
		DailyGoalMin:    record.DailyGoalMin,
		TotalReadingMin: record.TotalReadingMin,
	}, nil
}

func (i *Interactor) WeeklyStats(ctx context.Context) (progressdto.StatsOutput, error) {
	return toStatsOutput(i.log.StatsSince(ctx, 7)), nil
}

func (i *Interactor) MonthlyStats(ctx context.Context) (progressdto.StatsOutput, error) {
	return toStatsOutput(i.log.StatsSince(ctx, 30)), nil
}

func (i *Interactor) ClearAll(ctx context.Context) error {
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return err
	}
	if i.wiper == nil {
		return nil
	}
	return i.wiper.Wipe(ctx)
}

func toRecordOutput(r domain.Record) progressdto.RecordOutput {
	return progressdto.RecordOutput{
		CurrentSurah:    r.CurrentSurah,
		CurrentAyah:     r.CurrentAyah,
		TotalReadingMin: r.TotalReadingMin,
		DailyGoalMin:    r.DailyGoalMin,
		LastReadDate:    r.LastReadDate,
		Bookmarks:       r.Bookmarks,
		CompletedSurahs: r.CompletedSurahs,
	}
}

func toStatsOutput(s domain.PeriodStats) progressdto.StatsOutput {
	return progressdto.StatsOutput{
		TotalMinutes: s.TotalMinutes,
		TotalVerses:  s.TotalVerses,
		DaysActive:   s.DaysActive,
		AverageDaily: s.AverageDaily,
	}
}
