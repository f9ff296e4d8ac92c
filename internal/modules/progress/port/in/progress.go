package in

import (
	"context"

	"wird/internal/modules/progress/dto"
)

type Usecase interface {
	StartSession(ctx context.Context, input dto.StartSessionInput) (dto.StartSessionOutput, error)
	EndSession(ctx context.Context, input dto.EndSessionInput) (dto.EndSessionOutput, error)
	GetActive(ctx context.Context) (dto.ActiveSessionOutput, error)

	Record(ctx context.Context) (dto.RecordOutput, error)
	SetPosition(ctx context.Context, surah, ayah int) error
	SetDailyGoal(ctx context.Context, minutes int) error

	AddBookmark(ctx context.Context, verseID int) error
	RemoveBookmark(ctx context.Context, verseID int) error
	ToggleBookmark(ctx context.Context, verseID int) (bool, error)
	MarkSurahCompleted(ctx context.Context, number int) error

	Sessions(ctx context.Context) ([]dto.SessionOutput, error)
	Overview(ctx context.Context) (dto.OverviewOutput, error)
	WeeklyStats(ctx context.Context) (dto.StatsOutput, error)
	MonthlyStats(ctx context.Context) (dto.StatsOutput, error)

	ClearAll(ctx context.Context) error
}
