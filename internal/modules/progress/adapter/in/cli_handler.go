package in

import (
	"context"

	progressdto "wird/internal/modules/progress/dto"
	progressin "wird/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) StartSession(ctx context.Context, surah, ayah int) (progressdto.StartSessionOutput, error) {
	return h.usecase.StartSession(ctx, progressdto.StartSessionInput{Surah: surah, Ayah: ayah})
}

func (h CLIHandler) EndSession(ctx context.Context, sessionID string, versesRead int, surahsRead []int) (progressdto.EndSessionOutput, error) {
	return h.usecase.EndSession(ctx, progressdto.EndSessionInput{SessionID: sessionID, VersesRead: versesRead, SurahsRead: surahsRead})
}

func (h CLIHandler) GetActive(ctx context.Context) (progressdto.ActiveSessionOutput, error) {
	return h.usecase.GetActive(ctx)
}

func (h CLIHandler) Record(ctx context.Context) (progressdto.RecordOutput, error) {
	return h.usecase.Record(ctx)
}

func (h CLIHandler) SetPosition(ctx context.Context, surah, ayah int) error {
	return h.usecase.SetPosition(ctx, surah, ayah)
}

func (h CLIHandler) SetDailyGoal(ctx context.Context, minutes int) error {
	return h.usecase.SetDailyGoal(ctx, minutes)
}

func (h CLIHandler) AddBookmark(ctx context.Context, verseID int) error {
	return h.usecase.AddBookmark(ctx, verseID)
}

func (h CLIHandler) RemoveBookmark(ctx context.Context, verseID int) error {
	return h.usecase.RemoveBookmark(ctx, verseID)
}

func (h CLIHandler) ToggleBookmark(ctx context.Context, verseID int) (bool, error) {
	return h.usecase.ToggleBookmark(ctx, verseID)
}

func (h CLIHandler) MarkSurahCompleted(ctx context.Context, number int) error {
	return h.usecase.MarkSurahCompleted(ctx, number)
}

func (h CLIHandler) Sessions(ctx context.Context) ([]progressdto.SessionOutput, error) {
	return h.usecase.Sessions(ctx)
}

func (h CLIHandler) Overview(ctx context.Context) (progressdto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) WeeklyStats(ctx context.Context) (progressdto.StatsOutput, error) {
	return h.usecase.WeeklyStats(ctx)
}

func (h CLIHandler) MonthlyStats(ctx context.Context) (progressdto.StatsOutput, error) {
	return h.usecase.MonthlyStats(ctx)
}

func (h CLIHandler) ClearAll(ctx context.Context) error {
	return h.usecase.ClearAll(ctx)
}
