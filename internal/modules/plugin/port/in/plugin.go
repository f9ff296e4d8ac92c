package in

import (
	"context"

	"wird/internal/modules/plugin/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PluginInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	ListEditions(ctx context.Context, pluginName string) ([]dto.EditionInfo, error)
	FetchSurah(ctx context.Context, input dto.FetchSurahInput) ([]dto.VerseOutput, error)
}
