package in

import (
	"context"

	"wird/internal/modules/scripture/dto"
)

type Usecase interface {
	ListSurahs(ctx context.Context) ([]dto.SurahOutput, error)
	GetSurah(ctx context.Context, input dto.GetSurahInput) ([]dto.VerseOutput, error)
	GetVerse(ctx context.Context, surah, ayah int, edition string) (dto.VerseOutput, error)
	Search(ctx context.Context, input dto.SearchInput) ([]dto.VerseOutput, error)
	ListReciters(ctx context.Context) ([]dto.ReciterOutput, error)
}
