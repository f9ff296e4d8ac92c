package in

import (
	"context"

	scripturedto "wird/internal/modules/scripture/dto"
	scripturein "wird/internal/modules/scripture/port/in"
)

type CLIHandler struct {
	usecase scripturein.Usecase
}

func NewCLIHandler(usecase scripturein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListSurahs(ctx context.Context) ([]scripturedto.SurahOutput, error) {
	return h.usecase.ListSurahs(ctx)
}

func (h CLIHandler) GetSurah(ctx context.Context, number int, edition string) ([]scripturedto.VerseOutput, error) {
	return h.usecase.GetSurah(ctx, scripturedto.GetSurahInput{Number: number, Edition: edition})
}

func (h CLIHandler) GetVerse(ctx context.Context, surah, ayah int, edition string) (scripturedto.VerseOutput, error) {
	return h.usecase.GetVerse(ctx, surah, ayah, edition)
}

func (h CLIHandler) Search(ctx context.Context, query, edition string) ([]scripturedto.VerseOutput, error) {
	return h.usecase.Search(ctx, scripturedto.SearchInput{Query: query, Edition: edition})
}

func (h CLIHandler) ListReciters(ctx context.Context) ([]scripturedto.ReciterOutput, error) {
	return h.usecase.ListReciters(ctx)
}
