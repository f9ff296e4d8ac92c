package usecase

import (
	"context"

	"wird/internal/modules/scripture/domain"
	scripturedto "wird/internal/modules/scripture/dto"
	scripturein "wird/internal/modules/scripture/port/in"
	"wird/internal/modules/scripture/service"
	apperrors "wird/internal/platform/errors"
)

type Interactor struct {
	catalog *service.CatalogService
}

func NewInteractor(catalog *service.CatalogService) scripturein.Usecase {
	return &Interactor{catalog: catalog}
}

func (i *Interactor) ListSurahs(ctx context.Context) ([]scripturedto.SurahOutput, error) {
	surahs := i.catalog.ListSurahs(ctx)
	out := make([]scripturedto.SurahOutput, 0, len(surahs))
	for _, s := range surahs {
		out = append(out, toSurahOutput(s))
	}
	return out, nil
}

func (i *Interactor) GetSurah(ctx context.Context, input scripturedto.GetSurahInput) ([]scripturedto.VerseOutput, error) {
	if input.Number < 1 || input.Number > domain.TotalSurahs {
		return nil, apperrors.ErrInvalidInput
	}
	verses := i.catalog.GetSurah(ctx, input.Number, input.Edition)
	out := make([]scripturedto.VerseOutput, 0, len(verses))
	for _, v := range verses {
		out = append(out, toVerseOutput(v))
	}
	return out, nil
}

func (i *Interactor) GetVerse(ctx context.Context, surah, ayah int, edition string) (scripturedto.VerseOutput, error) {
	if surah < 1 || surah > domain.TotalSurahs || ayah < 1 {
		return scripturedto.VerseOutput{}, apperrors.ErrInvalidInput
	}
	for _, v := range i.catalog.GetSurah(ctx, surah, edition) {
		if v.Ayah == ayah {
			return toVerseOutput(v), nil
		}
	}
	return scripturedto.VerseOutput{}, apperrors.ErrNotFound
}

func (i *Interactor) Search(ctx context.Context, input scripturedto.SearchInput) ([]scripturedto.VerseOutput, error) {
	if input.Query == "" {
		return nil, apperrors.ErrInvalidInput
	}
	verses := i.catalog.Search(ctx, input.Query, input.Edition)
	out := make([]scripturedto.VerseOutput, 0, len(verses))
	for _, v := range verses {
		out = append(out, toVerseOutput(v))
	}
	return out, nil
}

func (i *Interactor) ListReciters(context.Context) ([]scripturedto.ReciterOutput, error) {
	reciters := domain.Reciters()
	out := make([]scripturedto.ReciterOutput, 0, len(reciters))
	for _, r := range reciters {
		out = append(out, scripturedto.ReciterOutput{ID: r.ID, Name: r.Name, Style: r.Style})
	}
	return out, nil
}

func toSurahOutput(s domain.Surah) scripturedto.SurahOutput {
	return scripturedto.SurahOutput{
		Number:             s.Number,
		Name:               s.Name,
		EnglishName:        s.EnglishName,
		EnglishTranslation: s.EnglishTranslation,
		AyahCount:          s.AyahCount,
		RevelationType:     string(s.RevelationType),
	}
}

func toVerseOutput(v domain.Verse) scripturedto.VerseOutput {
	return scripturedto.VerseOutput{
		ID:          v.ID,
		Surah:       v.Surah,
		Ayah:        v.Ayah,
		Arabic:      v.Arabic,
		Translation: v.Translation,
		AudioURL:    v.AudioURL,
	}
}
