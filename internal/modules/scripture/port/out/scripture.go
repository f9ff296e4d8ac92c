package out

import (
	"context"

	"wird/internal/modules/scripture/domain"
)

// VerseSource fetches scripture from an upstream provider (remote API or an
// installed translation plugin).
type VerseSource interface {
	ListSurahs(ctx context.Context) ([]domain.Surah, error)
	FetchSurah(ctx context.Context, number int, edition string) ([]domain.Verse, error)
}

// VerseSearcher is implemented by sources that can search full text.
type VerseSearcher interface {
	Search(ctx context.Context, query, edition string) ([]domain.Verse, error)
}

// Cache is the read-through projection of fetched scripture.
type Cache interface {
	Surahs(ctx context.Context) ([]domain.Surah, bool, error)
	PutSurahs(ctx context.Context, surahs []domain.Surah) error
	Verses(ctx context.Context, number int, edition string) ([]domain.Verse, bool, error)
	PutVerses(ctx context.Context, number int, edition string, verses []domain.Verse) error
}
