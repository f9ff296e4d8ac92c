package service

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"wird/internal/modules/scripture/domain"
	scriptureout "wird/internal/modules/scripture/port/out"
)

// CatalogService serves scripture cache-first: cache hit wins, then the
// upstream source (its result is projected into the cache), then the static
// fallbacks. Failures along the way are logged and degraded.
type CatalogService struct {
	source scriptureout.VerseSource
	cache  scriptureout.Cache
	logger hclog.Logger
}

func NewCatalogService(source scriptureout.VerseSource, cache scriptureout.Cache, logger hclog.Logger) *CatalogService {
	return &CatalogService{source: source, cache: cache, logger: logger}
}

func (s *CatalogService) ListSurahs(ctx context.Context) []domain.Surah {
	if s.cache != nil {
		surahs, found, err := s.cache.Surahs(ctx)
		if err != nil {
			s.logger.Warn("read surah cache failed", "error", err)
		} else if found {
			return surahs
		}
	}
	surahs, err := s.source.ListSurahs(ctx)
	if err != nil {
		s.logger.Warn("fetch surah catalog failed, using fallback", "error", err)
		return domain.FallbackSurahs()
	}
	if s.cache != nil {
		if err := s.cache.PutSurahs(ctx, surahs); err != nil {
			s.logger.Warn("project surah catalog failed", "error", err)
		}
	}
	return surahs
}

func (s *CatalogService) GetSurah(ctx context.Context, number int, edition string) []domain.Verse {
	if edition == "" {
		edition = domain.DefaultTranslationEdition
	}
	if s.cache != nil {
		verses, found, err := s.cache.Verses(ctx, number, edition)
		if err != nil {
			s.logger.Warn("read verse cache failed", "error", err, "surah", number)
		} else if found {
			return verses
		}
	}
	verses, err := s.source.FetchSurah(ctx, number, edition)
	if err != nil {
		s.logger.Warn("fetch surah failed, using fallback", "error", err, "surah", number)
		return domain.FallbackVerses(number)
	}
	if s.cache != nil {
		if err := s.cache.PutVerses(ctx, number, edition, verses); err != nil {
			s.logger.Warn("project verses failed", "error", err, "surah", number)
		}
	}
	return verses
}

func (s *CatalogService) Search(ctx context.Context, query, edition string) []domain.Verse {
	searcher, ok := s.source.(scriptureout.VerseSearcher)
	if !ok {
		return []domain.Verse{}
	}
	verses, err := searcher.Search(ctx, query, edition)
	if err != nil {
		s.logger.Warn("verse search failed", "error", err, "query", query)
		return []domain.Verse{}
	}
	return verses
}
