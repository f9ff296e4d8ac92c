package out

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	plugindto "wird/internal/modules/plugin/dto"
	pluginin "wird/internal/modules/plugin/port/in"
	"wird/internal/modules/scripture/domain"
	scriptureout "wird/internal/modules/scripture/port/out"
)

// PluginSource layers plugin-served translation editions over an inner verse
// source. Editions no installed plugin claims fall through to the inner
// source unchanged.
type PluginSource struct {
	inner   scriptureout.VerseSource
	plugins pluginin.Usecase
	logger  hclog.Logger
}

func NewPluginSource(inner scriptureout.VerseSource, plugins pluginin.Usecase, logger hclog.Logger) *PluginSource {
	return &PluginSource{inner: inner, plugins: plugins, logger: logger}
}

func (s *PluginSource) ListSurahs(ctx context.Context) ([]domain.Surah, error) {
	return s.inner.ListSurahs(ctx)
}

func (s *PluginSource) FetchSurah(ctx context.Context, number int, edition string) ([]domain.Verse, error) {
	pluginName, ok := s.pluginForEdition(ctx, edition)
	if !ok {
		return s.inner.FetchSurah(ctx, number, edition)
	}
	verses, err := s.plugins.FetchSurah(ctx, plugindto.FetchSurahInput{
		PluginName: pluginName,
		Surah:      number,
		Edition:    edition,
	})
	if err != nil {
		s.logger.Warn("plugin surah fetch failed, falling back to inner source",
			"plugin", pluginName, "edition", edition, "surah", number, "error", err)
		return s.inner.FetchSurah(ctx, number, edition)
	}
	mapped := make([]domain.Verse, 0, len(verses))
	for _, verse := range verses {
		mapped = append(mapped, domain.Verse{
			ID:          verse.ID,
			Surah:       verse.Surah,
			Ayah:        verse.Ayah,
			Arabic:      verse.Arabic,
			Translation: verse.Translation,
			AudioURL:    domain.AudioURL(domain.DefaultArabicEdition, verse.ID),
		})
	}
	return mapped, nil
}

func (s *PluginSource) Search(ctx context.Context, query, edition string) ([]domain.Verse, error) {
	if searcher, ok := s.inner.(scriptureout.VerseSearcher); ok {
		return searcher.Search(ctx, query, edition)
	}
	return []domain.Verse{}, nil
}

func (s *PluginSource) pluginForEdition(ctx context.Context, edition string) (string, bool) {
	if edition == "" {
		return "", false
	}
	infos, err := s.plugins.List(ctx)
	if err != nil {
		s.logger.Warn("list plugins failed", "error", err)
		return "", false
	}
	for _, info := range infos {
		if !info.Enabled {
			continue
		}
		editions, err := s.plugins.ListEditions(ctx, info.Name)
		if err != nil {
			continue
		}
		for _, ed := range editions {
			if ed.ID == edition {
				return info.Name, true
			}
		}
	}
	return "", false
}
