package service_test

import (
	"context"
	"errors"
	"testing"

	hclog "github.com/hashicorp/go-hclog"

	"wird/internal/modules/scripture/domain"
	"wird/internal/modules/scripture/service"
)

type fakeSource struct {
	surahs    []domain.Surah
	verses    map[int][]domain.Verse
	fail      bool
	fetchHits int
}

func (f *fakeSource) ListSurahs(context.Context) ([]domain.Surah, error) {
	if f.fail {
		return nil, errors.New("network down")
	}
	return f.surahs, nil
}

func (f *fakeSource) FetchSurah(_ context.Context, number int, _ string) ([]domain.Verse, error) {
	if f.fail {
		return nil, errors.New("network down")
	}
	f.fetchHits++
	return f.verses[number], nil
}

type memoryCache struct {
	surahs []domain.Surah
	verses map[string][]domain.Verse
}

func newMemoryCache() *memoryCache {
	return &memoryCache{verses: map[string][]domain.Verse{}}
}

func (c *memoryCache) Surahs(context.Context) ([]domain.Surah, bool, error) {
	return c.surahs, len(c.surahs) > 0, nil
}

func (c *memoryCache) PutSurahs(_ context.Context, surahs []domain.Surah) error {
	c.surahs = surahs
	return nil
}

func (c *memoryCache) Verses(_ context.Context, number int, edition string) ([]domain.Verse, bool, error) {
	key := edition + "/" + string(rune('0'+number))
	verses, ok := c.verses[key]
	return verses, ok, nil
}

func (c *memoryCache) PutVerses(_ context.Context, number int, edition string, verses []domain.Verse) error {
	c.verses[edition+"/"+string(rune('0'+number))] = verses
	return nil
}

func TestGetSurahProjectsIntoCacheAndServesCacheFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	source := &fakeSource{verses: map[int][]domain.Verse{
		1: {{ID: 1, Surah: 1, Ayah: 1, Arabic: "a", Translation: "t"}},
	}}
	svc := service.NewCatalogService(source, newMemoryCache(), hclog.NewNullLogger())

	if got := svc.GetSurah(ctx, 1, "en.asad"); len(got) != 1 {
		t.Fatalf("expected 1 verse from source, got %d", len(got))
	}
	if got := svc.GetSurah(ctx, 1, "en.asad"); len(got) != 1 {
		t.Fatalf("expected 1 verse from cache, got %d", len(got))
	}
	if source.fetchHits != 1 {
		t.Fatalf("second read must hit the cache, source saw %d fetches", source.fetchHits)
	}
}

func TestCatalogFallsBackWhenSourceFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := service.NewCatalogService(&fakeSource{fail: true}, newMemoryCache(), hclog.NewNullLogger())

	surahs := svc.ListSurahs(ctx)
	if len(surahs) == 0 || surahs[0].EnglishName != "Al-Fatiha" {
		t.Fatalf("expected fallback catalog, got %+v", surahs)
	}
	verses := svc.GetSurah(ctx, 1, "en.asad")
	if len(verses) != 1 || verses[0].Ayah != 1 {
		t.Fatalf("expected fallback verses for surah 1, got %+v", verses)
	}
	if got := svc.GetSurah(ctx, 99, "en.asad"); len(got) != 0 {
		t.Fatalf("surahs without fallback data must read empty, got %+v", got)
	}
}

func TestSearchDegradesWhenSourceCannotSearch(t *testing.T) {
	t.Parallel()
	svc := service.NewCatalogService(&fakeSource{}, newMemoryCache(), hclog.NewNullLogger())
	if got := svc.Search(context.Background(), "mercy", "en.asad"); len(got) != 0 {
		t.Fatalf("non-searching source must yield empty results, got %+v", got)
	}
}
