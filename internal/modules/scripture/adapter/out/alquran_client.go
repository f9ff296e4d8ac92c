package out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wird/internal/modules/scripture/domain"
)

const defaultAlQuranBaseURL = "https://api.alquran.cloud/v1"

// AlQuranClient talks to the alquran.cloud REST API.
type AlQuranClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAlQuranClient(baseURL string) *AlQuranClient {
	if baseURL == "" {
		baseURL = defaultAlQuranBaseURL
	}
	return &AlQuranClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type surahListResponse struct {
	Data []struct {
		Number             int    `json:"number"`
		Name               string `json:"name"`
		EnglishName        string `json:"englishName"`
		EnglishTranslation string `json:"englishNameTranslation"`
		NumberOfAyahs      int    `json:"numberOfAyahs"`
		RevelationType     string `json:"revelationType"`
	} `json:"data"`
}

type surahEditionResponse struct {
	Data struct {
		Ayahs []struct {
			Number        int    `json:"number"`
			Text          string `json:"text"`
			NumberInSurah int    `json:"numberInSurah"`
		} `json:"ayahs"`
	} `json:"data"`
}

type searchResponse struct {
	Data struct {
		Matches []struct {
			Number        int    `json:"number"`
			Text          string `json:"text"`
			NumberInSurah int    `json:"numberInSurah"`
			Surah         struct {
				Number int `json:"number"`
			} `json:"surah"`
		} `json:"matches"`
	} `json:"data"`
}

func (c *AlQuranClient) ListSurahs(ctx context.Context) ([]domain.Surah, error) {
	var resp surahListResponse
	if err := c.get(ctx, "/surah", &resp); err != nil {
		return nil, err
	}
	surahs := make([]domain.Surah, 0, len(resp.Data))
	for _, s := range resp.Data {
		surahs = append(surahs, domain.Surah{
			Number:             s.Number,
			Name:               s.Name,
			EnglishName:        s.EnglishName,
			EnglishTranslation: s.EnglishTranslation,
			AyahCount:          s.NumberOfAyahs,
			RevelationType:     domain.RevelationType(s.RevelationType),
		})
	}
	return surahs, nil
}

// FetchSurah retrieves the arabic text and the requested translation edition
// and pairs them ayah by ayah.
func (c *AlQuranClient) FetchSurah(ctx context.Context, number int, edition string) ([]domain.Verse, error) {
	if edition == "" {
		edition = domain.DefaultTranslationEdition
	}
	var arabic surahEditionResponse
	if err := c.get(ctx, fmt.Sprintf("/surah/%d/%s", number, domain.DefaultArabicEdition), &arabic); err != nil {
		return nil, err
	}
	var translation surahEditionResponse
	if err := c.get(ctx, fmt.Sprintf("/surah/%d/%s", number, edition), &translation); err != nil {
		return nil, err
	}

	verses := make([]domain.Verse, 0, len(arabic.Data.Ayahs))
	for i, ayah := range arabic.Data.Ayahs {
		verse := domain.Verse{
			ID:       ayah.Number,
			Surah:    number,
			Ayah:     ayah.NumberInSurah,
			Arabic:   ayah.Text,
			AudioURL: domain.AudioURL(domain.DefaultArabicEdition, ayah.Number),
		}
		if i < len(translation.Data.Ayahs) {
			verse.Translation = translation.Data.Ayahs[i].Text
		}
		verses = append(verses, verse)
	}
	return verses, nil
}

func (c *AlQuranClient) Search(ctx context.Context, query, edition string) ([]domain.Verse, error) {
	if edition == "" {
		edition = domain.DefaultTranslationEdition
	}
	var resp searchResponse
	path := fmt.Sprintf("/search/%s/all/%s", url.PathEscape(query), edition)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	verses := make([]domain.Verse, 0, len(resp.Data.Matches))
	for _, m := range resp.Data.Matches {
		verses = append(verses, domain.Verse{
			ID:          m.Number,
			Surah:       m.Surah.Number,
			Ayah:        m.NumberInSurah,
			Translation: m.Text,
		})
	}
	return verses, nil
}

func (c *AlQuranClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("alquran request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("alquran request: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("alquran response: %w", err)
	}
	return nil
}
