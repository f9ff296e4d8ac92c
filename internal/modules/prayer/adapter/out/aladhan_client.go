package out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"wird/internal/modules/prayer/domain"
)

const defaultAladhanBaseURL = "https://api.aladhan.com/v1"

// calculationMethod 2 is ISNA, matching the defaults most readers expect.
const calculationMethod = 2

// AladhanClient talks to the aladhan.com timings API.
type AladhanClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAladhanClient(baseURL string) *AladhanClient {
	if baseURL == "" {
		baseURL = defaultAladhanBaseURL
	}
	return &AladhanClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type timingsResponse struct {
	Data struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Sunrise string `json:"Sunrise"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
			Sunset  string `json:"Sunset"`
		} `json:"timings"`
	} `json:"data"`
}

func (c *AladhanClient) FetchTimes(ctx context.Context, latitude, longitude float64, date time.Time) (domain.Times, error) {
	url := fmt.Sprintf("%s/timings/%s?latitude=%f&longitude=%f&method=%d",
		c.baseURL, date.Format("2006-01-02"), latitude, longitude, calculationMethod)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Times{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Times{}, fmt.Errorf("aladhan request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.Times{}, fmt.Errorf("aladhan request: unexpected status %d", resp.StatusCode)
	}
	var payload timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Times{}, fmt.Errorf("aladhan response: %w", err)
	}
	t := payload.Data.Timings
	return domain.Times{
		Fajr:    t.Fajr,
		Sunrise: t.Sunrise,
		Dhuhr:   t.Dhuhr,
		Asr:     t.Asr,
		Maghrib: t.Maghrib,
		Isha:    t.Isha,
		Sunset:  t.Sunset,
	}, nil
}
