package out_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	out "wird/internal/modules/scripture/adapter/out"
	"wird/internal/modules/scripture/domain"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/surah", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"number":1,"name":"الفاتحة","englishName":"Al-Fatiha","englishNameTranslation":"The Opening","numberOfAyahs":7,"revelationType":"Meccan"},
			{"number":2,"name":"البقرة","englishName":"Al-Baqarah","englishNameTranslation":"The Cow","numberOfAyahs":286,"revelationType":"Medinan"}
		]}`)
	})
	mux.HandleFunc("/surah/1/ar.alafasy", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data":{"ayahs":[
			{"number":1,"text":"بِسْمِ اللَّهِ","numberInSurah":1},
			{"number":2,"text":"الْحَمْدُ لِلَّهِ","numberInSurah":2}
		]}}`)
	})
	mux.HandleFunc("/surah/1/en.asad", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data":{"ayahs":[
			{"number":1,"text":"In the name of God","numberInSurah":1},
			{"number":2,"text":"All praise is due to God","numberInSurah":2}
		]}}`)
	})
	mux.HandleFunc("/search/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/all/en.asad") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"data":{"matches":[
			{"number":255,"text":"God - there is no deity save Him","numberInSurah":255,"surah":{"number":2}}
		]}}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestListSurahsMapsCatalog(t *testing.T) {
	t.Parallel()
	client := out.NewAlQuranClient(newAPIServer(t).URL)
	surahs, err := client.ListSurahs(context.Background())
	if err != nil {
		t.Fatalf("list surahs: %v", err)
	}
	if len(surahs) != 2 {
		t.Fatalf("expected 2 surahs, got %d", len(surahs))
	}
	if surahs[0].EnglishName != "Al-Fatiha" || surahs[0].AyahCount != 7 {
		t.Fatalf("unexpected first surah: %+v", surahs[0])
	}
	if surahs[1].RevelationType != domain.RevelationMedinan {
		t.Fatalf("unexpected revelation type: %+v", surahs[1])
	}
}

func TestFetchSurahPairsArabicWithTranslation(t *testing.T) {
	t.Parallel()
	client := out.NewAlQuranClient(newAPIServer(t).URL)
	verses, err := client.FetchSurah(context.Background(), 1, "en.asad")
	if err != nil {
		t.Fatalf("fetch surah: %v", err)
	}
	if len(verses) != 2 {
		t.Fatalf("expected 2 verses, got %d", len(verses))
	}
	first := verses[0]
	if first.ID != 1 || first.Surah != 1 || first.Ayah != 1 {
		t.Fatalf("unexpected verse identity: %+v", first)
	}
	if first.Translation != "In the name of God" {
		t.Fatalf("translation must come from the requested edition, got %q", first.Translation)
	}
	if !strings.Contains(first.AudioURL, "ar.alafasy/1.mp3") {
		t.Fatalf("audio url must point at the verse recitation, got %q", first.AudioURL)
	}
}

func TestSearchMapsMatches(t *testing.T) {
	t.Parallel()
	client := out.NewAlQuranClient(newAPIServer(t).URL)
	verses, err := client.Search(context.Background(), "deity", "en.asad")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(verses) != 1 || verses[0].Surah != 2 || verses[0].Ayah != 255 {
		t.Fatalf("unexpected matches: %+v", verses)
	}
}

func TestClientReportsUpstreamErrors(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)
	client := out.NewAlQuranClient(server.URL)
	if _, err := client.ListSurahs(context.Background()); err == nil {
		t.Fatal("expected error for upstream failure")
	}
}
