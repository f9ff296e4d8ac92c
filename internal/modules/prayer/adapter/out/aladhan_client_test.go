package out_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	out "wird/internal/modules/prayer/adapter/out"
)

func TestFetchTimesMapsTimings(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/timings/2026-03-10") {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("method") != "2" {
			http.Error(w, "wrong method", http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, `{"data":{"timings":{
			"Fajr":"05:12","Sunrise":"06:30","Dhuhr":"12:18","Asr":"15:40",
			"Maghrib":"18:05","Isha":"19:30","Sunset":"18:00"}}}`)
	}))
	t.Cleanup(server.Close)

	client := out.NewAladhanClient(server.URL)
	date := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	times, err := client.FetchTimes(context.Background(), 21.42, 39.83, date)
	if err != nil {
		t.Fatalf("fetch times: %v", err)
	}
	if times.Fajr != "05:12" || times.Isha != "19:30" || times.Sunset != "18:00" {
		t.Fatalf("unexpected timings: %+v", times)
	}
}

func TestFetchTimesReportsUpstreamFailure(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)
	client := out.NewAladhanClient(server.URL)
	if _, err := client.FetchTimes(context.Background(), 0, 0, time.Now()); err == nil {
		t.Fatal("expected error for upstream failure")
	}
}
