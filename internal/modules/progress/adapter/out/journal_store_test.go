package out_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	progressout "wird/internal/modules/progress/adapter/out"
	"wird/internal/modules/progress/domain"
	"wird/internal/platform/markdown"
)

func TestMarkdownJournalStoreWritesDatedNote(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := progressout.NewMarkdownJournalStore(dir)

	date := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)
	path, err := store.Save(context.Background(), domain.Session{
		Date:        date,
		DurationMin: 25,
		VersesRead:  12,
		SurahsRead:  []int{2, 3},
	})
	if err != nil {
		t.Fatalf("save journal note: %v", err)
	}
	if !strings.Contains(path, "2026") || !strings.Contains(path, "092653-reading.md") {
		t.Fatalf("unexpected note path %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	meta, body, err := markdown.SplitFrontmatter(string(raw))
	if err != nil {
		t.Fatalf("split frontmatter: %v", err)
	}
	if got := meta["duration_minutes"]; got != 25 {
		t.Fatalf("expected duration 25, got %v", got)
	}
	if got := meta["verses_read"]; got != 12 {
		t.Fatalf("expected verses 12, got %v", got)
	}
	if !strings.Contains(body, "# Reading session") {
		t.Fatalf("expected session heading, got %q", body)
	}
	if !strings.Contains(body, "Surahs: 2, 3") {
		t.Fatalf("expected surah list, got %q", body)
	}
}

func TestMarkdownJournalStoreNoSurahs(t *testing.T) {
	t.Parallel()
	store := progressout.NewMarkdownJournalStore(t.TempDir())

	path, err := store.Save(context.Background(), domain.Session{
		Date:        time.Date(2026, 3, 14, 21, 0, 0, 0, time.Local),
		DurationMin: 5,
	})
	if err != nil {
		t.Fatalf("save journal note: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if !strings.Contains(string(raw), "Surahs: none") {
		t.Fatalf("expected no surahs marker, got %q", string(raw))
	}
}
