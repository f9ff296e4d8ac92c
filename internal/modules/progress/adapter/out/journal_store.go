package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wird/internal/modules/progress/domain"
	progressout "wird/internal/modules/progress/port/out"
	"wird/internal/platform/markdown"
)

// MarkdownJournalStore writes one note per completed session under
// journal/YYYY/MM/DD, suitable for keeping alongside other plain-text notes.
type MarkdownJournalStore struct {
	journalPath string
}

func NewMarkdownJournalStore(journalPath string) progressout.JournalStore {
	return &MarkdownJournalStore{journalPath: journalPath}
}

func (s *MarkdownJournalStore) Save(_ context.Context, session domain.Session) (string, error) {
	date := session.Date
	dir := filepath.Join(s.journalPath, date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-reading.md", date.Format("150405")))

	meta := map[string]any{
		"schema_version":   domain.SchemaVersion,
		"date":             date.Format("2006-01-02T15:04:05Z07:00"),
		"duration_minutes": session.DurationMin,
		"verses_read":      session.VersesRead,
		"surahs_read":      session.SurahsRead,
	}
	body := fmt.Sprintf(
		"# Reading session\n\n- Duration: %d minutes\n- Verses read: %d\n- Surahs: %s\n",
		session.DurationMin, session.VersesRead, formatSurahs(session.SurahsRead),
	)
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal note: %w", err)
	}
	return path, nil
}

func formatSurahs(numbers []int) string {
	if len(numbers) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, fmt.Sprintf("%d", n))
	}
	return strings.Join(parts, ", ")
}
