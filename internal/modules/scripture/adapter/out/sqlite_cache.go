package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"wird/internal/modules/scripture/domain"

	_ "modernc.org/sqlite"
)

// SQLiteCache is the read-through projection of fetched scripture. Verses are
// keyed by (surah, edition) so several translations can coexist.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	cache := &SQLiteCache{db: db}
	if err := cache.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return cache, nil
}

func (c *SQLiteCache) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS surahs (
  number INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  english_name TEXT NOT NULL,
  english_translation TEXT NOT NULL,
  ayah_count INTEGER NOT NULL,
  revelation_type TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS verses (
  id INTEGER NOT NULL,
  surah INTEGER NOT NULL,
  ayah INTEGER NOT NULL,
  edition TEXT NOT NULL,
  arabic TEXT NOT NULL,
  translation TEXT NOT NULL,
  audio_url TEXT NOT NULL,
  PRIMARY KEY (id, edition)
);
CREATE INDEX IF NOT EXISTS idx_verses_surah_edition ON verses (surah, edition);
`
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create scripture tables: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Surahs(ctx context.Context) ([]domain.Surah, bool, error) {
	rows, err := c.db.QueryContext(ctx, `
SELECT number, name, english_name, english_translation, ayah_count, revelation_type
FROM surahs ORDER BY number`)
	if err != nil {
		return nil, false, fmt.Errorf("query surahs: %w", err)
	}
	defer rows.Close()

	var surahs []domain.Surah
	for rows.Next() {
		var s domain.Surah
		var revelation string
		if err := rows.Scan(&s.Number, &s.Name, &s.EnglishName, &s.EnglishTranslation, &s.AyahCount, &revelation); err != nil {
			return nil, false, fmt.Errorf("scan surah: %w", err)
		}
		s.RevelationType = domain.RevelationType(revelation)
		surahs = append(surahs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return surahs, len(surahs) > 0, nil
}

func (c *SQLiteCache) PutSurahs(ctx context.Context, surahs []domain.Surah) error {
	const stmt = `
INSERT INTO surahs (number, name, english_name, english_translation, ayah_count, revelation_type)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(number) DO UPDATE SET
  name=excluded.name,
  english_name=excluded.english_name,
  english_translation=excluded.english_translation,
  ayah_count=excluded.ayah_count,
  revelation_type=excluded.revelation_type;
`
	for _, s := range surahs {
		if _, err := c.db.ExecContext(ctx, stmt,
			s.Number, s.Name, s.EnglishName, s.EnglishTranslation, s.AyahCount, string(s.RevelationType),
		); err != nil {
			return fmt.Errorf("upsert surah %d: %w", s.Number, err)
		}
	}
	return nil
}

func (c *SQLiteCache) Verses(ctx context.Context, number int, edition string) ([]domain.Verse, bool, error) {
	rows, err := c.db.QueryContext(ctx, `
SELECT id, surah, ayah, edition, arabic, translation, audio_url
FROM verses WHERE surah = ? AND edition = ? ORDER BY ayah`, number, edition)
	if err != nil {
		return nil, false, fmt.Errorf("query verses: %w", err)
	}
	defer rows.Close()

	var verses []domain.Verse
	for rows.Next() {
		var v domain.Verse
		var ed string
		if err := rows.Scan(&v.ID, &v.Surah, &v.Ayah, &ed, &v.Arabic, &v.Translation, &v.AudioURL); err != nil {
			return nil, false, fmt.Errorf("scan verse: %w", err)
		}
		verses = append(verses, v)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return verses, len(verses) > 0, nil
}

func (c *SQLiteCache) PutVerses(ctx context.Context, number int, edition string, verses []domain.Verse) error {
	const stmt = `
INSERT INTO verses (id, surah, ayah, edition, arabic, translation, audio_url)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id, edition) DO UPDATE SET
  arabic=excluded.arabic,
  translation=excluded.translation,
  audio_url=excluded.audio_url;
`
	for _, v := range verses {
		if _, err := c.db.ExecContext(ctx, stmt,
			v.ID, number, v.Ayah, edition, v.Arabic, v.Translation, v.AudioURL,
		); err != nil {
			return fmt.Errorf("upsert verse %d: %w", v.ID, err)
		}
	}
	return nil
}

// Clear drops every cached surah and verse. The full data-clear path
// composes this next to the kv store wipe.
func (c *SQLiteCache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM verses; DELETE FROM surahs;`); err != nil {
		return fmt.Errorf("clear scripture cache: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
