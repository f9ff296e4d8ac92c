package domain

import "time"

const SchemaVersion = 1

const (
	// RetentionDays bounds the session log; anything older is pruned on append.
	RetentionDays = 30
	// StreakHorizonDays bounds the backward day walk so it always terminates.
	StreakHorizonDays = 365
	DefaultDailyGoalMin = 15
)

// Record is the single progress document for the reader: current position,
// cumulative totals, daily goal, bookmarks, and completed surahs.
type Record struct {
	CurrentSurah    int    `json:"current_surah"`
	CurrentAyah     int    `json:"current_ayah"`
	TotalReadingMin int    `json:"total_reading_minutes"`
	DailyGoalMin    int    `json:"daily_goal_minutes"`
	LastReadDate    string `json:"last_read_date,omitempty"`
	Bookmarks       []int  `json:"bookmarks"`
	CompletedSurahs []int  `json:"completed_surahs"`
}

func DefaultRecord() Record {
	return Record{
		CurrentSurah:    1,
		CurrentAyah:     1,
		DailyGoalMin:    DefaultDailyGoalMin,
		Bookmarks:       []int{},
		CompletedSurahs: []int{},
	}
}

// Normalize repairs a loaded record: missing fields fall back to defaults
// and both membership lists are deduplicated, preserving insertion order.
func (r Record) Normalize() Record {
	defaults := DefaultRecord()
	if r.CurrentSurah <= 0 {
		r.CurrentSurah = defaults.CurrentSurah
	}
	if r.CurrentAyah <= 0 {
		r.CurrentAyah = defaults.CurrentAyah
	}
	if r.TotalReadingMin < 0 {
		r.TotalReadingMin = 0
	}
	if r.DailyGoalMin <= 0 {
		r.DailyGoalMin = defaults.DailyGoalMin
	}
	r.Bookmarks = dedupe(r.Bookmarks)
	r.CompletedSurahs = dedupe(r.CompletedSurahs)
	return r
}

func (r Record) HasBookmark(verseID int) bool {
	return contains(r.Bookmarks, verseID)
}

// WithBookmark inserts verseID if absent. Idempotent.
func (r Record) WithBookmark(verseID int) Record {
	if contains(r.Bookmarks, verseID) {
		return r
	}
	r.Bookmarks = append(append([]int{}, r.Bookmarks...), verseID)
	return r
}

// WithoutBookmark removes verseID if present. Idempotent.
func (r Record) WithoutBookmark(verseID int) Record {
	out := make([]int, 0, len(r.Bookmarks))
	for _, id := range r.Bookmarks {
		if id != verseID {
			out = append(out, id)
		}
	}
	r.Bookmarks = out
	return r
}

// WithCompletedSurah inserts the surah number if absent. Idempotent.
func (r Record) WithCompletedSurah(number int) Record {
	if contains(r.CompletedSurahs, number) {
		return r
	}
	r.CompletedSurahs = append(append([]int{}, r.CompletedSurahs...), number)
	return r
}

// Patch is a shallow partial update of Record; nil fields are untouched.
type Patch struct {
	CurrentSurah    *int
	CurrentAyah     *int
	TotalReadingMin *int
	DailyGoalMin    *int
	LastReadDate    *string
	Bookmarks       *[]int
	CompletedSurahs *[]int
}

func (r Record) Apply(p Patch) Record {
	if p.CurrentSurah != nil {
		r.CurrentSurah = *p.CurrentSurah
	}
	if p.CurrentAyah != nil {
		r.CurrentAyah = *p.CurrentAyah
	}
	if p.TotalReadingMin != nil {
		r.TotalReadingMin = *p.TotalReadingMin
	}
	if p.DailyGoalMin != nil {
		r.DailyGoalMin = *p.DailyGoalMin
	}
	if p.LastReadDate != nil {
		r.LastReadDate = *p.LastReadDate
	}
	if p.Bookmarks != nil {
		r.Bookmarks = dedupe(*p.Bookmarks)
	}
	if p.CompletedSurahs != nil {
		r.CompletedSurahs = dedupe(*p.CompletedSurahs)
	}
	return r
}

// Session is one completed reading interval, immutable once created.
type Session struct {
	Date        time.Time `json:"date"`
	DurationMin int       `json:"duration_minutes"`
	VersesRead  int       `json:"verses_read"`
	SurahsRead  []int     `json:"surahs_read"`
}

// ActiveSession marks the single open reading session, if any.
type ActiveSession struct {
	SessionID string    `json:"session_id"`
	Surah     int       `json:"surah"`
	Ayah      int       `json:"ayah"`
	StartedAt time.Time `json:"started_at"`
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func dedupe(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
