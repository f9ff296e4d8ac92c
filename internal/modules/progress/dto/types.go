package dto

import "time"

type StartSessionInput struct {
	Surah int
	Ayah  int
}

type StartSessionOutput struct {
	SessionID string
	StartedAt time.Time
}

type EndSessionInput struct {
	SessionID  string
	VersesRead int
	SurahsRead []int
}

type EndSessionOutput struct {
	SessionID   string
	DurationMin int
	Recorded    bool
	JournalPath string
}

type ActiveSessionOutput struct {
	SessionID string
	Surah     int
	Ayah      int
	StartedAt time.Time
}

type SessionOutput struct {
	Date        time.Time
	DurationMin int
	VersesRead  int
	SurahsRead  []int
}

type RecordOutput struct {
	CurrentSurah    int
	CurrentAyah     int
	TotalReadingMin int
	DailyGoalMin    int
	LastReadDate    string
	Bookmarks       []int
	CompletedSurahs []int
}

type StatsOutput struct {
	TotalMinutes int
	TotalVerses  int
	DaysActive   int
	AverageDaily int
}

type OverviewOutput struct {
	TodayMinutes    int
	CurrentStreak   int
	GoalPercent     int
	DailyGoalMin    int
	TotalReadingMin int
}
