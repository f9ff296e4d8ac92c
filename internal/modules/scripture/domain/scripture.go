package domain

import (
	"fmt"
	"strings"
)

const (
	// TotalSurahs is fixed by the text itself.
	TotalSurahs = 114

	// DefaultArabicEdition carries the recitation text verse audio is keyed to.
	DefaultArabicEdition = "ar.alafasy"

	// DefaultTranslationEdition is used when the reader has not picked one.
	DefaultTranslationEdition = "en.asad"

	audioCDNFormat = "https://cdn.islamic.network/quran/audio/128/%s/%d.mp3"
)

type RevelationType string

const (
	RevelationMeccan  RevelationType = "Meccan"
	RevelationMedinan RevelationType = "Medinan"
)

// Surah is one catalog entry: names, length, revelation place.
type Surah struct {
	Number             int            `json:"number"`
	Name               string         `json:"name"`
	EnglishName        string         `json:"englishName"`
	EnglishTranslation string         `json:"englishNameTranslation"`
	AyahCount          int            `json:"numberOfAyahs"`
	RevelationType     RevelationType `json:"revelationType"`
}

// Verse pairs the arabic text with one translation. ID is the global verse
// number (1..6236), Ayah the position within its surah.
type Verse struct {
	ID          int    `json:"id"`
	Surah       int    `json:"surah"`
	Ayah        int    `json:"ayah"`
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
	AudioURL    string `json:"audio,omitempty"`
}

type Reciter struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Style string `json:"style"`
}

func (s Surah) Validate() error {
	if s.Number < 1 || s.Number > TotalSurahs {
		return fmt.Errorf("surah number %d out of range", s.Number)
	}
	if strings.TrimSpace(s.EnglishName) == "" {
		return fmt.Errorf("surah %d missing name", s.Number)
	}
	if s.AyahCount <= 0 {
		return fmt.Errorf("surah %d has no ayahs", s.Number)
	}
	return nil
}

// AudioURL returns the CDN location of one verse's recitation.
func AudioURL(reciterID string, verseID int) string {
	if reciterID == "" {
		reciterID = DefaultArabicEdition
	}
	return fmt.Sprintf(audioCDNFormat, reciterID, verseID)
}

// Reciters is the built-in recitation catalog. Plugins may extend it.
func Reciters() []Reciter {
	return []Reciter{
		{ID: "ar.alafasy", Name: "Mishary Rashid Alafasy", Style: "Warsh"},
		{ID: "ar.abdulbasitmurattal", Name: "Abdul Basit Abdul Samad", Style: "Murattal"},
		{ID: "ar.husary", Name: "Mahmoud Khalil Al-Husary", Style: "Hafs"},
		{ID: "ar.minshawi", Name: "Mohamed Siddiq El-Minshawi", Style: "Murattal"},
		{ID: "ar.sudais", Name: "Abdul Rahman Al-Sudais", Style: "Hafs"},
	}
}
