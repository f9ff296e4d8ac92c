package dto

type SurahOutput struct {
	Number             int    `json:"number"`
	Name               string `json:"name"`
	EnglishName        string `json:"english_name"`
	EnglishTranslation string `json:"english_name_translation"`
	AyahCount          int    `json:"ayah_count"`
	RevelationType     string `json:"revelation_type"`
}

type VerseOutput struct {
	ID          int    `json:"id"`
	Surah       int    `json:"surah"`
	Ayah        int    `json:"ayah"`
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
	AudioURL    string `json:"audio_url,omitempty"`
}

type ReciterOutput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Style string `json:"style"`
}

type GetSurahInput struct {
	Number  int
	Edition string
}

type SearchInput struct {
	Query   string
	Edition string
}
