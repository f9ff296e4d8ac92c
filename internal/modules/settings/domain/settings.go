package domain

// Location anchors prayer time lookups.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
}

// Settings is the reader's single preferences document.
type Settings struct {
	TranslationEdition string   `json:"translation_edition"`
	Reciter            string   `json:"reciter"`
	ArabicFontSize     int      `json:"arabic_font_size"`
	TranslationFont    int      `json:"translation_font_size"`
	Theme              string   `json:"theme"`
	AutoPlay           bool     `json:"auto_play"`
	Notifications      bool     `json:"notifications"`
	Location           Location `json:"location"`
}

func DefaultSettings() Settings {
	return Settings{
		TranslationEdition: "en.asad",
		Reciter:            "ar.alafasy",
		ArabicFontSize:     2,
		TranslationFont:    1,
		Theme:              "dark",
		AutoPlay:           false,
		Notifications:      true,
		// Mecca, a sensible default until the reader sets their own.
		Location: Location{Latitude: 21.42, Longitude: 39.83, City: "Mecca"},
	}
}

// Normalize repairs values a hand-edited or older document may carry.
func (s Settings) Normalize() Settings {
	if s.TranslationEdition == "" {
		s.TranslationEdition = DefaultSettings().TranslationEdition
	}
	if s.Reciter == "" {
		s.Reciter = DefaultSettings().Reciter
	}
	if s.ArabicFontSize <= 0 {
		s.ArabicFontSize = DefaultSettings().ArabicFontSize
	}
	if s.TranslationFont <= 0 {
		s.TranslationFont = DefaultSettings().TranslationFont
	}
	if s.Theme != "light" && s.Theme != "dark" {
		s.Theme = DefaultSettings().Theme
	}
	return s
}

// Patch is a shallow partial update; nil fields are left untouched.
type Patch struct {
	TranslationEdition *string
	Reciter            *string
	ArabicFontSize     *int
	TranslationFont    *int
	Theme              *string
	AutoPlay           *bool
	Notifications      *bool
	Location           *Location
}

func (s Settings) Apply(p Patch) Settings {
	if p.TranslationEdition != nil {
		s.TranslationEdition = *p.TranslationEdition
	}
	if p.Reciter != nil {
		s.Reciter = *p.Reciter
	}
	if p.ArabicFontSize != nil {
		s.ArabicFontSize = *p.ArabicFontSize
	}
	if p.TranslationFont != nil {
		s.TranslationFont = *p.TranslationFont
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.AutoPlay != nil {
		s.AutoPlay = *p.AutoPlay
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	return s.Normalize()
}
