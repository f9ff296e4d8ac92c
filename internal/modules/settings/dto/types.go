package dto

type SettingsOutput struct {
	TranslationEdition string  `json:"translation_edition"`
	Reciter            string  `json:"reciter"`
	ArabicFontSize     int     `json:"arabic_font_size"`
	TranslationFont    int     `json:"translation_font_size"`
	Theme              string  `json:"theme"`
	AutoPlay           bool    `json:"auto_play"`
	Notifications      bool    `json:"notifications"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	City               string  `json:"city"`
}

type UpdateInput struct {
	TranslationEdition *string
	Reciter            *string
	ArabicFontSize     *int
	TranslationFont    *int
	Theme              *string
	AutoPlay           *bool
	Notifications      *bool
	Latitude           *float64
	Longitude          *float64
	City               *string
}
