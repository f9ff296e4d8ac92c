package dto

type TimesOutput struct {
	Fajr    string `json:"fajr"`
	Sunrise string `json:"sunrise"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
	Sunset  string `json:"sunset"`
}

type NextPrayerOutput struct {
	Name      string `json:"name"`
	Time      string `json:"time"`
	Formatted string `json:"formatted"`
}
