package domain

// Offline fallbacks keep the reader usable when neither the API nor the
// cache can serve. The catalog subset mirrors what a first-run reader needs.

func FallbackSurahs() []Surah {
	return []Surah{
		{Number: 1, Name: "الفاتحة", EnglishName: "Al-Fatiha", EnglishTranslation: "The Opening", AyahCount: 7, RevelationType: RevelationMeccan},
		{Number: 2, Name: "البقرة", EnglishName: "Al-Baqarah", EnglishTranslation: "The Cow", AyahCount: 286, RevelationType: RevelationMedinan},
		{Number: 112, Name: "الإخلاص", EnglishName: "Al-Ikhlas", EnglishTranslation: "The Sincerity", AyahCount: 4, RevelationType: RevelationMeccan},
	}
}

func FallbackVerses(surah int) []Verse {
	if surah != 1 {
		return []Verse{}
	}
	return []Verse{
		{
			ID:          1,
			Surah:       1,
			Ayah:        1,
			Arabic:      "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ",
			Translation: "In the name of Allah, the Entirely Merciful, the Especially Merciful.",
			AudioURL:    AudioURL(DefaultArabicEdition, 1),
		},
	}
}
