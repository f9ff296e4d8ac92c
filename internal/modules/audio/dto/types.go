package dto

type PlayInput struct {
	VerseID int
	Surah   int
	Ayah    int
	URL     string
}

type TrackOutput struct {
	VerseID int
	Surah   int
	Ayah    int
	URL     string
}

// EventOutput carries one player event across the port boundary. Kind is
// the string form of the player's event enum.
type EventOutput struct {
	Kind     string
	VerseID  int
	Surah    int
	Ayah     int
	Position float64
	Duration float64
	Error    string
}
