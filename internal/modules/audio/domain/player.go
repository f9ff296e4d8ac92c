package domain

// EventKind enumerates the player lifecycle notifications. Listeners receive
// typed events, never string-keyed payloads.
type EventKind int

const (
	EventLoading EventKind = iota
	EventPlay
	EventPause
	EventEnded
	EventTimeUpdate
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventLoading:
		return "loading"
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventEnded:
		return "ended"
	case EventTimeUpdate:
		return "timeupdate"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Track identifies what the player is (or was) playing.
type Track struct {
	VerseID int
	Surah   int
	Ayah    int
	URL     string
}

// Event is one player notification. Position and Duration are only
// meaningful for EventTimeUpdate; Err only for EventError.
type Event struct {
	Kind     EventKind
	Track    Track
	Position float64
	Duration float64
	Err      error
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// ClampVolume keeps volume in the playable 0..1 range.
func ClampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
