package in

import (
	"context"

	"wird/internal/modules/audio/dto"
)

// Listener receives player events. Callbacks run on the caller's goroutine.
type Listener func(event dto.EventOutput)

type Usecase interface {
	PlayVerse(ctx context.Context, input dto.PlayInput) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Stop(ctx context.Context) error
	SetVolume(volume float64)
	Seek(position float64)
	State() string
	CurrentTrack() (dto.TrackOutput, bool)
	Subscribe(listener Listener) (unsubscribe func())
}
