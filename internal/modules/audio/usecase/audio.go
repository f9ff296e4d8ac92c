package usecase

import (
	"context"

	"wird/internal/modules/audio/domain"
	audiodto "wird/internal/modules/audio/dto"
	audioin "wird/internal/modules/audio/port/in"
	"wird/internal/modules/audio/service"
)

type Interactor struct {
	player *service.PlayerService
}

func NewInteractor(player *service.PlayerService) audioin.Usecase {
	return &Interactor{player: player}
}

func (i *Interactor) PlayVerse(ctx context.Context, input audiodto.PlayInput) error {
	return i.player.PlayVerse(ctx, domain.Track{
		VerseID: input.VerseID,
		Surah:   input.Surah,
		Ayah:    input.Ayah,
		URL:     input.URL,
	})
}

func (i *Interactor) Pause(ctx context.Context) error {
	return i.player.Pause(ctx)
}

func (i *Interactor) Resume(ctx context.Context) error {
	return i.player.Resume(ctx)
}

func (i *Interactor) Stop(ctx context.Context) error {
	return i.player.Stop(ctx)
}

func (i *Interactor) SetVolume(volume float64) {
	i.player.SetVolume(volume)
}

func (i *Interactor) Seek(position float64) {
	i.player.Seek(position)
}

func (i *Interactor) State() string {
	return i.player.State().String()
}

func (i *Interactor) CurrentTrack() (audiodto.TrackOutput, bool) {
	track, ok := i.player.CurrentTrack()
	return toTrackOutput(track), ok
}

func (i *Interactor) Subscribe(listener audioin.Listener) func() {
	return i.player.Subscribe(func(event domain.Event) {
		listener(toEventOutput(event))
	})
}

func toTrackOutput(track domain.Track) audiodto.TrackOutput {
	return audiodto.TrackOutput{
		VerseID: track.VerseID,
		Surah:   track.Surah,
		Ayah:    track.Ayah,
		URL:     track.URL,
	}
}

func toEventOutput(event domain.Event) audiodto.EventOutput {
	out := audiodto.EventOutput{
		Kind:     event.Kind.String(),
		VerseID:  event.Track.VerseID,
		Surah:    event.Track.Surah,
		Ayah:     event.Track.Ayah,
		Position: event.Position,
		Duration: event.Duration,
	}
	if event.Err != nil {
		out.Error = event.Err.Error()
	}
	return out
}
