package in

import (
	"context"

	audiodto "wird/internal/modules/audio/dto"
	audioin "wird/internal/modules/audio/port/in"
)

type TUIHandler struct {
	usecase audioin.Usecase
}

func NewTUIHandler(usecase audioin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) PlayVerse(ctx context.Context, input audiodto.PlayInput) error {
	return h.usecase.PlayVerse(ctx, input)
}

func (h TUIHandler) Pause(ctx context.Context) error {
	return h.usecase.Pause(ctx)
}

func (h TUIHandler) Resume(ctx context.Context) error {
	return h.usecase.Resume(ctx)
}

func (h TUIHandler) Stop(ctx context.Context) error {
	return h.usecase.Stop(ctx)
}

func (h TUIHandler) State() string {
	return h.usecase.State()
}

func (h TUIHandler) CurrentTrack() (audiodto.TrackOutput, bool) {
	return h.usecase.CurrentTrack()
}

func (h TUIHandler) Subscribe(listener audioin.Listener) func() {
	return h.usecase.Subscribe(listener)
}
