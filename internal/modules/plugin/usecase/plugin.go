package usecase

import (
	"context"

	"wird/internal/modules/plugin/dto"
	pluginin "wird/internal/modules/plugin/port/in"
	"wird/internal/modules/plugin/service"
)

type Interactor struct {
	svc *service.PluginService
}

func NewInteractor(svc *service.PluginService) pluginin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) ListEditions(ctx context.Context, pluginName string) ([]dto.EditionInfo, error) {
	return i.svc.ListEditions(ctx, pluginName)
}

func (i *Interactor) FetchSurah(ctx context.Context, input dto.FetchSurahInput) ([]dto.VerseOutput, error) {
	return i.svc.FetchSurah(ctx, input)
}
