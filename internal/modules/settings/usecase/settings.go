package usecase

import (
	"context"

	"wird/internal/modules/settings/domain"
	settingsdto "wird/internal/modules/settings/dto"
	settingsin "wird/internal/modules/settings/port/in"
	"wird/internal/modules/settings/service"
	apperrors "wird/internal/platform/errors"
)

type Interactor struct {
	settings *service.SettingsService
}

func NewInteractor(settings *service.SettingsService) settingsin.Usecase {
	return &Interactor{settings: settings}
}

func (i *Interactor) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return toOutput(i.settings.Load(ctx)), nil
}

func (i *Interactor) Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error) {
	if input.Theme != nil && *input.Theme != "light" && *input.Theme != "dark" {
		return settingsdto.SettingsOutput{}, apperrors.ErrInvalidInput
	}
	if input.ArabicFontSize != nil && *input.ArabicFontSize <= 0 {
		return settingsdto.SettingsOutput{}, apperrors.ErrInvalidInput
	}
	if input.TranslationFont != nil && *input.TranslationFont <= 0 {
		return settingsdto.SettingsOutput{}, apperrors.ErrInvalidInput
	}

	patch := domain.Patch{
		TranslationEdition: input.TranslationEdition,
		Reciter:            input.Reciter,
		ArabicFontSize:     input.ArabicFontSize,
		TranslationFont:    input.TranslationFont,
		Theme:              input.Theme,
		AutoPlay:           input.AutoPlay,
		Notifications:      input.Notifications,
	}
	if input.Latitude != nil || input.Longitude != nil || input.City != nil {
		location := i.settings.Load(ctx).Location
		if input.Latitude != nil {
			location.Latitude = *input.Latitude
		}
		if input.Longitude != nil {
			location.Longitude = *input.Longitude
		}
		if input.City != nil {
			location.City = *input.City
		}
		patch.Location = &location
	}
	return toOutput(i.settings.Merge(ctx, patch)), nil
}

func toOutput(s domain.Settings) settingsdto.SettingsOutput {
	return settingsdto.SettingsOutput{
		TranslationEdition: s.TranslationEdition,
		Reciter:            s.Reciter,
		ArabicFontSize:     s.ArabicFontSize,
		TranslationFont:    s.TranslationFont,
		Theme:              s.Theme,
		AutoPlay:           s.AutoPlay,
		Notifications:      s.Notifications,
		Latitude:           s.Location.Latitude,
		Longitude:          s.Location.Longitude,
		City:               s.Location.City,
	}
}
