package in

import (
	"context"

	plugindto "wird/internal/modules/plugin/dto"
	pluginin "wird/internal/modules/plugin/port/in"
)

type CLIHandler struct {
	usecase pluginin.Usecase
}

func NewCLIHandler(usecase pluginin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]plugindto.PluginInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]plugindto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) ListEditions(ctx context.Context, pluginName string) ([]plugindto.EditionInfo, error) {
	return h.usecase.ListEditions(ctx, pluginName)
}

func (h CLIHandler) FetchSurah(ctx context.Context, pluginName string, surah int, edition string) ([]plugindto.VerseOutput, error) {
	return h.usecase.FetchSurah(ctx, plugindto.FetchSurahInput{PluginName: pluginName, Surah: surah, Edition: edition})
}
