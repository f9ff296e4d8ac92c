package in

import (
	"context"

	prayerdto "wird/internal/modules/prayer/dto"
	prayerin "wird/internal/modules/prayer/port/in"
)

type CLIHandler struct {
	usecase prayerin.Usecase
}

func NewCLIHandler(usecase prayerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Times(ctx context.Context, latitude, longitude float64) (prayerdto.TimesOutput, error) {
	return h.usecase.Times(ctx, latitude, longitude)
}

func (h CLIHandler) NextPrayer(ctx context.Context, latitude, longitude float64) (prayerdto.NextPrayerOutput, error) {
	return h.usecase.NextPrayer(ctx, latitude, longitude)
}
