package in

import (
	"context"

	"wird/internal/modules/prayer/dto"
)

type Usecase interface {
	Times(ctx context.Context, latitude, longitude float64) (dto.TimesOutput, error)
	NextPrayer(ctx context.Context, latitude, longitude float64) (dto.NextPrayerOutput, error)
}
