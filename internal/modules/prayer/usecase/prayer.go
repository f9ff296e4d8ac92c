package usecase

import (
	"context"

	"wird/internal/modules/prayer/domain"
	prayerdto "wird/internal/modules/prayer/dto"
	prayerin "wird/internal/modules/prayer/port/in"
	"wird/internal/modules/prayer/service"
)

type Interactor struct {
	times *service.TimesService
}

func NewInteractor(times *service.TimesService) prayerin.Usecase {
	return &Interactor{times: times}
}

func (i *Interactor) Times(ctx context.Context, latitude, longitude float64) (prayerdto.TimesOutput, error) {
	t := i.times.TimesFor(ctx, latitude, longitude)
	return prayerdto.TimesOutput{
		Fajr:    t.Fajr,
		Sunrise: t.Sunrise,
		Dhuhr:   t.Dhuhr,
		Asr:     t.Asr,
		Maghrib: t.Maghrib,
		Isha:    t.Isha,
		Sunset:  t.Sunset,
	}, nil
}

func (i *Interactor) NextPrayer(ctx context.Context, latitude, longitude float64) (prayerdto.NextPrayerOutput, error) {
	p := i.times.NextPrayer(ctx, latitude, longitude)
	return prayerdto.NextPrayerOutput{
		Name:      p.Name,
		Time:      p.Time,
		Formatted: domain.Format12Hour(p.Time),
	}, nil
}
