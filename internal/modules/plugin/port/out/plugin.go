package out

import (
	"context"

	"wird/internal/modules/plugin/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	ListEditions(ctx context.Context, manifest domain.Manifest) ([]domain.Edition, error)
	FetchSurah(ctx context.Context, manifest domain.Manifest, request domain.FetchSurahRequest) ([]domain.PluginVerse, error)
}
