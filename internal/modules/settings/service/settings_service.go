package service

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"wird/internal/modules/settings/domain"
	settingsout "wird/internal/modules/settings/port/out"
)

// SettingsService follows the same policy as the progress record: load falls
// back to defaults (or the last known value) and merges persist shallowly.
type SettingsService struct {
	store  settingsout.SettingsStore
	logger hclog.Logger
	last   domain.Settings
	loaded bool
}

func NewSettingsService(store settingsout.SettingsStore, logger hclog.Logger) *SettingsService {
	return &SettingsService{store: store, logger: logger}
}

func (s *SettingsService) Load(ctx context.Context) domain.Settings {
	settings, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("load settings failed, using last known value", "error", err)
		if s.loaded {
			return s.last
		}
		return domain.DefaultSettings()
	}
	settings = settings.Normalize()
	s.last = settings
	s.loaded = true
	return settings
}

func (s *SettingsService) Merge(ctx context.Context, patch domain.Patch) domain.Settings {
	merged := s.Load(ctx).Apply(patch)
	if err := s.store.Save(ctx, merged); err != nil {
		s.logger.Warn("persist settings failed", "error", err)
	}
	s.last = merged
	s.loaded = true
	return merged
}
