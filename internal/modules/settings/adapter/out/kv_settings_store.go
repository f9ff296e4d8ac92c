package out

import (
	"context"
	"encoding/json"

	"wird/internal/modules/settings/domain"
	settingsout "wird/internal/modules/settings/port/out"
	"wird/internal/platform/kv"
)

// KVSettingsStore maps the preferences onto one JSON document. Malformed
// stored data reads as absent and yields defaults.
type KVSettingsStore struct {
	store kv.Store
}

func NewKVSettingsStore(store kv.Store) settingsout.SettingsStore {
	return &KVSettingsStore{store: store}
}

func (s *KVSettingsStore) Load(ctx context.Context) (domain.Settings, error) {
	payload, found, err := s.store.Get(ctx, kv.KeySettings)
	if err != nil {
		return domain.Settings{}, err
	}
	if !found {
		return domain.DefaultSettings(), nil
	}
	settings := domain.DefaultSettings()
	if err := json.Unmarshal(payload, &settings); err != nil {
		return domain.DefaultSettings(), nil
	}
	return settings.Normalize(), nil
}

func (s *KVSettingsStore) Save(ctx context.Context, settings domain.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, kv.KeySettings, payload)
}
