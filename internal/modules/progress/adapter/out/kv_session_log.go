package out

import (
	"context"
	"encoding/json"

	"wird/internal/modules/progress/domain"
	progressout "wird/internal/modules/progress/port/out"
	"wird/internal/platform/kv"
)

// KVSessionLogStore persists the whole session log as one JSON document.
// A corrupt document reads as an empty log rather than an error.
type KVSessionLogStore struct {
	store kv.Store
}

func NewKVSessionLogStore(store kv.Store) progressout.SessionLogStore {
	return &KVSessionLogStore{store: store}
}

func (s *KVSessionLogStore) Load(ctx context.Context) ([]domain.Session, error) {
	payload, found, err := s.store.Get(ctx, kv.KeyReadingSessions)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Session{}, nil
	}
	var log []domain.Session
	if err := json.Unmarshal(payload, &log); err != nil {
		return []domain.Session{}, nil
	}
	return log, nil
}

func (s *KVSessionLogStore) Save(ctx context.Context, log []domain.Session) error {
	payload, err := json.Marshal(log)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, kv.KeyReadingSessions, payload)
}
