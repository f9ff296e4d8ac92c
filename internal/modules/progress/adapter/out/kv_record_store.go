package out

import (
	"context"
	"encoding/json"

	"wird/internal/modules/progress/domain"
	progressout "wird/internal/modules/progress/port/out"
	"wird/internal/platform/kv"
)

// KVRecordStore maps the progress record onto one JSON document in the
// key-value store. Malformed stored data reads as absent and yields defaults.
type KVRecordStore struct {
	store kv.Store
}

func NewKVRecordStore(store kv.Store) progressout.RecordStore {
	return &KVRecordStore{store: store}
}

func (s *KVRecordStore) Load(ctx context.Context) (domain.Record, error) {
	payload, found, err := s.store.Get(ctx, kv.KeyProgressRecord)
	if err != nil {
		return domain.Record{}, err
	}
	if !found {
		return domain.DefaultRecord(), nil
	}
	record := domain.DefaultRecord()
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.DefaultRecord(), nil
	}
	return record.Normalize(), nil
}

func (s *KVRecordStore) Save(ctx context.Context, record domain.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, kv.KeyProgressRecord, payload)
}
