package kv

import "context"

// Store is a durable key-value store for JSON documents. Last write wins
// per key; there are no transactional guarantees across keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Logical document keys. Each names one independent JSON document.
const (
	KeyProgressRecord  = "progress_record"
	KeyReadingSessions = "reading_sessions"
	KeySettings        = "settings"
)
