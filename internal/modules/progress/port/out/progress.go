package out

import (
	"context"

	"wird/internal/modules/progress/domain"
)

type RecordStore interface {
	Load(ctx context.Context) (domain.Record, error)
	Save(ctx context.Context, record domain.Record) error
}

type SessionLogStore interface {
	Load(ctx context.Context) ([]domain.Session, error)
	Save(ctx context.Context, log []domain.Session) error
}

type ActiveSessionStore interface {
	SaveActive(ctx context.Context, session domain.ActiveSession) error
	LoadActive(ctx context.Context) (domain.ActiveSession, error)
	ClearActive(ctx context.Context) error
}

// JournalStore renders a completed session as a note for the reader's own
// records. Failures are advisory, never fatal to the session itself.
type JournalStore interface {
	Save(ctx context.Context, session domain.Session) (string, error)
}

// DataWiper removes every persisted document in one full data-clear.
type DataWiper interface {
	Wipe(ctx context.Context) error
}
