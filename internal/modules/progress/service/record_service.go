package service

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"wird/internal/modules/progress/domain"
	progressout "wird/internal/modules/progress/port/out"
	apperrors "wird/internal/platform/errors"
)

// RecordService owns the progress record. Store failures are logged and the
// best-available value is returned; no record operation is fatal.
type RecordService struct {
	store  progressout.RecordStore
	logger hclog.Logger
	last   domain.Record
	loaded bool
}

func NewRecordService(store progressout.RecordStore, logger hclog.Logger) *RecordService {
	return &RecordService{store: store, logger: logger}
}

// Load returns the current record, falling back to defaults (or the last
// known value) when the store is unavailable.
func (s *RecordService) Load(ctx context.Context) domain.Record {
	record, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("load progress record failed, using last known value", "error", err)
		if s.loaded {
			return s.last
		}
		return domain.DefaultRecord()
	}
	record = record.Normalize()
	s.last = record
	s.loaded = true
	return record
}

// Merge applies a shallow partial update and persists the result. The merged
// record is returned even when persistence fails; the failure is logged and
// the next Load reflects persisted truth.
func (s *RecordService) Merge(ctx context.Context, patch domain.Patch) domain.Record {
	merged := s.Load(ctx).Apply(patch)
	if err := s.store.Save(ctx, merged); err != nil {
		s.logger.Warn("persist progress record failed", "error", err)
	}
	s.last = merged
	s.loaded = true
	return merged
}

func (s *RecordService) AddBookmark(ctx context.Context, verseID int) error {
	if verseID <= 0 {
		return apperrors.ErrInvalidInput
	}
	record := s.Load(ctx).WithBookmark(verseID)
	s.Merge(ctx, domain.Patch{Bookmarks: &record.Bookmarks})
	return nil
}

func (s *RecordService) RemoveBookmark(ctx context.Context, verseID int) error {
	if verseID <= 0 {
		return apperrors.ErrInvalidInput
	}
	record := s.Load(ctx).WithoutBookmark(verseID)
	s.Merge(ctx, domain.Patch{Bookmarks: &record.Bookmarks})
	return nil
}

// ToggleBookmark is deliberately expressed through the add/remove primitives
// so membership semantics cannot drift. Reports whether the verse is
// bookmarked after the call.
func (s *RecordService) ToggleBookmark(ctx context.Context, verseID int) (bool, error) {
	if verseID <= 0 {
		return false, apperrors.ErrInvalidInput
	}
	if s.Load(ctx).HasBookmark(verseID) {
		return false, s.RemoveBookmark(ctx, verseID)
	}
	return true, s.AddBookmark(ctx, verseID)
}

func (s *RecordService) MarkSurahCompleted(ctx context.Context, number int) error {
	if number <= 0 {
		return apperrors.ErrInvalidInput
	}
	record := s.Load(ctx).WithCompletedSurah(number)
	s.Merge(ctx, domain.Patch{CompletedSurahs: &record.CompletedSurahs})
	return nil
}
