// Package prayertimes manages the single prayer-times file: one binary blob
// for the whole system, replaced wholesale and never patched in place.
package prayertimes

import (
	"context"
	"errors"

	"github.com/masjidapp/backend/internal/logging"
	"github.com/masjidapp/backend/internal/outcome"
	"github.com/masjidapp/backend/internal/store"
	"github.com/masjidapp/backend/internal/verify"
)

// UpdateStatus is the closed set of update results.
type UpdateStatus int

const (
	Updated UpdateStatus = iota
	UpdateFailed
)

// UpdateOutcome reports how an update ended. Reason is set only when Status
// is UpdateFailed.
type UpdateOutcome struct {
	Status UpdateStatus
	Reason outcome.Reason
}

type Service struct {
	store  store.Opener
	verify verify.Spec
	logger logging.Logger
}

func NewService(opener store.Opener, spec verify.Spec, logger logging.Logger) *Service {
	return &Service{
		store:  opener,
		verify: spec,
		logger: logger.With("module", "prayertimes"),
	}
}

func scanFile(r store.RowScanner) ([]byte, error) {
	var data []byte
	err := r.Scan(&data)
	return data, err
}

// Fetch returns the current file. The bool distinguishes "no file uploaded
// yet" from an empty file, which is valid content.
func (s *Service) Fetch(ctx context.Context) ([]byte, bool, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return nil, false, err
	}
	defer g.Close()

	return store.One(ctx, g, store.OpGetPrayerTimesFile, scanFile)
}

// Update replaces the file and confirms the write by reading the blob back
// until a row is present. Presence, not content equality, is the predicate:
// the stored bytes may be transformed in transit and can be large.
func (s *Service) Update(ctx context.Context, data []byte) (UpdateOutcome, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return UpdateOutcome{}, err
	}
	defer g.Close()

	err = verify.Write(ctx, s.verify,
		func(ctx context.Context) error {
			return g.Exec(ctx, store.OpUpdatePrayerTimesFile, data)
		},
		func(ctx context.Context) (bool, error) {
			_, found, err := store.One(ctx, g, store.OpGetPrayerTimesFile, scanFile)
			return found, err
		},
	)
	if errors.Is(err, verify.ErrNotConfirmed) {
		s.logger.Warn(ctx, "prayer times update not confirmed", "bytes", len(data))
		return UpdateOutcome{Status: UpdateFailed, Reason: outcome.ReasonVerificationTimedOut}, nil
	}
	if err != nil {
		return UpdateOutcome{}, err
	}

	s.logger.Info(ctx, "prayer times updated", "bytes", len(data))
	return UpdateOutcome{Status: Updated}, nil
}
