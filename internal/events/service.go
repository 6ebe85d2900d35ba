// Package events implements the community events calendar: listing, wholesale
// upsert and deletion, with every mutation confirmed by a follow-up read.
package events

import (
	"context"
	"errors"

	"github.com/masjidapp/backend/internal/logging"
	"github.com/masjidapp/backend/internal/outcome"
	"github.com/masjidapp/backend/internal/store"
	"github.com/masjidapp/backend/internal/verify"
)

type Service struct {
	store  store.Opener
	verify verify.Spec
	logger logging.Logger
}

func NewService(opener store.Opener, spec verify.Spec, logger logging.Logger) *Service {
	return &Service{
		store:  opener,
		verify: spec,
		logger: logger.With("module", "events"),
	}
}

// List returns all events, soonest first. The result is empty, never nil,
// when none exist.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer g.Close()

	return store.Many(ctx, g, store.OpGetEvents, scanEvent)
}

// Upsert creates the event when its id is zero and replaces the stored record
// wholesale otherwise. An update to an id with no record short-circuits to
// EventNotFound without writing. Creation is confirmed by a matching record
// appearing in the listing; an update by the stored record reading back equal
// to the submitted values.
func (s *Service) Upsert(ctx context.Context, e Event) (UpsertOutcome, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return UpsertOutcome{}, err
	}
	defer g.Close()

	confirmed := func(ctx context.Context) (bool, error) {
		listed, err := store.Many(ctx, g, store.OpGetEvents, scanEvent)
		if err != nil {
			return false, err
		}
		for _, stored := range listed {
			if stored.contentEquals(e) {
				return true, nil
			}
		}
		return false, nil
	}
	timeoutReason := outcome.ReasonVerificationTimedOut

	if e.ID > 0 {
		_, found, err := store.One(ctx, g, store.OpGetEvent, scanEvent, e.ID)
		if err != nil {
			return UpsertOutcome{}, err
		}
		if !found {
			return UpsertOutcome{Status: EventNotFound}, nil
		}

		confirmed = func(ctx context.Context) (bool, error) {
			current, ok, err := store.One(ctx, g, store.OpGetEvent, scanEvent, e.ID)
			if err != nil || !ok {
				return false, err
			}
			return current.contentEquals(e), nil
		}
		timeoutReason = outcome.ReasonWriteNotApplied
	}

	params := upsertParams{event: e}

	err = verify.Write(ctx, s.verify,
		func(ctx context.Context) error {
			return g.Exec(ctx, store.OpUpsertEvent, params.args()...)
		},
		confirmed,
	)
	if errors.Is(err, verify.ErrNotConfirmed) {
		s.logger.Warn(ctx, "event upsert not confirmed", "id", e.ID, "title", e.Title)
		return UpsertOutcome{Status: UpsertFailed, Reason: timeoutReason}, nil
	}
	if err != nil {
		return UpsertOutcome{}, err
	}

	s.logger.Info(ctx, "event upserted", "id", e.ID, "title", e.Title)
	return UpsertOutcome{Status: Upserted}, nil
}

// Delete removes the event at id. It short-circuits to DeleteEventNotFound
// when no record exists; otherwise the delete is confirmed by the record
// reading back absent.
func (s *Service) Delete(ctx context.Context, id int64) (DeleteOutcome, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return DeleteOutcome{}, err
	}
	defer g.Close()

	_, found, err := store.One(ctx, g, store.OpGetEvent, scanEvent, id)
	if err != nil {
		return DeleteOutcome{}, err
	}
	if !found {
		return DeleteOutcome{Status: DeleteEventNotFound}, nil
	}

	err = verify.Write(ctx, s.verify,
		func(ctx context.Context) error {
			return g.Exec(ctx, store.OpDeleteEvent, id)
		},
		func(ctx context.Context) (bool, error) {
			_, ok, err := store.One(ctx, g, store.OpGetEvent, scanEvent, id)
			return !ok, err
		},
	)
	if errors.Is(err, verify.ErrNotConfirmed) {
		s.logger.Warn(ctx, "event delete not confirmed", "id", id)
		return DeleteOutcome{Status: DeleteFailed, Reason: outcome.ReasonWriteNotApplied}, nil
	}
	if err != nil {
		return DeleteOutcome{}, err
	}

	s.logger.Info(ctx, "event deleted", "id", id)
	return DeleteOutcome{Status: Deleted}, nil
}
