// Package announcements implements listing, posting and editing of community
// announcements over the store gateway, with every mutation confirmed by a
// follow-up read.
package announcements

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
		logger: logger.With("module", "announcements"),
	}
}

// List returns all announcements, oldest first. The result is empty, never
// nil, when none exist.
func (s *Service) List(ctx context.Context) ([]Announcement, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer g.Close()

	return store.Many(ctx, g, store.OpGetAnnouncements, scanAnnouncement)
}

// Post stores a new announcement and confirms it by reading the collection
// back until a record matching the draft's content appears.
func (s *Service) Post(ctx context.Context, draft Draft) (PostOutcome, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return PostOutcome{}, err
	}
	defer g.Close()

	params := postParams{title: draft.Title, description: draft.Description, image: draft.Image}

	err = verify.Write(ctx, s.verify,
		func(ctx context.Context) error {
			return g.Exec(ctx, store.OpPostAnnouncement, params.args()...)
		},
		func(ctx context.Context) (bool, error) {
			listed, err := store.Many(ctx, g, store.OpGetAnnouncements, scanAnnouncement)
			if err != nil {
				return false, err
			}
			for _, a := range listed {
				if a.contentEquals(draft.Title, draft.Description, draft.Image) {
					return true, nil
				}
			}
			return false, nil
		},
	)
	if errors.Is(err, verify.ErrNotConfirmed) {
		s.logger.Warn(ctx, "announcement post not confirmed", "title", draft.Title)
		return PostOutcome{Status: PostFailed, Reason: outcome.ReasonVerificationTimedOut}, nil
	}
	if err != nil {
		return PostOutcome{}, err
	}

	s.logger.Info(ctx, "announcement posted", "title", draft.Title)
	return PostOutcome{Status: Posted}, nil
}

// Edit replaces the mutable fields of an existing announcement. It
// short-circuits to AnnouncementNotFound when no record exists at the id and
// to NoOpEdit when the submitted values equal the stored ones; neither case
// writes. Otherwise the write is confirmed by reading the record back until
// it differs from the pre-edit snapshot.
func (s *Service) Edit(ctx context.Context, id int64, title, description string, image []byte) (EditOutcome, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return EditOutcome{}, err
	}
	defer g.Close()

	prior, found, err := store.One(ctx, g, store.OpGetAnnouncement, scanAnnouncement, id)
	if err != nil {
		return EditOutcome{}, err
	}
	if !found {
		return EditOutcome{Status: AnnouncementNotFound}, nil
	}
	if prior.contentEquals(title, description, image) {
		return EditOutcome{Status: NoOpEdit}, nil
	}

	params := editParams{id: id, title: title, description: description, image: image}

	err = verify.Write(ctx, s.verify,
		func(ctx context.Context) error {
			return g.Exec(ctx, store.OpEditAnnouncement, params.args()...)
		},
		func(ctx context.Context) (bool, error) {
			current, ok, err := store.One(ctx, g, store.OpGetAnnouncement, scanAnnouncement, id)
			if err != nil || !ok {
				return false, err
			}
			return !current.contentEquals(prior.Title, prior.Description, prior.Image), nil
		},
	)
	if errors.Is(err, verify.ErrNotConfirmed) {
		s.logger.Warn(ctx, "announcement edit not confirmed", "id", id)
		return EditOutcome{Status: EditFailed, Reason: outcome.ReasonWriteNotApplied}, nil
	}
	if err != nil {
		return EditOutcome{}, err
	}

	s.logger.Info(ctx, "announcement edited", "id", id)
	return EditOutcome{Status: Edited}, nil
}
