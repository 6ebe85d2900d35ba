// Package askimam implements the question-and-answer workflow: anyone can
// submit a question, the public can browse answered ones, and an imam records
// answers or removes questions. Mutations are confirmed by follow-up reads.
package askimam

import (
	"context"
	"errors"
	"time"

	"github.com/masjidapp/backend/internal/logging"
	"github.com/masjidapp/backend/internal/outcome"
	"github.com/masjidapp/backend/internal/store"
	"github.com/masjidapp/backend/internal/verify"
)

// StatusFilter narrows a listing to answered or unanswered questions.
type StatusFilter int

const (
	AnyStatus StatusFilter = iota
	AnsweredOnly
	UnansweredOnly
)

// Filter selects which questions a listing returns. Zero values leave the
// corresponding dimension unfiltered.
type Filter struct {
	Status          StatusFilter
	Topic           string
	SchoolOfThought string
}

func (f Filter) params() listParams {
	var p listParams
	switch f.Status {
	case AnsweredOnly:
		answered := true
		p.answered = &answered
	case UnansweredOnly:
		answered := false
		p.answered = &answered
	}
	if f.Topic != "" {
		p.topic = &f.Topic
	}
	if f.SchoolOfThought != "" {
		p.school = &f.SchoolOfThought
	}
	return p
}

type Service struct {
	store  store.Opener
	verify verify.Spec
	logger logging.Logger
	now    func() time.Time
}

func NewService(opener store.Opener, spec verify.Spec, logger logging.Logger) *Service {
	return &Service{
		store:  opener,
		verify: spec,
		logger: logger.With("module", "askimam"),
		now:    time.Now,
	}
}

// List returns the questions matching the filter, oldest first. The result is
// empty, never nil, when none match.
func (s *Service) List(ctx context.Context, f Filter) ([]Question, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer g.Close()

	return store.Many(ctx, g, store.OpGetImamQuestions, scanQuestion, f.params().args()...)
}

// Submit stores a new question and confirms it by a matching record appearing
// in the listing.
func (s *Service) Submit(ctx context.Context, d Draft) (SubmitOutcome, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return SubmitOutcome{}, err
	}
	defer g.Close()

	params := submitParams{title: d.Title, topic: d.Topic, description: d.Description}
	if d.SchoolOfThought != "" {
		params.school = &d.SchoolOfThought
	}

	err = verify.Write(ctx, s.verify,
		func(ctx context.Context) error {
			return g.Exec(ctx, store.OpSubmitImamQuestion, params.args()...)
		},
		func(ctx context.Context) (bool, error) {
			listed, err := store.Many(ctx, g, store.OpGetImamQuestions, scanQuestion, listParams{}.args()...)
			if err != nil {
				return false, err
			}
			for _, q := range listed {
				if q.contentEquals(d) {
					return true, nil
				}
			}
			return false, nil
		},
	)
	if errors.Is(err, verify.ErrNotConfirmed) {
		s.logger.Warn(ctx, "question submission not confirmed", "title", d.Title)
		return SubmitOutcome{Status: SubmitFailed, Reason: outcome.ReasonVerificationTimedOut}, nil
	}
	if err != nil {
		return SubmitOutcome{}, err
	}

	s.logger.Info(ctx, "question submitted", "title", d.Title)
	return SubmitOutcome{Status: Submitted}, nil
}

// Answer records an imam's reply on the question at id, replacing any earlier
// reply. It short-circuits to QuestionNotFound when no record exists;
// otherwise the write is confirmed by the stored answer reading back equal to
// the submitted one.
func (s *Service) Answer(ctx context.Context, id int64, a Answer) (AnswerOutcome, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return AnswerOutcome{}, err
	}
	defer g.Close()

	_, found, err := store.One(ctx, g, store.OpGetImamQuestion, scanQuestion, id)
	if err != nil {
		return AnswerOutcome{}, err
	}
	if !found {
		return AnswerOutcome{Status: QuestionNotFound}, nil
	}

	if a.DateAnswered.IsZero() {
		a.DateAnswered = s.now().UTC()
	}
	params := answerParams{imamName: a.ImamName, text: a.Text, dateAnswered: a.DateAnswered, questionID: id}

	err = verify.Write(ctx, s.verify,
		func(ctx context.Context) error {
			return g.Exec(ctx, store.OpAnswerImamQuestion, params.args()...)
		},
		func(ctx context.Context) (bool, error) {
			current, ok, err := store.One(ctx, g, store.OpGetImamQuestion, scanQuestion, id)
			if err != nil || !ok {
				return false, err
			}
			return current.answeredBy(a), nil
		},
	)
	if errors.Is(err, verify.ErrNotConfirmed) {
		s.logger.Warn(ctx, "answer not confirmed", "question_id", id)
		return AnswerOutcome{Status: AnswerFailed, Reason: outcome.ReasonWriteNotApplied}, nil
	}
	if err != nil {
		return AnswerOutcome{}, err
	}

	s.logger.Info(ctx, "question answered", "question_id", id, "imam", a.ImamName)
	return AnswerOutcome{Status: Answered}, nil
}

// Delete removes the question at id. It short-circuits to
// DeleteQuestionNotFound when no record exists; otherwise the delete is
// confirmed by the record reading back absent.
func (s *Service) Delete(ctx context.Context, id int64) (DeleteOutcome, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return DeleteOutcome{}, err
	}
	defer g.Close()

	_, found, err := store.One(ctx, g, store.OpGetImamQuestion, scanQuestion, id)
	if err != nil {
		return DeleteOutcome{}, err
	}
	if !found {
		return DeleteOutcome{Status: DeleteQuestionNotFound}, nil
	}

	err = verify.Write(ctx, s.verify,
		func(ctx context.Context) error {
			return g.Exec(ctx, store.OpDeleteImamQuestion, id)
		},
		func(ctx context.Context) (bool, error) {
			_, ok, err := store.One(ctx, g, store.OpGetImamQuestion, scanQuestion, id)
			return !ok, err
		},
	)
	if errors.Is(err, verify.ErrNotConfirmed) {
		s.logger.Warn(ctx, "question delete not confirmed", "question_id", id)
		return DeleteOutcome{Status: DeleteFailed, Reason: outcome.ReasonWriteNotApplied}, nil
	}
	if err != nil {
		return DeleteOutcome{}, err
	}

	s.logger.Info(ctx, "question deleted", "question_id", id)
	return DeleteOutcome{Status: Deleted}, nil
}
