package askimam

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masjidapp/backend/internal/logging"
	"github.com/masjidapp/backend/internal/outcome"
	"github.com/masjidapp/backend/internal/store"
	"github.com/masjidapp/backend/internal/verify"
)

// --- helpers ---

func newTestLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeRow struct {
	q Question
}

func (f fakeRow) Scan(dest ...any) error {
	*(dest[0].(*int64)) = f.q.ID
	*(dest[1].(*string)) = f.q.Title
	*(dest[2].(*string)) = f.q.Topic
	if f.q.SchoolOfThought != "" {
		*(dest[3].(*sql.NullString)) = sql.NullString{String: f.q.SchoolOfThought, Valid: true}
	}
	*(dest[4].(*string)) = f.q.Description
	*(dest[5].(*time.Time)) = f.q.DateAsked
	if f.q.Answer != nil {
		*(dest[6].(*sql.NullString)) = sql.NullString{String: f.q.Answer.ImamName, Valid: true}
		*(dest[7].(*sql.NullString)) = sql.NullString{String: f.q.Answer.Text, Valid: true}
		*(dest[8].(*sql.NullTime)) = sql.NullTime{Time: f.q.Answer.DateAnswered, Valid: true}
	}
	return nil
}

type fakeGateway struct {
	// rows served to QueryOne/QueryMany; tests swap it to simulate the
	// store's visible state before and after the write.
	rows []Question

	execFn    func(op store.Op, args ...any) error
	execCalls int
	readCalls int
	closed    bool
}

func (f *fakeGateway) Count(ctx context.Context, op store.Op, args ...any) (int, error) {
	return 0, errors.New("unexpected Count")
}

func (f *fakeGateway) Exec(ctx context.Context, op store.Op, args ...any) error {
	f.execCalls++
	if f.execFn == nil {
		return nil
	}
	return f.execFn(op, args...)
}

func (f *fakeGateway) QueryOne(ctx context.Context, op store.Op, scan func(store.RowScanner) error, args ...any) (bool, error) {
	f.readCalls++
	id := args[0].(int64)
	for _, q := range f.rows {
		if q.ID == id {
			return true, scan(fakeRow{q: q})
		}
	}
	return false, nil
}

// QueryMany applies the (answered, topic, school) filter args the listing
// routine takes, so filter behavior is observable through the fake.
func (f *fakeGateway) QueryMany(ctx context.Context, op store.Op, scan func(store.RowScanner) error, args ...any) error {
	f.readCalls++
	answered := args[0].(*bool)
	topic := args[1].(*string)
	school := args[2].(*string)

	for _, q := range f.rows {
		if answered != nil && *answered != (q.Answer != nil) {
			continue
		}
		if topic != nil && q.Topic != *topic {
			continue
		}
		if school != nil && q.SchoolOfThought != *school {
			continue
		}
		if err := scan(fakeRow{q: q}); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeGateway) Close() error {
	f.closed = true
	return nil
}

type fakeOpener struct {
	g store.Gateway
}

func (f *fakeOpener) Open(ctx context.Context) (store.Gateway, error) {
	return f.g, nil
}

func newAskImamService(t *testing.T, g store.Gateway, maxAttempts uint64) *Service {
	t.Helper()
	spec := verify.Spec{MaxAttempts: maxAttempts, RetryDelay: time.Millisecond}
	return NewService(&fakeOpener{g: g}, spec, newTestLogger())
}

func unanswered(id int64, title, topic string) Question {
	return Question{
		ID:          id,
		Title:       title,
		Topic:       topic,
		Description: "details of " + title,
		DateAsked:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func answered(id int64, title, topic string) Question {
	q := unanswered(id, title, topic)
	q.Answer = &Answer{
		ImamName:     "Zayd",
		Text:         "answer to " + title,
		DateAnswered: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
	}
	return q
}

// --- list ---

func TestList_Filters(t *testing.T) {
	withSchool := unanswered(4, "wudu question", "fiqh")
	withSchool.SchoolOfThought = "hanafi"

	g := &fakeGateway{rows: []Question{
		answered(1, "fasting question", "ramadan"),
		unanswered(2, "zakat question", "zakat"),
		unanswered(3, "prayer question", "salah"),
		withSchool,
	}}
	s := newAskImamService(t, g, 1)

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []int64
	}{
		{"all", Filter{}, []int64{1, 2, 3, 4}},
		{"answered only", Filter{Status: AnsweredOnly}, []int64{1}},
		{"unanswered only", Filter{Status: UnansweredOnly}, []int64{2, 3, 4}},
		{"by topic", Filter{Topic: "zakat"}, []int64{2}},
		{"by school", Filter{Status: UnansweredOnly, SchoolOfThought: "hanafi"}, []int64{4}},
		{"no match", Filter{Topic: "inheritance"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listed, err := s.List(context.Background(), tt.filter)
			require.NoError(t, err)
			require.NotNil(t, listed)

			ids := make([]int64, 0, len(listed))
			for _, q := range listed {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

// --- submit ---

func TestSubmit_Confirmed(t *testing.T) {
	g := &fakeGateway{}
	g.execFn = func(op store.Op, args ...any) error {
		require.Equal(t, store.OpSubmitImamQuestion, op)
		q := Question{
			ID:          1,
			Title:       args[0].(string),
			Topic:       args[1].(string),
			Description: args[3].(string),
			DateAsked:   time.Now(),
		}
		if school := args[2].(*string); school != nil {
			q.SchoolOfThought = *school
		}
		g.rows = append(g.rows, q)
		return nil
	}
	s := newAskImamService(t, g, 1)

	d := Draft{Title: "fasting question", Topic: "ramadan", SchoolOfThought: "hanafi", Description: "details"}
	out, err := s.Submit(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, Submitted, out.Status)
	assert.Equal(t, 1, g.execCalls)
}

func TestSubmit_NeverVisible(t *testing.T) {
	g := &fakeGateway{}
	s := newAskImamService(t, g, 3)

	out, err := s.Submit(context.Background(), Draft{Title: "fasting question", Topic: "ramadan"})
	require.NoError(t, err)
	assert.Equal(t, SubmitFailed, out.Status)
	assert.Equal(t, outcome.ReasonVerificationTimedOut, out.Reason)
	assert.Equal(t, 1, g.execCalls)
	assert.Equal(t, 3, g.readCalls)
}

// --- answer ---

func TestAnswer_NotFound(t *testing.T) {
	g := &fakeGateway{}
	s := newAskImamService(t, g, 1)

	out, err := s.Answer(context.Background(), 7, Answer{ImamName: "Zayd", Text: "reply"})
	require.NoError(t, err)
	assert.Equal(t, QuestionNotFound, out.Status)
	assert.Equal(t, 0, g.execCalls)
}

func TestAnswer_Confirmed(t *testing.T) {
	g := &fakeGateway{rows: []Question{unanswered(1, "fasting question", "ramadan")}}
	g.execFn = func(op store.Op, args ...any) error {
		require.Equal(t, store.OpAnswerImamQuestion, op)
		g.rows[0].Answer = &Answer{
			ImamName:     args[0].(string),
			Text:         args[1].(string),
			DateAnswered: args[2].(time.Time),
		}
		require.Equal(t, int64(1), args[3].(int64))
		return nil
	}
	s := newAskImamService(t, g, 1)

	out, err := s.Answer(context.Background(), 1, Answer{ImamName: "Zayd", Text: "a considered reply"})
	require.NoError(t, err)
	assert.Equal(t, Answered, out.Status)
	require.NotNil(t, g.rows[0].Answer)
	assert.False(t, g.rows[0].Answer.DateAnswered.IsZero())
}

func TestAnswer_ReplacesEarlierAnswer(t *testing.T) {
	g := &fakeGateway{rows: []Question{answered(1, "fasting question", "ramadan")}}
	g.execFn = func(op store.Op, args ...any) error {
		g.rows[0].Answer = &Answer{
			ImamName:     args[0].(string),
			Text:         args[1].(string),
			DateAnswered: args[2].(time.Time),
		}
		return nil
	}
	s := newAskImamService(t, g, 1)

	out, err := s.Answer(context.Background(), 1, Answer{ImamName: "Hamza", Text: "a fuller reply"})
	require.NoError(t, err)
	assert.Equal(t, Answered, out.Status)
	assert.Equal(t, "Hamza", g.rows[0].Answer.ImamName)
}

func TestAnswer_WriteSilentlyDropped(t *testing.T) {
	g := &fakeGateway{rows: []Question{unanswered(1, "fasting question", "ramadan")}}
	s := newAskImamService(t, g, 2)

	out, err := s.Answer(context.Background(), 1, Answer{ImamName: "Zayd", Text: "reply"})
	require.NoError(t, err)
	assert.Equal(t, AnswerFailed, out.Status)
	assert.Equal(t, outcome.ReasonWriteNotApplied, out.Reason)
	assert.Equal(t, 1, g.execCalls)
}

// --- delete ---

func TestDelete_NotFound(t *testing.T) {
	g := &fakeGateway{}
	s := newAskImamService(t, g, 1)

	out, err := s.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, DeleteQuestionNotFound, out.Status)
	assert.Equal(t, 0, g.execCalls)
}

func TestDelete_Confirmed(t *testing.T) {
	g := &fakeGateway{rows: []Question{unanswered(1, "fasting question", "ramadan")}}
	g.execFn = func(op store.Op, args ...any) error {
		require.Equal(t, store.OpDeleteImamQuestion, op)
		g.rows = nil
		return nil
	}
	s := newAskImamService(t, g, 1)

	out, err := s.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, Deleted, out.Status)
	assert.Empty(t, g.rows)
}

func TestDelete_RowStillPresent(t *testing.T) {
	g := &fakeGateway{rows: []Question{unanswered(1, "fasting question", "ramadan")}}
	s := newAskImamService(t, g, 2)

	out, err := s.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, DeleteFailed, out.Status)
	assert.Equal(t, outcome.ReasonWriteNotApplied, out.Reason)
	assert.Equal(t, 1, g.execCalls)
}

// --- vocabulary ---

func TestValidSchool(t *testing.T) {
	assert.True(t, ValidSchool("hanafi"))
	assert.True(t, ValidSchool("hanbali"))
	assert.False(t, ValidSchool("other"))
}
