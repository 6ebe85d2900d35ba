package askimam

import (
	"database/sql"
	"time"

	"github.com/masjidapp/backend/internal/store"
)

// Closed vocabulary for the optional school-of-thought tag on a question.
var schools = map[string]bool{"hanafi": true, "shaafi": true, "maliki": true, "hanbali": true}

func ValidSchool(s string) bool { return schools[s] }

// Answer is an imam's reply to a question. DateAnswered is set when the
// answer is recorded.
type Answer struct {
	ImamName     string
	Text         string
	DateAnswered time.Time
}

// Question is a community question for the imam. ID and DateAsked are
// assigned by the store on submission; Answer is nil until one is recorded.
// SchoolOfThought is empty when the asker did not tag one.
type Question struct {
	ID              int64
	Title           string
	Topic           string
	SchoolOfThought string
	Description     string
	DateAsked       time.Time
	Answer          *Answer
}

// Draft carries the asker-supplied fields of a new question.
type Draft struct {
	Title           string
	Topic           string
	SchoolOfThought string
	Description     string
}

// contentEquals compares the asker-supplied fields only, so a submitted draft
// can be matched against stored rows regardless of assigned id and date.
func (q Question) contentEquals(d Draft) bool {
	return q.Title == d.Title &&
		q.Topic == d.Topic &&
		q.SchoolOfThought == d.SchoolOfThought &&
		q.Description == d.Description
}

// answeredBy reports whether the stored answer matches the submitted one.
// The recorded date is excluded: the store assigns its own precision.
func (q Question) answeredBy(a Answer) bool {
	return q.Answer != nil &&
		q.Answer.ImamName == a.ImamName &&
		q.Answer.Text == a.Text
}

func scanQuestion(r store.RowScanner) (Question, error) {
	var q Question
	var school, imamName, answerText sql.NullString
	var dateAnswered sql.NullTime
	err := r.Scan(&q.ID, &q.Title, &q.Topic, &school, &q.Description,
		&q.DateAsked, &imamName, &answerText, &dateAnswered)
	if err != nil {
		return Question{}, err
	}
	q.SchoolOfThought = school.String
	if imamName.Valid && answerText.Valid && dateAnswered.Valid {
		q.Answer = &Answer{
			ImamName:     imamName.String,
			Text:         answerText.String,
			DateAnswered: dateAnswered.Time,
		}
	}
	return q, nil
}
