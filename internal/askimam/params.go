package askimam

import "time"

// Parameter structs for the question routines; the args order is the
// positional contract with the routine signatures.

// listParams feeds get_imam_questions(answered, topic, school_of_thought).
// Nil means the dimension is not filtered.
type listParams struct {
	answered *bool
	topic    *string
	school   *string
}

func (p listParams) args() []any {
	return []any{p.answered, p.topic, p.school}
}

// submitParams feeds submit_imam_question(title, topic, school_of_thought,
// description). A nil school stores the question untagged.
type submitParams struct {
	title       string
	topic       string
	school      *string
	description string
}

func (p submitParams) args() []any {
	return []any{p.title, p.topic, p.school, p.description}
}

// answerParams feeds answer_imam_question(imam_name, text, date_answered,
// question_id).
type answerParams struct {
	imamName     string
	text         string
	dateAnswered time.Time
	questionID   int64
}

func (p answerParams) args() []any {
	return []any{p.imamName, p.text, p.dateAnswered, p.questionID}
}
