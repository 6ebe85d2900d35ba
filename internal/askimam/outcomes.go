package askimam

import "github.com/masjidapp/backend/internal/outcome"

// SubmitStatus is the closed set of submission results.
type SubmitStatus int

const (
	Submitted SubmitStatus = iota
	SubmitFailed
)

// SubmitOutcome reports how a submission ended. Reason is set only when
// Status is SubmitFailed.
type SubmitOutcome struct {
	Status SubmitStatus
	Reason outcome.Reason
}

// AnswerStatus is the closed set of answer-recording results.
type AnswerStatus int

const (
	Answered AnswerStatus = iota
	QuestionNotFound
	AnswerFailed
)

// AnswerOutcome reports how recording an answer ended. Reason is set only
// when Status is AnswerFailed.
type AnswerOutcome struct {
	Status AnswerStatus
	Reason outcome.Reason
}

// DeleteStatus is the closed set of delete results.
type DeleteStatus int

const (
	Deleted DeleteStatus = iota
	DeleteQuestionNotFound
	DeleteFailed
)

// DeleteOutcome reports how a delete ended. Reason is set only when Status is
// DeleteFailed.
type DeleteOutcome struct {
	Status DeleteStatus
	Reason outcome.Reason
}
