package events

import "github.com/masjidapp/backend/internal/outcome"

// UpsertStatus is the closed set of upsert results. EventNotFound applies
// only to the update path, when no record exists at the submitted id.
type UpsertStatus int

const (
	Upserted UpsertStatus = iota
	EventNotFound
	UpsertFailed
)

// UpsertOutcome reports how an upsert ended. Reason is set only when Status
// is UpsertFailed.
type UpsertOutcome struct {
	Status UpsertStatus
	Reason outcome.Reason
}

// DeleteStatus is the closed set of delete results.
type DeleteStatus int

const (
	Deleted DeleteStatus = iota
	DeleteEventNotFound
	DeleteFailed
)

// DeleteOutcome reports how a delete ended. Reason is set only when Status is
// DeleteFailed.
type DeleteOutcome struct {
	Status DeleteStatus
	Reason outcome.Reason
}
