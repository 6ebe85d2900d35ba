package announcements

import "github.com/masjidapp/backend/internal/outcome"

// PostStatus is the closed set of post results.
type PostStatus int

const (
	Posted PostStatus = iota
	PostFailed
)

// PostOutcome reports how posting ended. Reason is set only when Status is
// PostFailed.
type PostOutcome struct {
	Status PostStatus
	Reason outcome.Reason
}

// EditStatus is the closed set of edit results. NoOpEdit means the submitted
// values equal the stored record, so there was nothing to write; EditFailed
// means the write went out but the read-back never showed a change.
type EditStatus int

const (
	Edited EditStatus = iota
	AnnouncementNotFound
	NoOpEdit
	EditFailed
)

// EditOutcome reports how an edit ended. Reason is set only when Status is
// EditFailed.
type EditOutcome struct {
	Status EditStatus
	Reason outcome.Reason
}
