package announcements

import (
	"bytes"
	"time"

	"github.com/masjidapp/backend/internal/store"
)

// Announcement is a community announcement. ID and DatePosted are assigned by
// the store on creation and never change afterwards.
type Announcement struct {
	ID          int64
	Title       string
	Description string
	Image       []byte
	DatePosted  time.Time
}

// Draft carries the caller-supplied fields of a new announcement.
type Draft struct {
	Title       string
	Description string
	Image       []byte
}

// contentEquals compares the mutable fields only; ID and DatePosted are
// excluded so a pre-edit snapshot can be compared against submitted values.
func (a Announcement) contentEquals(title, description string, image []byte) bool {
	return a.Title == title &&
		a.Description == description &&
		bytes.Equal(a.Image, image)
}

func scanAnnouncement(r store.RowScanner) (Announcement, error) {
	var a Announcement
	err := r.Scan(&a.ID, &a.Title, &a.Description, &a.Image, &a.DatePosted)
	return a, err
}
