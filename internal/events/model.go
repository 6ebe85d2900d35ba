package events

import (
	"database/sql"
	"time"

	"github.com/masjidapp/backend/internal/store"
)

// Closed vocabularies for the event classification fields. The boundary
// rejects anything outside them before the workflow runs.
var (
	types       = map[string]bool{"talk": true, "social": true, "class": true}
	recurrences = map[string]bool{"one-off": true, "daily": true, "weekly": true, "fortnightly": true, "monthly": true}
	statuses    = map[string]bool{"confirmed": true, "cancelled": true}
)

func ValidType(s string) bool       { return types[s] }
func ValidRecurrence(s string) bool { return recurrences[s] }
func ValidStatus(s string) bool     { return statuses[s] }

// Event is a scheduled community event. ID is assigned by the store on
// creation; an Event submitted with ID zero requests creation, a positive ID
// replaces the stored record wholesale. The optional age bounds are either
// both set or both nil.
type Event struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time
	Type        string
	Recurrence  string
	Status      string
	MinimumAge  *int16
	MaximumAge  *int16
	ImageURL    string

	// Organiser contact details.
	ContactName  string
	ContactPhone string
	ContactEmail string
}

// contentEquals compares everything but ID, so a stored record can be checked
// against submitted values regardless of which id the store assigned.
func (e Event) contentEquals(o Event) bool {
	return e.Title == o.Title &&
		e.Description == o.Description &&
		e.Date.Equal(o.Date) &&
		e.Type == o.Type &&
		e.Recurrence == o.Recurrence &&
		e.Status == o.Status &&
		agesEqual(e.MinimumAge, o.MinimumAge) &&
		agesEqual(e.MaximumAge, o.MaximumAge) &&
		e.ImageURL == o.ImageURL &&
		e.ContactName == o.ContactName &&
		e.ContactPhone == o.ContactPhone &&
		e.ContactEmail == o.ContactEmail
}

func agesEqual(a, b *int16) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func scanEvent(r store.RowScanner) (Event, error) {
	var e Event
	var minAge, maxAge sql.NullInt16
	err := r.Scan(&e.ID, &e.Title, &e.Description, &e.Date,
		&e.Type, &e.Recurrence, &e.Status, &minAge, &maxAge,
		&e.ImageURL, &e.ContactName, &e.ContactPhone, &e.ContactEmail)
	if err != nil {
		return Event{}, err
	}
	if minAge.Valid {
		e.MinimumAge = &minAge.Int16
	}
	if maxAge.Valid {
		e.MaximumAge = &maxAge.Int16
	}
	return e, nil
}
