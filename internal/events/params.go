package events

// upsertParams feeds upsert_event(id, title, description, date, type,
// recurrence, status, minimum_age, maximum_age, image_url, contact_name,
// contact_phone, contact_email). Id zero asks the routine to insert.
type upsertParams struct {
	event Event
}

func (p upsertParams) args() []any {
	e := p.event
	return []any{e.ID, e.Title, e.Description, e.Date,
		e.Type, e.Recurrence, e.Status, e.MinimumAge, e.MaximumAge,
		e.ImageURL, e.ContactName, e.ContactPhone, e.ContactEmail}
}
