package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/masjidapp/backend/internal/events"
)

func eventFromDTO(dto eventDTO) events.Event {
	e := events.Event{
		ID:           dto.ID,
		Title:        dto.Title,
		Description:  dto.Description,
		Date:         dto.Date,
		Type:         dto.EventDetails.EventType,
		Recurrence:   dto.EventDetails.EventRecurrence,
		Status:       dto.EventDetails.EventStatus,
		ImageURL:     dto.EventDetails.ImageURL,
		ContactName:  dto.EventDetails.ContactDetails.FullName,
		ContactPhone: dto.EventDetails.ContactDetails.PhoneNumber,
		ContactEmail: dto.EventDetails.ContactDetails.Email,
	}
	if r := dto.EventDetails.AgeRange; r != nil {
		minAge, maxAge := r.MinimumAge, r.MaximumAge
		e.MinimumAge, e.MaximumAge = &minAge, &maxAge
	}
	return e
}

func eventToDTO(e events.Event) eventDTO {
	dto := eventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		EventDetails: eventDetailsDTO{
			EventType:       e.Type,
			EventRecurrence: e.Recurrence,
			EventStatus:     e.Status,
			ImageURL:        e.ImageURL,
			ContactDetails: contactDetailsDTO{
				FullName:    e.ContactName,
				PhoneNumber: e.ContactPhone,
				Email:       e.ContactEmail,
			},
		},
	}
	if e.MinimumAge != nil && e.MaximumAge != nil {
		dto.EventDetails.AgeRange = &ageRangeDTO{MinimumAge: *e.MinimumAge, MaximumAge: *e.MaximumAge}
	}
	return dto
}

func validEventDTO(dto eventDTO) bool {
	if dto.ID < 0 || len(dto.Title) < 4 || dto.Date.IsZero() {
		return false
	}
	d := dto.EventDetails
	if !events.ValidType(d.EventType) || !events.ValidRecurrence(d.EventRecurrence) || !events.ValidStatus(d.EventStatus) {
		return false
	}
	if r := d.AgeRange; r != nil && (r.MinimumAge < 0 || r.MinimumAge > r.MaximumAge) {
		return false
	}
	return d.ContactDetails.FullName != "" && d.ContactDetails.PhoneNumber != ""
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := s.events.List(r.Context())
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	resp := make([]eventDTO, 0, len(list))
	for _, e := range list {
		resp = append(resp, eventToDTO(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpsertEvent(w http.ResponseWriter, r *http.Request) {
	var dto eventDTO
	if !decodeJSON(w, r, &dto) {
		return
	}
	if !validEventDTO(dto) {
		http.Error(w, "invalid event", http.StatusBadRequest)
		return
	}

	out, err := s.events.Upsert(r.Context(), eventFromDTO(dto))
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	switch out.Status {
	case events.Upserted:
		w.WriteHeader(http.StatusOK)
	case events.EventNotFound:
		http.Error(w, "event does not exist", http.StatusNotFound)
	default:
		http.Error(w, out.Reason.String(), http.StatusInternalServerError)
	}
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	out, err := s.events.Delete(r.Context(), id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	switch out.Status {
	case events.Deleted:
		w.WriteHeader(http.StatusOK)
	case events.DeleteEventNotFound:
		http.Error(w, "event does not exist", http.StatusNotFound)
	default:
		http.Error(w, out.Reason.String(), http.StatusInternalServerError)
	}
}
