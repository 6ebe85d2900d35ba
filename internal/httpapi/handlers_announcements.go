package httpapi

import (
	"net/http"

	"github.com/masjidapp/backend/internal/announcements"
)

func (s *Server) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	list, err := s.announcements.List(r.Context())
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	resp := make([]announcementResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, announcementResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Image:       a.Image,
			DatePosted:  a.DatePosted,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePostAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req postAnnouncementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" || req.Description == "" {
		http.Error(w, "title and description are required", http.StatusBadRequest)
		return
	}

	out, err := s.announcements.Post(r.Context(), announcements.Draft{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	if out.Status != announcements.Posted {
		http.Error(w, out.Reason.String(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleEditAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req editAnnouncementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID <= 0 || req.Title == "" || req.Description == "" {
		http.Error(w, "id, title and description are required", http.StatusBadRequest)
		return
	}

	out, err := s.announcements.Edit(r.Context(), req.ID, req.Title, req.Description, req.Image)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	switch out.Status {
	case announcements.Edited:
		w.WriteHeader(http.StatusOK)
	case announcements.AnnouncementNotFound:
		http.Error(w, "announcement does not exist", http.StatusNotFound)
	case announcements.NoOpEdit:
		http.Error(w, "announcement already has this content", http.StatusConflict)
	default:
		http.Error(w, out.Reason.String(), http.StatusInternalServerError)
	}
}
