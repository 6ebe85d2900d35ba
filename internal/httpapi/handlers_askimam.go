package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/masjidapp/backend/internal/askimam"
)

func questionToResponse(q askimam.Question) questionResponse {
	resp := questionResponse{
		ID:              q.ID,
		Title:           q.Title,
		Topic:           q.Topic,
		SchoolOfThought: q.SchoolOfThought,
		Description:     q.Description,
		DateOfQuestion:  q.DateAsked,
	}
	if q.Answer != nil {
		resp.Answer = &answerDTO{
			ImamName:     q.Answer.ImamName,
			Text:         q.Answer.Text,
			DateAnswered: q.Answer.DateAnswered,
		}
	}
	return resp
}

func (s *Server) listQuestions(w http.ResponseWriter, r *http.Request, f askimam.Filter) {
	list, err := s.askImam.List(r.Context(), f)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	resp := make([]questionResponse, 0, len(list))
	for _, q := range list {
		resp = append(resp, questionToResponse(q))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAnsweredQuestions(w http.ResponseWriter, r *http.Request) {
	f := askimam.Filter{
		Status:          askimam.AnsweredOnly,
		Topic:           r.URL.Query().Get("topic"),
		SchoolOfThought: r.URL.Query().Get("schoolOfThought"),
	}
	if f.SchoolOfThought != "" && !askimam.ValidSchool(f.SchoolOfThought) {
		http.Error(w, "invalid school of thought", http.StatusBadRequest)
		return
	}

	s.listQuestions(w, r, f)
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	f := askimam.Filter{
		Topic:           r.URL.Query().Get("topic"),
		SchoolOfThought: r.URL.Query().Get("schoolOfThought"),
	}
	switch r.URL.Query().Get("status") {
	case "":
		f.Status = askimam.AnyStatus
	case "answered":
		f.Status = askimam.AnsweredOnly
	case "unanswered":
		f.Status = askimam.UnansweredOnly
	default:
		http.Error(w, "invalid status filter", http.StatusBadRequest)
		return
	}
	if f.SchoolOfThought != "" && !askimam.ValidSchool(f.SchoolOfThought) {
		http.Error(w, "invalid school of thought", http.StatusBadRequest)
		return
	}

	s.listQuestions(w, r, f)
}

func (s *Server) handleSubmitQuestion(w http.ResponseWriter, r *http.Request) {
	var req askQuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" || req.Topic == "" || req.Description == "" {
		http.Error(w, "title, topic and description are required", http.StatusBadRequest)
		return
	}
	if req.SchoolOfThought != "" && !askimam.ValidSchool(req.SchoolOfThought) {
		http.Error(w, "invalid school of thought", http.StatusBadRequest)
		return
	}

	out, err := s.askImam.Submit(r.Context(), askimam.Draft{
		Title:           req.Title,
		Topic:           req.Topic,
		SchoolOfThought: req.SchoolOfThought,
		Description:     req.Description,
	})
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	if out.Status != askimam.Submitted {
		http.Error(w, out.Reason.String(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleAnswerQuestion(w http.ResponseWriter, r *http.Request) {
	var req answerQuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.QuestionID <= 0 || req.ImamName == "" || req.Text == "" {
		http.Error(w, "questionID, imamName and text are required", http.StatusBadRequest)
		return
	}

	out, err := s.askImam.Answer(r.Context(), req.QuestionID, askimam.Answer{
		ImamName: req.ImamName,
		Text:     req.Text,
	})
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	switch out.Status {
	case askimam.Answered:
		w.WriteHeader(http.StatusOK)
	case askimam.QuestionNotFound:
		http.Error(w, "question does not exist", http.StatusNotFound)
	default:
		http.Error(w, out.Reason.String(), http.StatusInternalServerError)
	}
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}

	out, err := s.askImam.Delete(r.Context(), id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	switch out.Status {
	case askimam.Deleted:
		w.WriteHeader(http.StatusOK)
	case askimam.DeleteQuestionNotFound:
		http.Error(w, "question does not exist", http.StatusNotFound)
	default:
		http.Error(w, out.Reason.String(), http.StatusInternalServerError)
	}
}
