package httpapi

import (
	"net/http"
	"strings"

	"github.com/masjidapp/backend/internal/auth"
	"github.com/masjidapp/backend/internal/users"
)

const minPasswordLength = 16

func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "store unavailable", "error", err)
	http.Error(w, "service unavailable", http.StatusServiceUnavailable)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	out, err := s.users.Login(r.Context(), users.Credentials{Username: req.Username, Secret: req.Password})
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	if out.Status != users.Authenticated {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := auth.NewToken(out.Subject, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(r.Context(), "token signing failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token})
}

func validRole(role string) bool {
	return role == "Admin" || role == "Imam"
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	switch {
	case req.FirstName == "" || req.LastName == "" || req.Username == "":
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	case !strings.Contains(req.Email, "@"):
		http.Error(w, "invalid email", http.StatusBadRequest)
		return
	case !validRole(req.Role):
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	case len(req.Password) < minPasswordLength:
		http.Error(w, "password too short", http.StatusBadRequest)
		return
	}

	acct := users.Account{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Role:        req.Role,
		Credentials: users.Credentials{Username: req.Username, Secret: req.Password},
	}

	out, err := s.users.Register(r.Context(), acct)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	switch out.Status {
	case users.Registered:
		w.WriteHeader(http.StatusOK)
	case users.AlreadyRegistered:
		http.Error(w, "user already registered", http.StatusConflict)
	default:
		http.Error(w, out.Reason.String(), http.StatusInternalServerError)
	}
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || len(req.ReplacementPassword) < minPasswordLength {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	out, err := s.users.ResetPassword(r.Context(), req.Username, req.ReplacementPassword)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	switch out.Status {
	case users.PasswordReset:
		w.WriteHeader(http.StatusOK)
	case users.UserNotFound:
		http.Error(w, "user does not exist", http.StatusNotFound)
	default:
		http.Error(w, out.Reason.String(), http.StatusInternalServerError)
	}
}
