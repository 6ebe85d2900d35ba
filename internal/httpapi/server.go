// Package httpapi is the HTTP boundary. It binds requests, guards mutating
// routes with session tokens, and translates workflow outcomes into status
// codes. No business decision is made here.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/masjidapp/backend/internal/announcements"
	"github.com/masjidapp/backend/internal/askimam"
	"github.com/masjidapp/backend/internal/events"
	"github.com/masjidapp/backend/internal/logging"
	"github.com/masjidapp/backend/internal/prayertimes"
	"github.com/masjidapp/backend/internal/users"
)

const shutdownTimeout = 5 * time.Second

// UserService is the slice of the authentication workflow the boundary needs.
type UserService interface {
	Register(ctx context.Context, acct users.Account) (users.RegistrationOutcome, error)
	Login(ctx context.Context, creds users.Credentials) (users.LoginOutcome, error)
	ResetPassword(ctx context.Context, username, newSecret string) (users.ResetOutcome, error)
}

type AnnouncementService interface {
	List(ctx context.Context) ([]announcements.Announcement, error)
	Post(ctx context.Context, draft announcements.Draft) (announcements.PostOutcome, error)
	Edit(ctx context.Context, id int64, title, description string, image []byte) (announcements.EditOutcome, error)
}

type PrayerTimesService interface {
	Fetch(ctx context.Context) ([]byte, bool, error)
	Update(ctx context.Context, data []byte) (prayertimes.UpdateOutcome, error)
}

type EventService interface {
	List(ctx context.Context) ([]events.Event, error)
	Upsert(ctx context.Context, e events.Event) (events.UpsertOutcome, error)
	Delete(ctx context.Context, id int64) (events.DeleteOutcome, error)
}

type AskImamService interface {
	List(ctx context.Context, f askimam.Filter) ([]askimam.Question, error)
	Submit(ctx context.Context, d askimam.Draft) (askimam.SubmitOutcome, error)
	Answer(ctx context.Context, id int64, a askimam.Answer) (askimam.AnswerOutcome, error)
	Delete(ctx context.Context, id int64) (askimam.DeleteOutcome, error)
}

type Server struct {
	address       string
	logger        logging.Logger
	users         UserService
	announcements AnnouncementService
	prayerTimes   PrayerTimesService
	events        EventService
	askImam       AskImamService
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewServer(address string, logger logging.Logger, us UserService, as AnnouncementService, ps PrayerTimesService, es EventService, qs AskImamService, secretKey string, tokenValidity time.Duration) *Server {
	return &Server{
		address:       address,
		logger:        logger.With("module", "http_server"),
		users:         us,
		announcements: as,
		prayerTimes:   ps,
		events:        es,
		askImam:       qs,
		jwtSecret:     []byte(secretKey),
		tokenValidity: tokenValidity,
	}
}

// Router assembles the route tree. Exposed separately from Run so tests can
// drive it with httptest.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/authentication/login", s.handleLogin)

		r.Get("/announcements", s.handleListAnnouncements)
		r.Get("/prayer-times", s.handleGetPrayerTimes)
		r.Get("/events", s.handleListEvents)
		r.Get("/imam/questions/answered", s.handleListAnsweredQuestions)
		r.Post("/imam/questions", s.handleSubmitQuestion)

		r.Group(func(r chi.Router) {
			r.Use(s.requireToken)

			r.Post("/authentication/register", s.handleRegister)
			r.Patch("/authentication/reset-password", s.handleResetPassword)
			r.Post("/announcements", s.handlePostAnnouncement)
			r.Patch("/announcements", s.handleEditAnnouncement)
			r.Put("/prayer-times", s.handleUpdatePrayerTimes)
			r.Put("/events", s.handleUpsertEvent)
			r.Delete("/events/{id}", s.handleDeleteEvent)
			r.Get("/imam/questions", s.handleListQuestions)
			r.Patch("/imam/questions", s.handleAnswerQuestion)
			r.Delete("/imam/questions/{id}", s.handleDeleteQuestion)
		})
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
