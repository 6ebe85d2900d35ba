// Package server initializes and runs the backend application: it opens the
// database, applies migrations, assembles the workflow services, and serves
// the HTTP endpoint until stopped.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/masjidapp/backend/internal/announcements"
	"github.com/masjidapp/backend/internal/askimam"
	"github.com/masjidapp/backend/internal/events"
	"github.com/masjidapp/backend/internal/httpapi"
	"github.com/masjidapp/backend/internal/logging"
	"github.com/masjidapp/backend/internal/migrations"
	"github.com/masjidapp/backend/internal/prayertimes"
	"github.com/masjidapp/backend/internal/server/config"
	"github.com/masjidapp/backend/internal/store"
	"github.com/masjidapp/backend/internal/users"
	"github.com/masjidapp/backend/internal/verify"
)

// prayerTimesMaxAttempts gives file uploads a longer confirmation budget
// than the configured default: the blob can be large and slow to land.
const prayerTimesMaxAttempts = 10

type App struct {
	config              *config.Config
	logger              logging.Logger
	db                  *sql.DB
	userService         *users.Service
	announcementService *announcements.Service
	prayerTimesService  *prayertimes.Service
	eventService        *events.Service
	askImamService      *askimam.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := migrations.Run(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	mode := store.PerCall
	if cfg.PersistentConnection {
		mode = store.Pinned
	}
	factory := store.NewFactory(db, mode)

	spec := verify.Spec{
		MaxAttempts: cfg.VerifyMaxAttempts,
		RetryDelay:  cfg.VerifyRetryDelay,
	}

	us := users.NewService(factory, spec, logger)
	as := announcements.NewService(factory, spec, logger)
	ps := prayertimes.NewService(factory,
		verify.Spec{MaxAttempts: prayerTimesMaxAttempts, RetryDelay: cfg.VerifyRetryDelay},
		logger)
	es := events.NewService(factory, spec, logger)
	qs := askimam.NewService(factory, spec, logger)

	return &App{
		config:              cfg,
		logger:              logger,
		db:                  db,
		userService:         us,
		announcementService: as,
		prayerTimesService:  ps,
		eventService:        es,
		askImamService:      qs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddr, app.logger,
		app.userService, app.announcementService, app.prayerTimesService,
		app.eventService, app.askImamService,
		app.config.SecretKey, app.config.TokenValidityDuration)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
