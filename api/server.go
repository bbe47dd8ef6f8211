package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rpupo63/portfolio-site/session"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database, settings *config.Settings, opts ...func(*router)) (Server, error) {
	startupTime := time.Now()

	opts = append([]func(*router){withSettings(settings), withStartupTime(startupTime)}, opts...)
	handler, err := newRouter(db, opts...)
	if err != nil {
		return Server{}, err
	}

	server := &http.Server{
		Addr:         settings.Addr(),
		Handler:      handler,
		ReadTimeout:  settings.ReadTimeout,
		WriteTimeout: settings.WriteTimeout,
		IdleTimeout:  settings.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	settings    *config.Settings
	startupTime time.Time
	notifier    services.ContactNotifier
	csrf        bool
}

func withSettings(s *config.Settings) func(*router) {
	return func(r *router) {
		r.settings = s
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// WithNotifier sets where contact form submissions are forwarded.
func WithNotifier(n services.ContactNotifier) func(*router) {
	return func(r *router) {
		r.notifier = n
	}
}

// withoutCSRF turns off the form token check, for tests that post forms directly.
func withoutCSRF() func(*router) {
	return func(r *router) {
		r.csrf = false
	}
}

func newRouter(db database.Database, opts ...func(*router)) (*chi.Mux, error) {
	router := router{csrf: true}
	for _, opt := range opts {
		opt(&router)
	}
	settings := router.settings

	store := session.NewStore(settings.SessionSecret, settings.CookieSecure)
	credentials := session.Credentials{Username: settings.AdminUsername, Password: settings.AdminPassword}

	site, err := views.New(views.Config{
		DB:            db,
		Store:         store,
		Credentials:   credentials,
		Notifier:      router.notifier,
		GoogleMapsKey: settings.GoogleMapsKey,
	})
	if err != nil {
		return nil, err
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(ColoredHTTPLoggingMiddleware)

	chiRouter.Get("/healthz", healthHandler(router.startupTime))

	handlers := initializeHandlers(db, credentials, store)
	setupAPIRoutes(chiRouter, handlers, newAdminMiddleware(store), settings.AcceptedOrigins)

	chiRouter.Group(func(r chi.Router) {
		if router.csrf {
			r.Use(csrfMiddleware(settings.CSRFKey, settings.CookieSecure))
		}
		site.Mount(r)
	})

	return chiRouter, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
