package views

import (
	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rpupo63/portfolio-site/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config is everything the HTML side of the site depends on.
type Config struct {
	DB            database.Database
	Store         *session.Store
	Credentials   session.Credentials
	Notifier      services.ContactNotifier
	GoogleMapsKey string
}

// Site serves the public pages and the admin dashboard.
type Site struct {
	db            database.Database
	store         *session.Store
	gate          *session.Gate
	credentials   session.Credentials
	notifier      services.ContactNotifier
	googleMapsKey string
	view          *renderer
	logger        zerolog.Logger

	about    *Manager[models.AboutSection]
	projects *Manager[models.Project]
}

func New(cfg Config) (*Site, error) {
	logger := log.With().Str("handlerName", "site").Logger()

	view, err := newRenderer(logger)
	if err != nil {
		return nil, err
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = services.NopNotifier{}
	}

	return &Site{
		db:            cfg.DB,
		store:         cfg.Store,
		gate:          session.NewGate(cfg.Store, "/login"),
		credentials:   cfg.Credentials,
		notifier:      notifier,
		googleMapsKey: cfg.GoogleMapsKey,
		view:          view,
		logger:        logger,
		about:         NewManager(aboutResource(cfg.DB.AboutSections()), view),
		projects:      NewManager(projectResource(cfg.DB.Projects()), view),
	}, nil
}

// Mount registers every HTML route on r.
func (s *Site) Mount(r chi.Router) {
	r.Get("/", s.home)
	r.Get("/about", s.aboutPage)
	r.Get("/skills", s.skillsPage)
	r.Get("/contact", s.contactPage)
	r.Post("/contact", s.submitContact)

	r.Get("/login", s.loginPage)
	r.Post("/login", s.login)
	r.Post("/logout", s.logout)

	r.Get("/dashboard", s.gate.Protect(s.dashboard))
	s.about.Mount(r, s.gate)
	s.projects.Mount(r, s.gate)
}
