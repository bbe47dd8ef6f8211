package views

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/session"
	"golang.org/x/sync/errgroup"
)

type homePage struct {
	Page
	Hero *models.HeroContent
}

type aboutPage struct {
	Page
	Sections []models.AboutSection
}

type skillsPage struct {
	Page
	Skills       []models.Skill
	Certificates []models.Certificate
	Projects     []models.Project
}

type contactPage struct {
	Page
	GoogleMapsKey string
	Name          string
	Email         string
	Message       string
}

type loginPage struct {
	Page
	Username string
}

type dashboardStats struct {
	Projects      int64
	Skills        int64
	Certificates  int64
	Messages      int64
	AboutSections int64
}

type dashboardPage struct {
	Page
	Stats dashboardStats
}

// home renders the hero. A missing hero row is shown as an empty state, not a failure.
func (s *Site) home(w http.ResponseWriter, r *http.Request) {
	page := homePage{Page: newPage(r, "Home", s.store.Load(r))}

	hero, err := s.db.Hero().GetOne(r.Context(), map[string]any{"section": models.HeroSection})
	if err != nil {
		s.logger.Warn().Err(err).Msg("hero content unavailable")
		page.Notice = &Notice{Kind: errs.KindNotFound, Message: "No content found"}
		s.view.render(w, http.StatusNotFound, "home", page)
		return
	}

	page.Hero = hero
	s.view.render(w, http.StatusOK, "home", page)
}

func (s *Site) aboutPage(w http.ResponseWriter, r *http.Request) {
	page := aboutPage{Page: newPage(r, "About", s.store.Load(r))}

	sections, err := s.db.PublicAboutSections().List(r.Context())
	if err != nil {
		s.view.renderError(w, r, page.State, err)
		return
	}

	page.Sections = sections
	s.view.render(w, http.StatusOK, "about", page)
}

func (s *Site) skillsPage(w http.ResponseWriter, r *http.Request) {
	page := skillsPage{Page: newPage(r, "Skills", s.store.Load(r))}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		page.Skills, err = s.db.Skills().List(ctx)
		return err
	})
	g.Go(func() (err error) {
		page.Certificates, err = s.db.Certificates().List(ctx)
		return err
	})
	g.Go(func() (err error) {
		page.Projects, err = s.db.PublicProjects().List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.view.renderError(w, r, page.State, err)
		return
	}

	s.view.render(w, http.StatusOK, "skills", page)
}

func (s *Site) contactPage(w http.ResponseWriter, r *http.Request) {
	page := contactPage{Page: newPage(r, "Contact", s.store.Load(r)), GoogleMapsKey: s.googleMapsKey}
	if r.URL.Query().Get("sent") == "1" {
		page.Notice = successNotice("Message sent successfully!")
	}
	s.view.render(w, http.StatusOK, "contact", page)
}

func (s *Site) submitContact(w http.ResponseWriter, r *http.Request) {
	page := contactPage{Page: newPage(r, "Contact", s.store.Load(r)), GoogleMapsKey: s.googleMapsKey}
	if err := r.ParseForm(); err != nil {
		page.Notice = errorNotice(errs.NewBadRequestError("could not parse form"))
		s.view.render(w, http.StatusBadRequest, "contact", page)
		return
	}

	msg := models.ContactMessage{
		Name:    strings.TrimSpace(r.PostForm.Get("name")),
		Email:   strings.TrimSpace(r.PostForm.Get("email")),
		Message: strings.TrimSpace(r.PostForm.Get("message")),
	}
	page.Name, page.Email, page.Message = msg.Name, msg.Email, msg.Message

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		err := errs.NewValidationError("contacts", "", errors.New("name, email and message are required"))
		page.Notice = errorNotice(err)
		s.view.render(w, statusFor(err), "contact", page)
		return
	}

	saved, err := s.db.Contacts().Create(r.Context(), &msg)
	if err != nil {
		s.logger.Error().Err(err).Msg("error storing contact message")
		page.Notice = &Notice{Kind: errs.Kind(err), Message: "Something went wrong, please try again."}
		s.view.render(w, http.StatusInternalServerError, "contact", page)
		return
	}

	if err := s.notifier.NotifyContact(r.Context(), *saved); err != nil {
		s.logger.Warn().Err(err).Msg("contact notification failed")
	}
	redirect(w, "/contact?sent=1")
}

func (s *Site) loginPage(w http.ResponseWriter, r *http.Request) {
	state := s.store.Load(r)
	if state.IsVerified() {
		redirect(w, "/dashboard")
		return
	}
	s.view.render(w, http.StatusOK, "login", loginPage{Page: newPage(r, "Login", state)})
}

func (s *Site) login(w http.ResponseWriter, r *http.Request) {
	page := loginPage{Page: newPage(r, "Login", session.State{})}
	if err := r.ParseForm(); err != nil {
		page.Notice = errorNotice(errs.NewBadRequestError("could not parse form"))
		s.view.render(w, http.StatusBadRequest, "login", page)
		return
	}
	page.Username = r.PostForm.Get("username")

	if err := s.credentials.Check(page.Username, r.PostForm.Get("password")); err != nil {
		page.Notice = &Notice{Kind: errs.KindAuth, Message: "Invalid credentials"}
		s.view.render(w, http.StatusUnauthorized, "login", page)
		return
	}

	if err := s.store.Verify(w, r); err != nil {
		s.view.renderError(w, r, session.State{}, errs.NewInternalErrorWithCause("could not save session", err))
		return
	}
	redirect(w, "/dashboard")
}

func (s *Site) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(w, r); err != nil {
		s.logger.Warn().Err(err).Msg("error clearing session")
	}
	redirect(w, "/")
}

func (s *Site) dashboard(w http.ResponseWriter, r *http.Request, state session.State) {
	page := dashboardPage{Page: newPage(r, "Dashboard", state)}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		page.Stats.Projects, err = s.db.Projects().Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		page.Stats.Skills, err = s.db.Skills().Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		page.Stats.Certificates, err = s.db.Certificates().Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		page.Stats.Messages, err = s.db.Contacts().Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		page.Stats.AboutSections, err = s.db.AboutSections().Count(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.view.renderError(w, r, state, err)
		return
	}

	s.view.render(w, http.StatusOK, "dashboard", page)
}
