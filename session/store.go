package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

const (
	cookieName    = "admin_session"
	authenticated = "authenticated"
)

// State is the admin session as seen by one request.
type State struct {
	Verified bool
}

func (s State) IsVerified() bool {
	return s.Verified
}

// Store keeps the admin flag in a signed cookie.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore returns a store whose cookie lives for the browser session.
func NewStore(secret string, secure bool) *Store {
	cookies := sessions.NewCookieStore([]byte(secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   0,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return &Store{cookies: cookies}
}

// Load never fails: a missing, expired or tampered cookie is an unverified state.
func (s *Store) Load(r *http.Request) State {
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		log.Debug().Err(err).Msg("discarding unreadable admin session")
		return State{}
	}
	verified, _ := sess.Values[authenticated].(bool)
	return State{Verified: verified}
}

// Verify marks the browser session as an authenticated admin.
func (s *Store) Verify(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, cookieName)
	sess.Values[authenticated] = true
	return sess.Save(r, w)
}

// Clear removes the admin flag and expires the cookie.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, cookieName)
	delete(sess.Values, authenticated)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
