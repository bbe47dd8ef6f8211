package api

import (
	"encoding/json"
	"net/http"

	"github.com/rpupo63/portfolio-site/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type loginHandler struct {
	responder   Responder
	logger      zerolog.Logger
	credentials session.Credentials
	store       *session.Store
}

func newLoginHandler(credentials session.Credentials, store *session.Store) loginHandler {
	logger := log.With().Str("handlerName", "loginHandler").Logger()

	return loginHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		credentials: credentials,
		store:       store,
	}
}

// login checks the shared admin credential and opens the admin session.
func (h loginHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteJSON(w, http.StatusBadRequest, LoginResponse{Success: false, Message: "Invalid request body"})
			return
		}

		if err := h.credentials.Check(req.Username, req.Password); err != nil {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("failed admin login")
			h.responder.WriteJSON(w, http.StatusUnauthorized, LoginResponse{Success: false, Message: "Invalid credentials"})
			return
		}

		if err := h.store.Verify(w, r); err != nil {
			h.logger.Error().Err(err).Msg("error saving admin session")
			h.responder.WriteJSON(w, http.StatusInternalServerError, LoginResponse{Success: false, Message: "Could not start session"})
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, LoginResponse{Success: true, Message: "Login successful"})
	}
}
