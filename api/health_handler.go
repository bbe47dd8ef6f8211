package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

func healthHandler(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthHandler").Logger())

	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:    "ok",
			StartedAt: startupTime.UTC(),
			Uptime:    time.Since(startupTime).Round(time.Second).String(),
		})
	}
}
