package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON sets the content type before the status line so it is not lost.
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteData writes a successful {data, error: null} envelope.
func (r Responder) WriteData(w http.ResponseWriter, data any) {
	r.WriteJSON(w, http.StatusOK, Envelope{Data: data})
}

// WriteEnvelopeError writes {data: null, error: message}. Missing ids are a
// client error and unauthenticated writes are 401; everything else is a 500.
func (r Responder) WriteEnvelopeError(w http.ResponseWriter, err error) {
	// The envelope only distinguishes these statuses; the error kind goes to the log
	status := http.StatusInternalServerError
	switch {
	case errs.IsMissingID(err):
		status = http.StatusBadRequest
	case errs.IsUnauthorized(err):
		status = http.StatusUnauthorized
	default:
		r.logError(err)
	}

	// Backend causes are passed through as the message
	msg := errs.Message(err)
	r.WriteJSON(w, status, Envelope{Data: nil, Error: &msg})
}

// WriteError writes the detailed error body used outside the resource envelope.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:  "Internal Server Error",
			Status: "error",
		})
		return
	}

	// Attach the chained causes when there are any
	response := ErrorResponse{
		Error:   apiErr.Error(),
		Status:  "error",
		Field:   apiErr.Field,
		Details: apiErr.Details,
	}
	if apiErr.Cause != nil {
		response.Cause = apiErr.GetFullError()
	}
	r.WriteJSON(w, apiErr.StatusCode, response)
}

func (r Responder) logError(err error) {
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		r.logger.Error().Str("kind", string(errs.Kind(err))).Msg(apiErr.GetFullError())
		return
	}
	r.logger.Error().Err(err).Msg("unexpected error")
}
