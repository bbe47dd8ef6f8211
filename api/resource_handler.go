package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// resourceHandler exposes one table as GET/POST/PUT/DELETE on a single path.
type resourceHandler[T any] struct {
	responder Responder
	logger    zerolog.Logger
	table     *database.Table[T]
}

func newResourceHandler[T any](name string, table *database.Table[T]) resourceHandler[T] {
	logger := log.With().Str("handlerName", name).Logger()

	return resourceHandler[T]{
		responder: NewResponder(logger),
		logger:    logger,
		table:     table,
	}
}

func (h resourceHandler[T]) name() string {
	return h.table.Descriptor().Table
}

// list returns every row in presentation order.
func (h resourceHandler[T]) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := h.table.List(r.Context())
		if err != nil {
			h.responder.WriteEnvelopeError(w, err)
			return
		}
		h.responder.WriteData(w, rows)
	}
}

// create inserts the body as a new row. Any id in the body is ignored.
// Column values must already have their stored type; unlike update, nothing
// is coerced here.
func (h resourceHandler[T]) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		// Keys that are not columns of the table are rejected, same as update
		dec.DisallowUnknownFields()

		var row T
		if err := dec.Decode(&row); err != nil {
			h.responder.WriteEnvelopeError(w, errs.NewValidationError(h.name(), "", err))
			return
		}

		created, err := h.table.Create(r.Context(), &row)
		if err != nil {
			h.responder.WriteEnvelopeError(w, err)
			return
		}
		h.responder.WriteData(w, []T{*created})
	}
}

// update applies the body, minus its id, as a partial update.
func (h resourceHandler[T]) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()

		var payload map[string]any
		if err := dec.Decode(&payload); err != nil {
			h.responder.WriteEnvelopeError(w, errs.NewValidationError(h.name(), "", err))
			return
		}

		// The id selects the row and is never written back
		id := extractID(payload["id"])
		if id == "" {
			h.responder.WriteEnvelopeError(w, errs.NewMissingIDError())
			return
		}
		delete(payload, "id")

		updated, err := h.table.Update(r.Context(), id, payload)
		if err != nil {
			h.responder.WriteEnvelopeError(w, err)
			return
		}
		h.responder.WriteData(w, []T{*updated})
	}
}

// remove deletes the row named by the id query parameter.
func (h resourceHandler[T]) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.URL.Query().Get("id"))
		if id == "" {
			h.responder.WriteEnvelopeError(w, errs.NewMissingIDError())
			return
		}

		if err := h.table.Delete(r.Context(), id); err != nil {
			h.responder.WriteEnvelopeError(w, err)
			return
		}
		h.responder.WriteData(w, DeleteResult{Success: true})
	}
}

// extractID accepts the id as a JSON string or number.
func extractID(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}
