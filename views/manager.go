package views

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/session"
)

// Field is one input on a management form.
type Field struct {
	Name        string
	Label       string
	Input       string // text, textarea, number or url
	Required    bool
	Placeholder string
}

// Column is one cell of the management list.
type Column[T any] struct {
	Label string
	Value func(T) string
}

// Resource configures a Manager for one table.
type Resource[T any] struct {
	Title    string
	Singular string
	BasePath string
	Table    *database.Table[T]
	Fields   []Field
	Columns  []Column[T]
	ID       func(T) string
	// Values renders a row as form values keyed by field name.
	Values func(T) map[string]string
	// Build turns submitted values into a new row.
	Build func(values map[string]string) (*T, error)
}

// Manager is the dashboard page that lists, edits and deletes one resource.
type Manager[T any] struct {
	res  Resource[T]
	view *renderer
}

func NewManager[T any](res Resource[T], view *renderer) *Manager[T] {
	return &Manager[T]{res: res, view: view}
}

func (m *Manager[T]) Mount(r chi.Router, gate *session.Gate) {
	base := m.res.BasePath
	r.Get(base, gate.Protect(m.list))
	r.Post(base, gate.Protect(m.save))
	r.Get(base+"/{id}/delete", gate.Protect(m.confirmDelete))
	r.Post(base+"/{id}/delete", gate.Protect(m.remove))
}

type formField struct {
	Field
	Value string
}

type listRow struct {
	ID    string
	Cells []string
}

type managePage struct {
	Page
	Singular  string
	BasePath  string
	Headings  []string
	Rows      []listRow
	Form      []formField
	EditingID string
}

// Colspan spans every heading plus the actions column.
func (p managePage) Colspan() int {
	return len(p.Headings) + 1
}

type confirmPage struct {
	Page
	Singular string
	BasePath string
	ID       string
	Summary  []string
}

var successMessages = map[string]string{
	"created": "%s created successfully.",
	"updated": "%s updated successfully.",
	"deleted": "%s deleted successfully.",
}

func (m *Manager[T]) list(w http.ResponseWriter, r *http.Request, state session.State) {
	page := m.newManagePage(r, state)

	if format, ok := successMessages[r.URL.Query().Get("msg")]; ok {
		page.Notice = successNotice(fmt.Sprintf(format, capitalize(m.res.Singular)))
	}

	rows, err := m.res.Table.List(r.Context())
	if err != nil {
		m.fail(w, r, page, err)
		return
	}
	page.Rows = m.rowsFor(rows)

	// Pre-fill from the list just loaded rather than issuing a second query
	if editID := strings.TrimSpace(r.URL.Query().Get("edit")); editID != "" {
		row, ok := m.find(rows, editID)
		if !ok {
			m.fail(w, r, page, errs.NewNotFoundError(m.res.Table.Descriptor().Table, fmt.Errorf("no %s with id %s", m.res.Singular, editID)))
			return
		}
		page.EditingID = editID
		page.Form = m.formFor(m.res.Values(row))
	}

	m.view.render(w, http.StatusOK, "manage", page)
}

func (m *Manager[T]) save(w http.ResponseWriter, r *http.Request, state session.State) {
	if err := r.ParseForm(); err != nil {
		m.failWithList(w, r, state, nil, "", errs.NewBadRequestError("could not parse form"))
		return
	}

	values := make(map[string]string, len(m.res.Fields))
	for _, f := range m.res.Fields {
		values[f.Name] = strings.TrimSpace(r.PostForm.Get(f.Name))
	}
	// A hidden id means the form was opened with ?edit
	id := strings.TrimSpace(r.PostForm.Get("id"))

	if err := m.checkRequired(values); err != nil {
		m.failWithList(w, r, state, values, id, err)
		return
	}

	if id == "" {
		row, err := m.res.Build(values)
		if err != nil {
			m.failWithList(w, r, state, values, id, errs.NewValidationError(m.res.Table.Descriptor().Table, "", err))
			return
		}
		if _, err := m.res.Table.Create(r.Context(), row); err != nil {
			m.failWithList(w, r, state, values, id, err)
			return
		}
		redirect(w, m.res.BasePath+"?msg=created")
		return
	}

	// Updates go through the column coercers, so raw form strings are fine here
	changes := make(map[string]any, len(values))
	for k, v := range values {
		changes[k] = v
	}
	if _, err := m.res.Table.Update(r.Context(), id, changes); err != nil {
		m.failWithList(w, r, state, values, id, err)
		return
	}
	redirect(w, m.res.BasePath+"?msg=updated")
}

func (m *Manager[T]) confirmDelete(w http.ResponseWriter, r *http.Request, state session.State) {
	id := chi.URLParam(r, "id")
	if strings.TrimSpace(id) == "" {
		m.view.renderError(w, r, state, errs.NewMissingIDError())
		return
	}

	row, err := m.res.Table.GetOne(r.Context(), map[string]any{"id": id})
	if err != nil {
		m.view.renderError(w, r, state, err)
		return
	}

	page := confirmPage{
		Page:     newPage(r, "Delete "+m.res.Singular, state),
		Singular: m.res.Singular,
		BasePath: m.res.BasePath,
		ID:       id,
	}
	for _, col := range m.res.Columns {
		if v := col.Value(*row); v != "" {
			page.Summary = append(page.Summary, col.Label+": "+v)
		}
	}
	m.view.render(w, http.StatusOK, "confirm", page)
}

func (m *Manager[T]) remove(w http.ResponseWriter, r *http.Request, state session.State) {
	if err := m.res.Table.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		m.failWithList(w, r, state, nil, "", err)
		return
	}
	redirect(w, m.res.BasePath+"?msg=deleted")
}

// failWithList re-renders the page with the submitted values and a fresh list.
func (m *Manager[T]) failWithList(w http.ResponseWriter, r *http.Request, state session.State, values map[string]string, id string, cause error) {
	page := m.newManagePage(r, state)
	page.EditingID = id
	if values != nil {
		page.Form = m.formFor(values)
	}
	// The list is best effort; the original error is what gets shown
	if rows, err := m.res.Table.List(r.Context()); err == nil {
		page.Rows = m.rowsFor(rows)
	}
	m.fail(w, r, page, cause)
}

func (m *Manager[T]) fail(w http.ResponseWriter, r *http.Request, page managePage, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		m.view.logger.Error().Err(err).Str("path", r.URL.Path).Msg("management action failed")
	}
	page.Notice = errorNotice(err)
	m.view.render(w, status, "manage", page)
}

func (m *Manager[T]) checkRequired(values map[string]string) error {
	for _, f := range m.res.Fields {
		if f.Required && values[f.Name] == "" {
			return errs.NewValidationError(m.res.Table.Descriptor().Table, f.Name, fmt.Errorf("%s is required", f.Label))
		}
	}
	return nil
}

func (m *Manager[T]) newManagePage(r *http.Request, state session.State) managePage {
	page := managePage{
		Page:     newPage(r, m.res.Title, state),
		Singular: m.res.Singular,
		BasePath: m.res.BasePath,
		Form:     m.formFor(nil),
	}
	for _, col := range m.res.Columns {
		page.Headings = append(page.Headings, col.Label)
	}
	return page
}

func (m *Manager[T]) formFor(values map[string]string) []formField {
	form := make([]formField, 0, len(m.res.Fields))
	for _, f := range m.res.Fields {
		form = append(form, formField{Field: f, Value: values[f.Name]})
	}
	return form
}

func (m *Manager[T]) rowsFor(rows []T) []listRow {
	out := make([]listRow, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(m.res.Columns))
		for _, col := range m.res.Columns {
			cells = append(cells, col.Value(row))
		}
		out = append(out, listRow{ID: m.res.ID(row), Cells: cells})
	}
	return out
}

func (m *Manager[T]) find(rows []T, id string) (T, bool) {
	for _, row := range rows {
		if m.res.ID(row) == id {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
