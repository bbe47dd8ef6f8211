package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/session"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"home", "about", "skills", "contact", "login",
	"dashboard", "manage", "confirm", "error",
}

// mdRenderer leaves raw HTML escaped.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

var funcMap = template.FuncMap{
	"markdown":    renderMarkdown,
	"optional":    optionalString,
	"noticeTitle": noticeTitle,
}

// Page is the data every template receives through the layout.
type Page struct {
	Title  string
	State  session.State
	CSRF   template.HTML
	Notice *Notice
}

func newPage(r *http.Request, title string, state session.State) Page {
	return Page{Title: title, State: state, CSRF: csrf.TemplateField(r)}
}

type renderer struct {
	pages  map[string]*template.Template
	logger zerolog.Logger
}

func newRenderer(logger zerolog.Logger) (*renderer, error) {
	base, err := template.New("layout.html").Funcs(funcMap).ParseFS(templateFS, "templates/layout.html", "templates/notice.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		tpl, err := clone.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = tpl
	}
	return &renderer{pages: pages, logger: logger}, nil
}

// render buffers the page so a template failure never leaves a half-written 200.
func (v *renderer) render(w http.ResponseWriter, status int, name string, data any) {
	tpl, ok := v.pages[name]
	if !ok {
		v.logger.Error().Str("page", name).Msg("unknown page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		v.logger.Error().Err(err).Str("page", name).Msg("error rendering page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		v.logger.Error().Err(err).Msg("error writing page")
	}
}

// renderError shows the shared notice on its own page.
func (v *renderer) renderError(w http.ResponseWriter, r *http.Request, state session.State, err error) {
	status := errs.StatusCode(err)
	if status >= http.StatusInternalServerError {
		v.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	page := newPage(r, "Error", state)
	page.Notice = errorNotice(err)
	v.render(w, status, "error", page)
}

func redirect(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusSeeOther)
}

func preview(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
