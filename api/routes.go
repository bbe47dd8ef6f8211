package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type resourceRoutes interface {
	list() http.HandlerFunc
	create() http.HandlerFunc
	update() http.HandlerFunc
	remove() http.HandlerFunc
}

// mountResource serves reads openly and writes behind the admin session.
func mountResource(r chi.Router, path string, h resourceRoutes, admin adminMiddleware) {
	r.Get(path, h.list())
	r.Group(func(r chi.Router) {
		r.Use(admin.requireAdmin)
		r.Post(path, h.create())
		r.Put(path, h.update())
		r.Delete(path, h.remove())
	})
}

// setupAPIRoutes sets up the JSON facade under /api
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, admin adminMiddleware, acceptedOrigins []string) {
	r.Route("/api", func(r chi.Router) {
		r.Use(CORSCheckMiddleware(acceptedOrigins))
		r.Use(corsMiddleware(acceptedOrigins))

		mountResource(r, "/about-sections", handlers.aboutSectionHandler, admin)
		mountResource(r, "/projects", handlers.projectHandler, admin)
		r.Post("/login", handlers.loginHandler.login())
	})
}
