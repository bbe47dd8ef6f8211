package api

import (
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/session"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, credentials session.Credentials, store *session.Store) *routeHandlers {
	return &routeHandlers{
		aboutSectionHandler: newResourceHandler[models.AboutSection]("aboutSectionHandler", db.AboutSections()),
		projectHandler:      newResourceHandler[models.Project]("projectHandler", db.Projects()),
		loginHandler:        newLoginHandler(credentials, store),
	}
}
