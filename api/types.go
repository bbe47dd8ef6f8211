package api

import (
	"time"

	"github.com/rpupo63/portfolio-site/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	aboutSectionHandler resourceHandler[models.AboutSection]
	projectHandler      resourceHandler[models.Project]
	loginHandler        loginHandler
}

// Envelope is the body of every resource response.
type Envelope struct {
	Data  any     `json:"data"`
	Error *string `json:"error"`
}

// DeleteResult is the data of a successful DELETE.
type DeleteResult struct {
	Success bool `json:"success"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by POST /api/login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
