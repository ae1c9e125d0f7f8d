// Package server exposes the weekplan persistence API over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"weekplan/internal/db"
	"weekplan/internal/logging"
)

// Server wraps echo and the sqlite store.
type Server struct {
	echo  *echo.Echo
	store *db.SQLite
	log   *logging.Logger
}

// CustomValidator wraps the validator for echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a server backed by the given store.
func New(store *db.SQLite, log *logging.Logger) *Server {
	if log == nil {
		log = logging.Nop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogMethod: true,
		LogURI:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	s := &Server{echo: e, store: store, log: log}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/events", s.listEvents)
	s.echo.POST("/events", s.createEvent)
	s.echo.PUT("/events/:id", s.updateEvent)
	s.echo.DELETE("/events/:id", s.deleteEvent)

	s.echo.GET("/goals", s.listGoals)
	s.echo.POST("/goals", s.createGoal)

	s.echo.POST("/tasks", s.createTask)

	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

// Start begins serving on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying http.Handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
