package server

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/talmaimon/basecycle/pkg/db"
)

// Server exposes the scheduling engine over HTTP for the calendar and table
// views of the surrounding application.
type Server struct {
	echo      *echo.Echo
	logger    *zap.Logger
	validate  *validator.Validate
	rotations db.RotationStore
	segments  db.SegmentStore
	roles     db.RoleStore
}

// New builds a server over the given stores and registers all routes.
func New(logger *zap.Logger, rotations db.RotationStore, segments db.SegmentStore, roles db.RoleStore) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:      e,
		logger:    logger,
		validate:  validator.New(),
		rotations: rotations,
		segments:  segments,
		roles:     roles,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")
	api.GET("/teams/:id/status", s.teamStatusHandler)
	api.GET("/tasks/:id/schedule", s.taskScheduleHandler)
	api.GET("/tasks/:id/schedule.csv", s.taskScheduleCSVHandler)
	api.POST("/rest-check", s.restCheckHandler)
	api.GET("/roles", s.listRolesHandler)
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
