package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/easeaico/eq-coach/internal/config"
	"github.com/easeaico/eq-coach/internal/handler"
	"github.com/easeaico/eq-coach/internal/middleware"
)

type ServerOption func(*Server) error

type Server struct {
	engine   *fiber.App
	log      *slog.Logger
	cfg      config.Config
	solver   handler.Solver
	handlers []routes

	baseCtx    context.Context
	cancelBase context.CancelFunc
}

type routes interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.solver == nil {
		return nil, fmt.Errorf("solver is required")
	}
	if server.log == nil {
		server.log = slog.Default()
	}
	server.baseCtx, server.cancelBase = context.WithCancel(context.Background())

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithConfig(cfg config.Config) ServerOption {
	return func(s *Server) error {
		s.cfg = cfg
		return nil
	}
}

func WithSolver(solver handler.Solver) ServerOption {
	return func(s *Server) error {
		if solver == nil {
			return fmt.Errorf("solver cannot be nil")
		}
		s.solver = solver
		return nil
	}
}

// RegisterHandler installs middleware and routes. Middleware goes first so it wraps
// every route.
func (s *Server) RegisterHandler() {
	allowOrigins := s.cfg.CORSAllowOrigins
	if allowOrigins == "" {
		allowOrigins = "*"
	}

	s.engine.Use(middleware.NewRequestID())
	s.engine.Use(middleware.NewRequestContext(s.baseCtx))
	s.engine.Use(middleware.NewLogger(s.log))
	s.engine.Use(recover.New())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	s.handlers = append(s.handlers, handler.New(s.solver, s.cfg.IndexHTML))
	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

// App exposes the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.engine
}

// Run blocks serving on the configured port.
func (s *Server) Run() error {
	port := s.cfg.Port
	if port == "" {
		port = "8000"
	}

	s.log.Info("server listening", "port", port)
	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}
	return nil
}

// Shutdown cancels the context of every in-flight request, then stops accepting
// connections and waits for open requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancelBase()
	return s.engine.ShutdownWithContext(ctx)
}
