// Package handler exposes the coach over HTTP.
package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/easeaico/eq-coach/internal/coach"
)

// Solver answers a message with coaching text.
type Solver interface {
	Solve(ctx context.Context, text string) coach.Result
	ProviderNames() []string
}

// Handler serves the page, health check and solve routes.
type Handler struct {
	solver    Solver
	indexPath string
}

// New returns the coach HTTP handler. indexPath, when set, replaces the embedded page.
func New(solver Solver, indexPath string) *Handler {
	return &Handler{
		solver:    solver,
		indexPath: indexPath,
	}
}

// Start registers the routes on router.
func (h *Handler) Start(router fiber.Router) {
	router.Get("/", h.Home)
	router.Get("/healthz", h.Health)
	router.Post("/solve", h.Solve)
}
