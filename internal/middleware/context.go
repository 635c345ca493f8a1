package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// NewRequestContext gives each request a user context derived from base, so
// cancelling base aborts work still running inside handlers. The request context
// is cancelled once the handler chain returns.
func NewRequestContext(base context.Context) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(base)
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}
