package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewLogger logs one line per request. The request body is never logged since it
// carries the user's message.
func NewLogger(logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// Let the app error handler set the final status before logging.
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		attrs := []any{
			"request_id", GetRequestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.IP(),
			"response_size", len(c.Response().Body()),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("server error", attrs...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("client error", attrs...)
		default:
			logger.Info("request handled", attrs...)
		}
		return nil
	}
}
