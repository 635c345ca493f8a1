package handler

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed web/index.html
var indexHTML []byte

// Home serves the single page UI.
func (h *Handler) Home(c *fiber.Ctx) error {
	if h.indexPath != "" {
		return c.SendFile(h.indexPath)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(indexHTML)
}

// Health reports liveness and the providers that will be attempted.
func (h *Handler) Health(c *fiber.Ctx) error {
	providers := h.solver.ProviderNames()
	if providers == nil {
		providers = []string{}
	}
	return c.JSON(fiber.Map{
		"status":    "ok",
		"providers": providers,
	})
}
