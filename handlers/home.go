package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lvo-app/site/ui"
)

func (h *Handler) HandleHome(c *fiber.Ctx) error {
	return h.renderPage(c, ui.HomePage)
}
