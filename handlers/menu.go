package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lvo-app/site/nav"
	"github.com/lvo-app/site/ui"
)

// HandleMobileMenu returns the mobile menu fragment for
// /partials/mobile-menu/:state/<page path>.
func (h *Handler) HandleMobileMenu(c *fiber.Ctx) error {
	m, ok := nav.ParseMenuPartial(c.Params("state"), c.Params("*"))
	if !ok {
		return fiber.ErrNotFound
	}
	return render(c, ui.MobileMenu(m))
}
