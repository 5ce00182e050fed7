package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/lvo-app/site/nav"
	"github.com/lvo-app/site/ui"
)

// HandleLegal renders the legal page registered for the request path.
// Routes match case-insensitively, so the lookup does too.
func (h *Handler) HandleLegal(c *fiber.Ctx) error {
	p, ok := h.lib.ByPath(strings.ToLower(nav.Clean(c.Path())))
	if !ok {
		return fiber.ErrNotFound
	}
	return h.renderPage(c, func(s ui.State) g.Node {
		return ui.LegalPage(p, s)
	})
}
