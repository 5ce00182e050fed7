package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lvo-app/site/local"
	"github.com/lvo-app/site/nav"
)

// ViewState records the request time and the ?menu= state for the views.
func ViewState(c *fiber.Ctx) error {
	local.SetNow(c, time.Now())
	local.SetMenuOpen(c, nav.ParseMenuParam(c.Query("menu")))
	return c.Next()
}
