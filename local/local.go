package local

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetMenuOpen(c *fiber.Ctx) bool {
	open, _ := c.Locals("menuOpen").(bool)
	return open
}

func SetMenuOpen(c *fiber.Ctx, open bool) {
	c.Locals("menuOpen", open)
}

// GetNow returns the time the request started, or the current time when the
// view-state middleware did not run.
func GetNow(c *fiber.Ctx) time.Time {
	if now, ok := c.Locals("now").(time.Time); ok {
		return now
	}
	return time.Now()
}

func SetNow(c *fiber.Ctx, now time.Time) {
	c.Locals("now", now)
}
