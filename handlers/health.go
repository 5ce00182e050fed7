package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lvo-app/site/cache"
)

type healthStatus struct {
	Status string       `json:"status"`
	Pages  int          `json:"pages"`
	Cache  *cache.Stats `json:"cache,omitempty"`
}

// HandleHealth returns the health status of the application
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	health := healthStatus{
		Status: "ok",
		Pages:  h.lib.Len(),
	}
	if h.pages != nil {
		stats := h.pages.Stats()
		health.Cache = &stats
	}
	return c.JSON(health)
}
