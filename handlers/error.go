package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lvo-app/site/ui"
)

// ErrorHandler renders errors as a page inside the site shell. Server errors
// are logged and their details kept out of the response.
func (h *Handler) ErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "Terjadi kesalahan pada server. Silakan coba lagi nanti."

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		if code < fiber.StatusInternalServerError {
			message = e.Message
		}
	}

	if code >= fiber.StatusInternalServerError {
		h.log.Error("request failed",
			zap.Error(err),
			zap.Int("status", code),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
	}

	c.Status(code)
	return render(c, ui.ErrorPage(code, message, h.state(c)))
}
