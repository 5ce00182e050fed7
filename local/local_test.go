package local

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func TestMenuOpen(t *testing.T) {
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(c)

	assert.False(t, GetMenuOpen(c), "unset defaults to closed")
	SetMenuOpen(c, true)
	assert.True(t, GetMenuOpen(c))
}

func TestNow(t *testing.T) {
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(c)

	assert.WithinDuration(t, time.Now(), GetNow(c), time.Minute)

	fixed := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	SetNow(c, fixed)
	assert.Equal(t, fixed, GetNow(c))
}
