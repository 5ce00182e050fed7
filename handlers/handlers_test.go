package handlers

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lvo-app/site/cache"
	"github.com/lvo-app/site/config"
	"github.com/lvo-app/site/content"
	"github.com/lvo-app/site/local"
	"github.com/lvo-app/site/ui"
)

func newTestHandler(t *testing.T, withCache bool) (*Handler, *fiber.App, *observer.ObservedLogs) {
	t.Helper()

	lib, err := content.LoadEmbedded()
	require.NoError(t, err)

	var pages *cache.Cache[[]byte]
	if withCache {
		pages, err = cache.NewPages(time.Minute)
		require.NoError(t, err)
		t.Cleanup(pages.Close)
	}

	core, logs := observer.New(zapcore.InfoLevel)
	h := New(config.Default(), lib, zap.New(core), pages)

	app := fiber.New(fiber.Config{
		ErrorHandler:          h.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(ViewState)
	app.Get("/", h.HandleHome)
	for _, p := range lib.Pages() {
		app.Get(p.Path, h.HandleLegal)
	}
	app.Get("/partials/mobile-menu/:state", h.HandleMobileMenu)
	app.Get("/partials/mobile-menu/:state/*", h.HandleMobileMenu)
	app.Get("/sitemap.xml", h.HandleSitemap)
	app.Get("/robots.txt", h.HandleRobots)
	app.Get("/health", h.HandleHealth)

	return h, app, logs
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestPageKey(t *testing.T) {
	now := time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name     string
		state    ui.State
		expected string
	}{
		{"home closed", ui.State{Path: "/", Now: now}, "/|closed|2026-10-17"},
		{"terms open", ui.State{Path: "/terms", MenuOpen: true, Now: now}, "/terms|open|2026-10-17"},
		{"next day", ui.State{Path: "/", Now: now.AddDate(0, 0, 1)}, "/|closed|2026-10-18"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pageKey(tt.state))
		})
	}
}

func TestState(t *testing.T) {
	h, app, _ := newTestHandler(t, false)

	fctx := &fasthttp.RequestCtx{}
	fctx.Request.SetRequestURI("/terms/")
	c := app.AcquireCtx(fctx)
	defer app.ReleaseCtx(c)

	now := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	local.SetMenuOpen(c, true)
	local.SetNow(c, now)

	s := h.state(c)
	assert.Equal(t, "/terms", s.Path)
	assert.True(t, s.MenuOpen)
	assert.Equal(t, now, s.Now)
	assert.Equal(t, "https://lvoapp.com", s.BaseURL)
	assert.Len(t, s.Legal, 4)
}

func TestViewState(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(ViewState)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(strconv.FormatBool(local.GetMenuOpen(c)))
	})

	tests := []struct {
		query    string
		expected string
	}{
		{"", "false"},
		{"?menu=open", "true"},
		{"?menu=OPEN", "true"},
		{"?menu=closed", "false"},
		{"?menu=yes", "false"},
	}

	for _, tt := range tests {
		t.Run("query"+tt.query, func(t *testing.T) {
			status, body := get(t, app, "/"+tt.query)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, tt.expected, body)
		})
	}
}

func TestHandleHome(t *testing.T) {
	_, app, _ := newTestHandler(t, false)

	status, body := get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Ekspresikan Dirimu,")
	assert.Contains(t, body, `id="fitur"`)
	assert.Contains(t, body, `data-menu-state="closed"`)

	_, open := get(t, app, "/?menu=open")
	assert.Contains(t, open, `data-menu-state="open"`)
}

func TestHandleLegal(t *testing.T) {
	_, app, _ := newTestHandler(t, false)

	tests := []struct {
		path    string
		heading string
	}{
		{"/privacy-policy", "Privacy Policy"},
		{"/terms", "Syarat &amp; Ketentuan"},
		{"/community-guidelines", "Panduan Komunitas"},
		{"/delete-account", "Delete Account – LVO App"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := get(t, app, tt.path)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Contains(t, body, tt.heading)
		})
	}
}

func TestHandleLegalIgnoresCase(t *testing.T) {
	_, app, _ := newTestHandler(t, false)

	for _, target := range []string{"/Terms", "/TERMS/", "/Privacy-Policy"} {
		t.Run(target, func(t *testing.T) {
			status, body := get(t, app, target)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Contains(t, body, `<link rel="canonical" href="https://lvoapp.com/`)
		})
	}
}

func TestHandleLegalUnknownPath(t *testing.T) {
	h, _, _ := newTestHandler(t, false)

	app := fiber.New(fiber.Config{ErrorHandler: h.ErrorHandler, DisableStartupMessage: true})
	app.Get("/not-a-page", h.HandleLegal)

	status, body := get(t, app, "/not-a-page")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "Halaman yang Anda cari tidak ditemukan.")
}

func TestHandleMobileMenu(t *testing.T) {
	_, app, _ := newTestHandler(t, false)

	tests := []struct {
		name     string
		target   string
		contains []string
		missing  []string
	}{
		{
			name:   "open on terms",
			target: "/partials/mobile-menu/open/terms",
			contains: []string{
				`data-menu-state="open"`,
				`aria-expanded="true"`,
				`hx-get="/partials/mobile-menu/closed/terms"`,
				`href="/#fitur"`,
				`href="/privacy-policy"`,
			},
		},
		{
			name:   "closed on home",
			target: "/partials/mobile-menu/closed",
			contains: []string{
				`data-menu-state="closed"`,
				`aria-expanded="false"`,
				`href="/?menu=open"`,
				`hx-get="/partials/mobile-menu/open"`,
				`href="#fitur"`,
				`href="#privasi"`,
			},
		},
		{
			name:   "unknown page links back to home sections",
			target: "/partials/mobile-menu/open/nowhere",
			contains: []string{
				`data-menu-state="open"`,
				`href="/#tentang"`,
				`href="/nowhere?menu=closed"`,
			},
			missing: []string{`href="#tentang"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, tt.target)
			assert.Equal(t, fiber.StatusOK, status)
			assert.True(t, strings.HasPrefix(body, `<div id="mobile-menu"`), "fragment, not a full page")
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestHandleMobileMenuBadState(t *testing.T) {
	_, app, _ := newTestHandler(t, false)

	status, _ := get(t, app, "/partials/mobile-menu/maybe/terms")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestErrorHandler(t *testing.T) {
	h, _, logs := newTestHandler(t, false)

	app := fiber.New(fiber.Config{ErrorHandler: h.ErrorHandler, DisableStartupMessage: true})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database password is hunter2")
	})
	app.Get("/slow-down", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTooManyRequests, "Terlalu banyak permintaan.")
	})

	status, body := get(t, app, "/boom")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.NotContains(t, body, "hunter2")
	assert.Contains(t, body, "Internal Server Error")
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request failed", entry.Message)
	assert.Equal(t, "/boom", entry.ContextMap()["path"])

	status, body = get(t, app, "/slow-down")
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.Contains(t, body, "Terlalu banyak permintaan.")
	assert.Equal(t, 1, logs.Len(), "client errors are not logged")
}

func TestHandleHealth(t *testing.T) {
	_, app, _ := newTestHandler(t, true)

	status, body := get(t, app, "/health")
	require.Equal(t, fiber.StatusOK, status)

	var health healthStatus
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 4, health.Pages)
	require.NotNil(t, health.Cache)
	assert.Equal(t, "pages", health.Cache.Name)
}

func TestPageCache(t *testing.T) {
	h, app, _ := newTestHandler(t, true)

	_, first := get(t, app, "/terms")
	_, second := get(t, app, "/terms")

	assert.Equal(t, first, second)
	stats := h.pages.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestHandleSitemap(t *testing.T) {
	_, app, _ := newTestHandler(t, false)

	status, body := get(t, app, "/sitemap.xml")
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, strings.HasPrefix(body, xml.Header))

	var sitemap Sitemap
	require.NoError(t, xml.Unmarshal([]byte(body), &sitemap))
	require.Len(t, sitemap.URLs, 5)
	assert.Equal(t, "https://lvoapp.com/", sitemap.URLs[0].Loc)
	assert.Equal(t, "1.0", sitemap.URLs[0].Priority)
	assert.Equal(t, "https://lvoapp.com/delete-account", sitemap.URLs[4].Loc)
}

func TestBuildSitemap(t *testing.T) {
	now := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	sitemap := BuildSitemap("https://example.com", now)

	locs := make([]string, 0, len(sitemap.URLs))
	for _, u := range sitemap.URLs {
		locs = append(locs, u.Loc)
		assert.Equal(t, "2026-10-17", u.LastMod)
	}
	assert.Equal(t, []string{
		"https://example.com/",
		"https://example.com/privacy-policy",
		"https://example.com/terms",
		"https://example.com/community-guidelines",
		"https://example.com/delete-account",
	}, locs)
}

func TestHandleRobots(t *testing.T) {
	_, app, _ := newTestHandler(t, false)

	status, body := get(t, app, "/robots.txt")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Sitemap: https://lvoapp.com/sitemap.xml")
}
