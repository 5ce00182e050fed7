package server

import (
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lvo-app/site/config"
	"github.com/lvo-app/site/content"
)

func newTestApp(t *testing.T, adjust func(*config.Config)) *fiber.App {
	t.Helper()

	static := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(static, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "js", "site.js"), []byte("// site"), 0o644))

	cfg := config.Default()
	cfg.StaticDir = static
	if adjust != nil {
		adjust(cfg)
	}

	lib, err := content.LoadEmbedded()
	require.NoError(t, err)

	app, err := New(cfg, lib, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })
	return app
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

func TestRoutesRender(t *testing.T) {
	app := newTestApp(t, nil)

	tests := []struct {
		path    string
		heading string
		title   string
	}{
		{"/", "Terhubung Tanpa Batas", "<title>LVO App – Sosial Media Indonesia</title>"},
		{"/privacy-policy", "Information Collection and Use", "<title>Privacy Policy – LVO App</title>"},
		{"/terms", "Penerimaan Ketentuan", "<title>Syarat &amp; Ketentuan – LVO App</title>"},
		{"/community-guidelines", "Laporkan Pelanggaran", "<title>Panduan Komunitas – LVO App</title>"},
		{"/delete-account", "Delete Account – LVO App", "<title>Delete Account – LVO App</title>"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := get(t, app, tt.path)
			require.Equal(t, fiber.StatusOK, status)
			assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
			assert.Contains(t, body, tt.heading)
			assert.Contains(t, body, tt.title)
		})
	}
}

func TestFooterOnEveryPage(t *testing.T) {
	app := newTestApp(t, nil)
	copyright := fmt.Sprintf("© %d LVO Dev. All rights reserved.", time.Now().Year())

	for _, path := range []string{"/", "/privacy-policy", "/terms", "/community-guidelines", "/delete-account"} {
		t.Run(path, func(t *testing.T) {
			_, body := get(t, app, path)
			assert.Contains(t, body, "support@lvoapp.com")
			assert.Contains(t, body, `href="mailto:support@lvoapp.com"`)
			assert.Contains(t, body, copyright)
			assert.Contains(t, body, "Lampung, Indonesia")
		})
	}
}

func TestNavLinksDependOnPath(t *testing.T) {
	app := newTestApp(t, nil)

	_, home := get(t, app, "/")
	assert.Contains(t, home, `href="#home"`)
	assert.Contains(t, home, `href="#fitur"`)
	assert.Contains(t, home, `href="#tentang"`)
	assert.Contains(t, home, `href="#privasi"`)
	assert.NotContains(t, home, `href="/#fitur"`)

	_, terms := get(t, app, "/terms")
	assert.Contains(t, terms, `href="/#home"`)
	assert.Contains(t, terms, `href="/#fitur"`)
	assert.Contains(t, terms, `href="/#tentang"`)
	assert.Contains(t, terms, `href="/privacy-policy"`)
	assert.NotContains(t, terms, `href="#fitur"`)
}

func TestLegalLinksAreRoutes(t *testing.T) {
	app := newTestApp(t, nil)

	_, body := get(t, app, "/")
	for _, path := range []string{"/privacy-policy", "/terms", "/community-guidelines", "/delete-account"} {
		assert.Contains(t, body, `href="`+path+`"`)
	}
}

func TestHeaderScrollState(t *testing.T) {
	app := newTestApp(t, nil)

	_, body := get(t, app, "/")
	assert.Contains(t, body, `data-scroll-threshold="50"`)
	assert.Contains(t, body, `data-class-scrolled="h-20 bg-black/85 shadow-lg backdrop-blur-md"`)
	assert.Contains(t, body, `data-class-top="h-[90px] bg-black/60 backdrop-blur-md border-b border-white/10"`)
}

func TestMobileMenuToggle(t *testing.T) {
	app := newTestApp(t, nil)

	_, closed := get(t, app, "/terms")
	assert.Contains(t, closed, `data-menu-state="closed"`)
	assert.Contains(t, closed, `href="/terms?menu=open"`)
	assert.Contains(t, closed, `hx-get="/partials/mobile-menu/open/terms"`)

	_, open := get(t, app, "/terms?menu=open")
	assert.Contains(t, open, `data-menu-state="open"`)
	assert.Contains(t, open, `href="/terms?menu=closed"`)

	status, fragment := get(t, app, "/partials/mobile-menu/open/terms")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, fragment, `data-menu-state="open"`)
	assert.NotContains(t, fragment, "<html")
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t, nil)

	status, body := get(t, app, "/does-not-exist")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "Halaman yang Anda cari tidak ditemukan.")
	assert.Contains(t, body, `id="site-header"`, "rendered inside the layout shell")
}

func TestNotFoundMenuLinksLeadHome(t *testing.T) {
	app := newTestApp(t, nil)

	_, body := get(t, app, "/does-not-exist")
	start := strings.Index(body, `id="mobile-menu-panel"`)
	require.NotEqual(t, -1, start)
	panel := body[start:]
	panel = panel[:strings.Index(panel, "</header>")]

	for _, anchor := range []string{"home", "fitur", "tentang"} {
		assert.NotContains(t, panel, `href="#`+anchor+`"`)
		assert.Contains(t, panel, `href="/#`+anchor+`"`)
	}
	assert.Contains(t, panel, `href="/privacy-policy"`)
	assert.Contains(t, body, `href="/does-not-exist?menu=open"`, "the no-script toggle stays on the page")
	assert.Contains(t, body, `hx-get="/partials/mobile-menu/open/does-not-exist"`)

	status, fragment := get(t, app, "/partials/mobile-menu/open/does-not-exist")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, fragment, `href="/#fitur"`)
	assert.NotContains(t, fragment, `href="#fitur"`)
}

func TestLegalRoutesIgnoreCase(t *testing.T) {
	app := newTestApp(t, nil)

	status, body := get(t, app, "/Terms")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Penerimaan Ketentuan")
	assert.Contains(t, body, `<link rel="canonical" href="https://lvoapp.com/terms">`)
}

func TestSupportRoutes(t *testing.T) {
	app := newTestApp(t, nil)

	tests := []struct {
		path     string
		contains string
	}{
		{"/sitemap.xml", "<loc>https://lvoapp.com/community-guidelines</loc>"},
		{"/robots.txt", "Sitemap: https://lvoapp.com/sitemap.xml"},
		{"/health", `"status":"ok"`},
		{"/js/site.js", "// site"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := get(t, app, tt.path)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Contains(t, body, tt.contains)
		})
	}
}

func TestRateLimit(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) {
		c.RateLimitMax = 2
		c.RateLimitExp = time.Minute
	})

	for i := 0; i < 2; i++ {
		status, _ := get(t, app, "/terms")
		require.Equal(t, fiber.StatusOK, status)
	}

	status, body := get(t, app, "/terms")
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.Contains(t, body, "Terlalu banyak permintaan.")

	status, _ = get(t, app, "/health")
	assert.Equal(t, fiber.StatusOK, status, "health checks are not limited")
}

func TestPageCacheDisabled(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) {
		c.PageCacheTTL = 0
	})

	_, body := get(t, app, "/health")
	assert.NotContains(t, body, `"cache"`)
}
