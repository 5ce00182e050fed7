package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/lvo-app/site/cache"
	"github.com/lvo-app/site/config"
	"github.com/lvo-app/site/content"
	"github.com/lvo-app/site/local"
	"github.com/lvo-app/site/nav"
	"github.com/lvo-app/site/ui"
)

// Handler serves the site pages from the loaded content library.
type Handler struct {
	cfg   *config.Config
	lib   *content.Library
	log   *zap.Logger
	pages *cache.Cache[[]byte]
}

// New returns a Handler. pages may be nil, in which case every request renders.
func New(cfg *config.Config, lib *content.Library, log *zap.Logger, pages *cache.Cache[[]byte]) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{cfg: cfg, lib: lib, log: log, pages: pages}
}

// state collects what the layout shell needs for this request.
func (h *Handler) state(c *fiber.Ctx) ui.State {
	return ui.State{
		Path:     nav.Clean(c.Path()),
		MenuOpen: local.GetMenuOpen(c),
		Now:      local.GetNow(c),
		BaseURL:  h.cfg.BaseURL,
		Legal:    h.lib.Pages(),
	}
}

// pageKey identifies a rendered page. The date is part of the key because
// pages show the current date and year.
func pageKey(s ui.State) string {
	return s.Path + "|" + nav.MenuParam(s.MenuOpen) + "|" + s.Now.Format("2006-01-02")
}

// renderPage renders a full page through the page cache.
func (h *Handler) renderPage(c *fiber.Ctx, build func(ui.State) g.Node) error {
	s := h.state(c)
	if h.pages == nil {
		return render(c, build(s))
	}

	body, err := h.pages.GetOrSet(pageKey(s), func() ([]byte, error) {
		var buf bytes.Buffer
		if err := build(s).Render(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}
