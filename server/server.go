package server

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/lvo-app/site/cache"
	"github.com/lvo-app/site/config"
	"github.com/lvo-app/site/content"
	h "github.com/lvo-app/site/handlers"
	"github.com/lvo-app/site/nav"
)

// New builds the site application: middleware, static files and routes for
// the home page and every page in lib.
func New(cfg *config.Config, lib *content.Library, log *zap.Logger) (*fiber.App, error) {
	var pages *cache.Cache[[]byte]
	if cfg.PageCacheTTL > 0 {
		var err error
		pages, err = cache.NewPages(cfg.PageCacheTTL)
		if err != nil {
			return nil, fmt.Errorf("error creating page cache: %w", err)
		}
	}
	handler := h.New(cfg, lib, log, pages)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handler.ErrorHandler,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: cfg.IsProduction(),
	})

	if pages != nil {
		app.Hooks().OnShutdown(func() error {
			pages.Close()
			return nil
		})
	}

	app.Use(recover.New())

	// Add logger middleware
	app.Use(logger.New())

	// Add rate limiter
	app.Use(h.RateLimiter(cfg))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(h.ViewState)

	// Static files
	static := fiber.Static{
		Compress: true,
		MaxAge:   cfg.StaticMaxAge,
	}
	for _, dir := range []string{"assets", "js", "css"} {
		app.Static("/"+dir, filepath.Join(cfg.StaticDir, dir), static)
	}

	// Pages
	app.Get(nav.HomePath, handler.HandleHome)
	for _, p := range lib.Pages() {
		app.Get(p.Path, handler.HandleLegal)
	}

	// Fragments
	app.Get(nav.MenuPartialPath+"/:state", handler.HandleMobileMenu)
	app.Get(nav.MenuPartialPath+"/:state/*", handler.HandleMobileMenu)

	// Crawlers and monitoring
	app.Get("/sitemap.xml", handler.HandleSitemap)
	app.Get("/robots.txt", handler.HandleRobots)
	app.Get("/health", handler.HandleHealth)

	return app, nil
}

// Shutdown stops app, waiting at most timeout for open requests.
func Shutdown(app *fiber.App, timeout time.Duration) error {
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}
