package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/lvo-app/site/config"
	"github.com/lvo-app/site/content"
	"github.com/lvo-app/site/export"
	"github.com/lvo-app/site/logging"
	"github.com/lvo-app/site/server"
)

func main() {
	outDir := flag.String("out", "dist", "output directory")
	configFile := flag.String("config", "", "optional YAML config file")
	baseURL := flag.String("base-url", "", "override the canonical base URL")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	routes := export.SiteRoutes()

	// Every route is rendered once, so neither caching nor limiting helps.
	cfg.PageCacheTTL = 0
	cfg.RateLimitMax = len(routes) + 1

	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	lib, err := content.LoadEmbedded()
	if err != nil {
		logger.Fatal("failed to load content", zap.Error(err))
	}

	app, err := server.New(cfg, lib, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal("failed to create output directory", zap.Error(err))
	}

	written, err := export.Routes(app, *outDir, routes)
	if err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}

	if err := export.CopyDir(cfg.StaticDir, *outDir); err != nil {
		logger.Fatal("failed to copy static files", zap.Error(err))
	}

	logger.Info("export complete",
		zap.String("out", *outDir),
		zap.Int("pages", len(written)),
	)
}
