package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lvo-app/site/config"
	"github.com/lvo-app/site/content"
	"github.com/lvo-app/site/logging"
	"github.com/lvo-app/site/server"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Load legal pages
	lib, err := content.LoadEmbedded()
	if err != nil {
		logger.Fatal("failed to load content", zap.Error(err))
	}
	logger.Info("content loaded", zap.Int("legal_pages", lib.Len()))

	app, err := server.New(cfg, lib, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		errc <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		if err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
		if err := server.Shutdown(app, cfg.ShutdownTimeout); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}
}
