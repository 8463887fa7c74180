package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vit0-9/whois_api/pkg/config"
	"github.com/vit0-9/whois_api/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if !cfg.HasAPIKey() {
		appLog.Warn("WHOIS_API_KEY is not set; lookups will fail with a configuration error")
	}

	app, err := NewApp(cfg, appLog, nil)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			reloadLogLevel(appLog, config.Load)
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-quit
		appLog.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := app.Shutdown(ctx); err != nil {
			appLog.Error("graceful shutdown failed", "error", err)
		}
	}()

	if err := app.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	<-done
	appLog.Info("Server stopped")
}

// reloadLogLevel re-reads the configuration and applies its log level. Other
// settings need a restart.
func reloadLogLevel(log *logger.Logger, load func(path string) (*config.Config, error)) {
	cfg, err := load("")
	if err != nil {
		log.Error("config reload failed, keeping current log level", "error", err)
		return
	}
	log.SetLevel(cfg.Logging.Level)
	log.Info("log level reloaded", "level", cfg.Logging.Level)
}
