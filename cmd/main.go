package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"catalog_service/config"
	"catalog_service/internal/container"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := setupLogger(os.Getenv("LOG_LEVEL"))
	logger.Info("Starting Catalog Service...")

	cfg := config.LoadConfig(logger)
	setLevel(logger, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := container.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize container: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Errorf("Error during shutdown: %v", err)
		}
	}()

	report := app.Store.Report()
	logger.WithFields(logrus.Fields{
		"source":     report.Source,
		"diagnostic": report.Diagnostic,
		"products":   len(app.Store.Products()),
	}).Info("Catalog loaded")

	if err := app.Run(ctx); err != nil {
		logger.Errorf("Catalog Service exited with error: %v", err)
		return
	}
	logger.Info("Catalog Service shut down gracefully.")
}

func setupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	setLevel(logger, level)
	return logger
}

func setLevel(logger *logrus.Logger, level string) {
	if level == "" {
		logger.SetLevel(logrus.InfoLevel)
		return
	}
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
}
