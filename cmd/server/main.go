package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"diet-diary/cmd/config"
	migration "diet-diary/cmd/database/migrate"
	"diet-diary/internal/utils"
	"diet-diary/internal/utils/logging"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	if err := utils.LoadConfig(*configPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("failed to load config: %v", err)
		}
		log.Printf("%v; continuing with environment configuration only", err)
	}

	logger, err := logging.New(logging.ConfigFrom(utils.GetConfigOrDefault))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := migration.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	app, err := config.NewApp(db, logger)
	if err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + utils.GetConfigOrDefault("APP_PORT", "8080")
	logger.Info("listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
