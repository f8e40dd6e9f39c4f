package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promosync/internal/api"
	"promosync/internal/config"
	"promosync/internal/events"
	"promosync/internal/logger"
	"promosync/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize in-memory stores (process lifetime only)
	stores := api.NewStores()

	// Sync event publisher is optional: disabled unless brokers are set
	var publisher *events.Publisher
	if cfg.KafkaBrokers != "" {
		publisher = events.NewPublisher(cfg.KafkaBrokers, cfg.SyncEventsTopic, logger)
		logger.Info("Publishing sync events to %s (topic %s)", cfg.KafkaBrokers, cfg.SyncEventsTopic)
	}

	// Start the sync job dispatcher
	dispatcher := worker.NewDispatcher(cfg.SyncWorkers, cfg.SyncQueueSize, logger)
	dispatcher.Start()

	// Initialize API server
	server := api.New(cfg, logger, stores, dispatcher, publisher)

	go func() {
		logger.Info("Starting API server on port " + cfg.APIPort)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("Server shutdown failed: %v", err)
	}

	dispatcher.Stop()
	if err := publisher.Close(); err != nil {
		logger.Error("Failed to close event publisher: %v", err)
	}
}
