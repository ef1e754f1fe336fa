package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wandergate/catalog-api/pkg/config"
	"github.com/wandergate/catalog-api/pkg/log"
	"github.com/wandergate/catalog-api/pkg/sheets"
	"github.com/wandergate/catalog-api/pkg/store"
	"github.com/wandergate/catalog-api/pkg/webserver"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := log.Init(&cfg.Logging); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	logger.Info("Starting Catalog & Intake API Server")

	// Open storage and seed the catalog
	logger.WithField("driver", cfg.Database.Driver).Info("Opening storage...")
	storage, err := store.Open(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open storage")
	}

	// Initialize the spreadsheet mirror
	mirror, err := sheets.NewFromConfig(&cfg.Sheets, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize sheets mirror")
	}

	// Initialize web server
	logger.Info("Initializing web server...")
	server, err := webserver.New(cfg, storage, mirror, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize web server")
	}

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	logger.WithField("address", cfg.Server.GetServerAddr()).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create a context with timeout for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.GracefulStop)*time.Second)
	defer shutdownCancel()

	// Gracefully stop the web server
	if err := server.Stop(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	} else {
		logger.Info("Web server exited gracefully")
	}

	logger.Info("Application exited gracefully")
}
