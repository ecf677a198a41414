// Package app wires the dataset, configuration, and the dashboard
// server together and owns the process lifecycle.
package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aqdash-org/aqdash/internal/controllers/dashserver"
	"github.com/aqdash-org/aqdash/internal/dataset"
	"github.com/aqdash-org/aqdash/internal/log"
	"github.com/aqdash-org/aqdash/pkg/config"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	cfgData *config.ConfigData
	logger  *zap.SugaredLogger
}

// New creates a new application instance
func New(cfgData *config.ConfigData, logger *zap.SugaredLogger) *App {
	return &App{
		cfgData: cfgData,
		logger:  logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Load the embedded dataset once; it is read-only for the lifetime
	// of the process
	records, err := dataset.Load()
	if err != nil {
		return err
	}
	log.Infof("loaded %d air quality records", len(records))

	// Initialize and start the dashboard server
	ctrl, err := dashserver.NewController(ctx, &wg, a.cfgData, records, a.logger)
	if err != nil {
		return err
	}
	if err := ctrl.StartController(); err != nil {
		return err
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
