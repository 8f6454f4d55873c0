package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "housebuilder/internal/adapters/in/http"
	"housebuilder/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

// Serve prepares the database, starts the scheduled jobs and serves the HTTP
// API until ctx is cancelled or the process receives SIGINT or SIGTERM.
func Serve(ctx context.Context, config Config) error {
	echoLevel, slogLevel, err := config.LogLevels()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))

	if err = postgres.EnsureDatabase(config.MaintenanceDSN(), config.DBName); err != nil {
		return err
	}

	gormDB, err := postgres.Open(config.DSN())
	if err != nil {
		return err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return err
	}

	app := NewCompositionRoot(config, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpadapter.NewRouter(app.CreateServer(), logger)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(echoLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()
	logger.Info("HTTP server started", "port", config.HTTPPort)

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown failed: %v", err)
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
