// Package main is the entry point for the EventHub terminal client.
//
// The main package stays minimal — its job is to:
// 1. Read configuration (env vars, optional .env file)
// 2. Create dependencies (logger, local database, API client, controller)
// 3. Hand control to the interactive loop
//
// All actual logic lives in the imported packages (internal/controller,
// internal/api, internal/store). This separation keeps the components
// testable without a terminal attached.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/eventhub-client/internal/api"
	"github.com/sakif/eventhub-client/internal/config"
	"github.com/sakif/eventhub-client/internal/controller"
	"github.com/sakif/eventhub-client/internal/store/sqlite"
)

func main() {
	// Logs go to stderr so they never interleave with the rendered event
	// list on stdout. Level comes from EVENTHUB_LOG_LEVEL.
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// The local database holds the session and the registration cache.
	// Ensure its directory exists first (like `mkdir -p`).
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", dir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open local database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	// Composition root: the controller is the only component that mutates
	// view state; everything else is injected into it here.
	client := api.New(cfg.APIBaseURL, logger)
	ctrl := controller.New(client, db, db, logger)

	r := newREPL(ctrl, os.Stdin, os.Stdout)
	if err := r.run(context.Background()); err != nil {
		logger.Error("client error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
