// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/lakshyajain-0291/dailymeetbot/cliparse"
	"github.com/lakshyajain-0291/dailymeetbot/db"
	"github.com/lakshyajain-0291/dailymeetbot/groups"
	"github.com/lakshyajain-0291/dailymeetbot/notify"
	"github.com/lakshyajain-0291/dailymeetbot/router"
	"github.com/lakshyajain-0291/dailymeetbot/scheduler"
)

func main() {
	// Load .env if present; fall back to the process environment
	if err := godotenv.Load(); err != nil {
		slog.Info(".env file not found, using system environment variables")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the configured database
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Pick the message sink
	var sink notify.Sink = notify.LogSink{}
	if cfg.WebhookURL != "" {
		sink = notify.NewWebhookSink(cfg.WebhookURL)
		slog.Info("Webhook sink configured", "endpoint", cfg.WebhookURL)
	}

	// Build the group registry and resume saved schedules
	mgr := groups.NewManager(groups.NewStore(dbConn), sink, scheduler.SystemClock{}, scheduler.DefaultInterval)
	if err := mgr.Resume(); err != nil {
		slog.Error("failed to resume schedules", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(mgr, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	// Stop every auto-schedule trigger before exiting
	mgr.Shutdown()
}
