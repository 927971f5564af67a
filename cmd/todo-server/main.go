package main

import (
	"log/slog"
	"os"

	"git.sr.ht/~jakintosh/todo-server/internal/config"
	"git.sr.ht/~jakintosh/todo-server/internal/logging"
	"git.sr.ht/~jakintosh/todo-server/internal/store"
	"git.sr.ht/~jakintosh/todo-server/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal(slog.Default(), "Failed to load configuration", err)
	}

	// Initialize Store
	s, err := store.NewSQLiteStore(cfg.DatabasePath(), cfg.MaxConns)
	if err != nil {
		fatal(slog.Default(), "Failed to initialize store", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	appLog := logger.With("component", logging.ComponentServer)

	// Initialize Web Server
	srv, err := web.NewServer(s, web.ServerOptions{Logger: logger})
	if err != nil {
		fatal(appLog, "Failed to initialize server", err)
	}

	// Start Server
	appLog.Debug("listening", "addr", config.ListenAddr)
	if err := srv.HTTPServer(config.ListenAddr).ListenAndServe(); err != nil {
		fatal(appLog, "Server failed", err)
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
