package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/reelay/reelay/internal/api"
	"github.com/reelay/reelay/internal/config"
	"github.com/reelay/reelay/internal/metadata"
	"github.com/reelay/reelay/internal/server"
	"github.com/reelay/reelay/pkg/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServer(configPath string) error {
	// Locate and load config
	if configPath == "" {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		configPath = discovered
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	// TMDB client
	opts := []tmdb.Option{tmdb.WithLogger(logger)}
	if cfg.TMDB.BaseURL != "" {
		opts = append(opts, tmdb.WithBaseURL(cfg.TMDB.BaseURL))
	}
	if cfg.TMDB.Language != "" {
		opts = append(opts, tmdb.WithLanguage(cfg.TMDB.Language))
	}
	client := tmdb.New(cfg.TMDB.APIKey, opts...)

	// Cached metadata service
	svc := metadata.NewService(client, metadata.NewCache(), logger.With("component", "metadata"))

	// HTTP setup
	deps := api.ServerDeps{Movies: svc}
	if err := deps.Validate(); err != nil {
		return err
	}

	mux := http.NewServeMux()
	apiSrv := api.New(deps, api.Config{Version: version})
	apiSrv.RegisterRoutes(mux)

	handler := api.RequestID(api.LogRequests(api.Recover(mux, logger), logger))

	logger.Info("server starting",
		"addr", cfg.Addr(),
		"config", configPath,
		"language", cfg.TMDB.Language,
		"log_level", cfg.Server.LogLevel,
	)

	// Serve until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(handler, server.Config{Addr: cfg.Addr()}, logger)
	return runner.Run(ctx)
}
