package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/msniranjan18/chit-chat-lite/config"
	"github.com/msniranjan18/chit-chat-lite/pkg/auth"
	"github.com/msniranjan18/chit-chat-lite/pkg/handlers"
	"github.com/msniranjan18/chit-chat-lite/pkg/routes"
	"github.com/msniranjan18/chit-chat-lite/pkg/store"
)

// @title ChitChat Lite API
// @version 1.0
// @description Phone-number messaging backend: login, contacts, user search and direct chats.
// @BasePath /api
func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("Starting ChitChat Lite server", "port", cfg.Server.Port, "env", cfg.Server.Env, "auth_mode", cfg.Auth.Mode)

	// 1. Storage
	storage, err := store.NewStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("connect storage: %w", err)
	}
	defer storage.Close()

	if cfg.Database.AutoMigrate {
		if err := storage.InitSchema(ctx); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}
	}

	if cfg.Presence.Timeout > 0 {
		go storage.StartPresenceSweeper(ctx, cfg.Presence.SweepInterval, cfg.Presence.Timeout)
	}

	// 2. Identity
	var identity auth.Resolver = auth.HeaderResolver{}
	var tokens handlers.TokenIssuer
	if cfg.Auth.Mode == config.AuthModeJWT {
		jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration)
		identity = jwtManager
		tokens = jwtManager
	}

	// 3. Router
	router := routes.NewRouter(storage, identity, tokens, cfg, logger)

	// 4. HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	return serve(ctx, server, cfg.Server.ShutdownTimeout, logger)
}

// serve runs server until it fails or ctx is done, then shuts it down
// gracefully. A clean shutdown returns nil.
func serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server is ready to accept connections", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Server.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
