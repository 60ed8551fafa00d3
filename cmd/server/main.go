package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/oguzk/mobilebill/internal/api"
	"github.com/oguzk/mobilebill/internal/auth"
	"github.com/oguzk/mobilebill/internal/config"
	"github.com/oguzk/mobilebill/internal/middleware"
	"github.com/oguzk/mobilebill/internal/seed"
	"github.com/oguzk/mobilebill/internal/service"
	"github.com/oguzk/mobilebill/internal/storage/sqlite"
	"github.com/oguzk/mobilebill/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage; schema creation runs here.
	store, err := sqlite.New(cfg.Storage.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Storage.DBPath)

	// Seeding is a separate, explicit step.
	if cfg.Seed {
		if err := seed.Apply(context.Background(), store, seed.Default()); err != nil {
			slog.Error("Failed to apply seed data", "error", err)
			os.Exit(1)
		}
		slog.Info("Seed data applied")
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	authService := service.NewAuthService(authenticator, jwtManager, slog.Default())
	billService := service.NewBillService(store, cfg.Auth.AdminSubscriber, slog.Default())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := api.NewRouter(authService, billService, jwtManager, registry)
	handler := middleware.WithRequestID(middleware.Logging(router))

	// h2c allows HTTP/2 without TLS for local and proxied deployments.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      h2cHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", cfg.Server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
