// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// Package main is the entry point for the Raj Khabar API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rajkhabar/internal/cache"
	"rajkhabar/internal/cms"
	"rajkhabar/internal/config"
	"rajkhabar/internal/database"
	"rajkhabar/internal/httpapi"
	"rajkhabar/internal/middleware"
	"rajkhabar/internal/notify"
	"rajkhabar/internal/router"
	"rajkhabar/internal/storage"
	"rajkhabar/internal/store/postgres"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey for the taxonomy tree cache.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	treeCache := cache.NewTreeCache(valkeyClient, cache.DefaultTreeTTL)

	// Connect to S3-compatible object storage (optional; the API works
	// without it, media endpoints answer 503).
	var media *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		media, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"bucket", cfg.S3Bucket,
		)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	stores := postgres.NewStores(db)

	// Assemble the content service. The FCM notifier is optional.
	opts := []cms.Option{}
	if cfg.StrictRows {
		opts = append(opts, cms.WithStrictRows())
	}
	if fcm := notify.NewFCM(cfg.FCMServerKey); fcm != nil {
		opts = append(opts, cms.WithNotifier(fcm))
		slog.Info("fcm notifier enabled")
	} else {
		slog.Warn("fcm not configured, push notifications disabled")
	}
	svc := cms.New(stores, opts...)

	h := httpapi.New(svc, treeCache, media)
	tokenAuth := middleware.NewTokenAuth(cfg.JWTSecret)

	r := router.New(h, tokenAuth)

	// WriteTimeout must accommodate media uploads on slow links.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
