package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gag-stock-bot/internal/common/clock"
	"gag-stock-bot/internal/common/config"
	"gag-stock-bot/internal/common/logger"
	"gag-stock-bot/internal/platform/messenger"
	"gag-stock-bot/internal/platform/storage"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if debugFlag {
		cfg.Debug = true
	}
	logger.Init(serviceName, cfg.Debug)
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info().
		Str("version", Version).
		Bool("debug", cfg.Debug).
		Str("store", cfg.Store.Driver).
		Msg("Starting Grow A Garden bot")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	gw := messenger.NewClient(messenger.Options{
		BaseURL: cfg.Messenger.GraphURL,
		Version: cfg.Messenger.GraphVersion,
		Token:   cfg.Messenger.PageAccessToken,
		RPS:     cfg.Messenger.RPS,
		Timeout: cfg.Messenger.Timeout,
	})
	if cfg.Messenger.AdminID == "" {
		logger.Warn().Msg("ADMIN_ID is not set; nobody will have admin commands")
	}

	b := newBot(cfg, store, gw, clock.New(cfg.Location()))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      b.router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = b.listener.Run(ctx)
	}()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("🚀 Bot running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		logger.Error().Err(err).Msg("HTTP server failed")
		stop()
	}

	logger.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error().Err(shutdownErr).Msg("Server forced to shutdown")
	}
	wg.Wait()

	logger.Info().Msg("Bot exited")
	return err
}
