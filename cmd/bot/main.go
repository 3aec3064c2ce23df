package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"okved_game/internal/config"
	"okved_game/internal/domain/service/game"
	"okved_game/internal/infrastructure/okved"
	"okved_game/internal/transport/bot"
	"okved_game/internal/transport/bot/handler"
	"okved_game/internal/worker"
	"okved_game/pkg/contextx"
	"okved_game/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(log)

	if err := run(ctx, log); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}

func run(ctx context.Context, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.Okved.FetchTimeout}

	catalogRepo := okved.NewRepository(cfg.Okved, httpClient)
	session := game.NewSession(catalogRepo)

	var refresher *worker.CatalogRefresher
	if cfg.Okved.RefreshInterval > 0 {
		refresher = worker.NewCatalogRefresher(catalogRepo, cfg.Okved.RefreshInterval)
		if err := refresher.Start(ctx); err != nil {
			return fmt.Errorf("refresher.Start: %w", err)
		}
		defer refresher.Stop()
	}

	gameHandler := handler.New(session, catalogRepo, refresher)

	b, err := bot.New(cfg, gameHandler)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	log.Info("bot started")

	if err := b.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("bot.Run: %w", err)
	}

	return nil
}
