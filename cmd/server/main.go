package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"okved_game/internal/config"
	"okved_game/internal/domain/service/game"
	"okved_game/internal/infrastructure/okved"
	"okved_game/internal/server"
	"okved_game/internal/worker"
	"okved_game/pkg/application/modules"
	"okved_game/pkg/contextx"
	"okved_game/pkg/httpx"
	"okved_game/pkg/logx"
	"okved_game/pkg/middlewarex"
)

const httpServerReadHeaderTimeout = 5 * time.Second

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

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	masker := logx.NewSensitiveDataMasker()

	// 2. Клиент для источника справочника: логирование + bearer при наличии токена
	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(masker),
		httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
	)
	if cfg.Okved.Token != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, httpx.NewStaticAuthenticator(cfg.Okved.Token))
	}

	httpClient := &http.Client{
		Timeout:   cfg.Okved.FetchTimeout,
		Transport: transport,
	}

	// 3. Репозиторий справочника и игровой сервис
	catalogRepo := okved.NewRepository(cfg.Okved, httpClient)
	session := game.NewSession(catalogRepo)

	// 4. Роутер
	r := chi.NewRouter()
	r.Use(middlewarex.TraceID)
	r.Use(middlewarex.Logger)
	r.Use(middlewarex.Recovery)
	r.Use(middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen))
	r.Use(middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen))

	srv := server.NewServer(server.NewGameServer(session))
	srv.RegisterRoutes(r)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// 5. Фоновое обновление справочника (если включено)
	if cfg.Okved.RefreshInterval > 0 {
		refresher := worker.NewCatalogRefresher(catalogRepo, cfg.Okved.RefreshInterval)
		if err := refresher.Start(ctx); err != nil {
			return fmt.Errorf("refresher.Start: %w", err)
		}
		defer refresher.Stop()
	}

	// 6. Серверные модули
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
	}.Run(ctx, g)
	modules.MetricServer{ListenAddress: cfg.HTTP.MetricsListenAddress}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
