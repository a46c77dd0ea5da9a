package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/ListingScraper/cmd/server/factory"
	"github.com/ListingScraper/internal/infra/tracing"
	transport "github.com/ListingScraper/internal/transport/http"
	"github.com/ListingScraper/pkg/config"
	"github.com/ListingScraper/pkg/logging"
	"go.uber.org/fx"
)

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	fx.New(
		fx.Supply(cfg),
		fx.Provide(
			// Layout & parsing
			factory.NewLayout,
			factory.NewDocumentParser,
			factory.NewEntryExtractor,
			factory.NewPaginationResolver,

			// Infrastructure
			factory.NewFetcher,

			// Services
			factory.NewListingService,
			factory.NewScraper,
			factory.NewReadiness,

			// HTTP Server
			transport.NewHTTPServer,
		),
		fx.Invoke(
			SetupTracer,
			StartServer,
		),
	).Run()
}

// --- Invokers ---

func SetupTracer(lc fx.Lifecycle, cfg *config.Config) error {
	ctx := context.Background()
	shutdown, err := tracing.InitTracer(ctx, "listing-scraper", cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("Failed to initialize tracer", "error", err)
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Info("Shutting down tracer provider")
			return shutdown(ctx)
		},
	})
	return nil
}

func StartServer(lc fx.Lifecycle, server *http.Server, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				slog.Info("Starting listing scraper server", "address", server.Addr, "base_url", cfg.BaseURL)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
