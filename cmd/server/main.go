// Package main runs the travel planner API. It wires dependencies with
// samber/do v2, loads the places catalog, serves HTTP and shuts down
// gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/travel-planner/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/travel-planner/internal/adapters/http"
	"github.com/jsamuelsen11/travel-planner/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/travel-planner/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/travel-planner/internal/app"
	"github.com/jsamuelsen11/travel-planner/internal/app/placecatalog"
	"github.com/jsamuelsen11/travel-planner/internal/platform/config"
	"github.com/jsamuelsen11/travel-planner/internal/platform/health"
	"github.com/jsamuelsen11/travel-planner/internal/platform/httpclient"
	"github.com/jsamuelsen11/travel-planner/internal/platform/logging"
	"github.com/jsamuelsen11/travel-planner/internal/platform/telemetry"
	"github.com/jsamuelsen11/travel-planner/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.CatalogClient](injector))
	registry.Register(do.MustInvoke[*placecatalog.Catalog](injector))

	loadCatalog(ctx, cfg, logger, do.MustInvoke[*placecatalog.Catalog](injector))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}
	stop()

	// Shutdown applies cfg.Server.ShutdownTimeout.
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	if err := <-serverErr; err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// loadCatalog builds the place index before the first request. A failed
// load is logged and the service still starts; readiness reports the empty
// index and every place write is rejected as not in the catalog.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger, catalog *placecatalog.Catalog) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Catalog.FetchTimeout)
	defer cancel()

	start := time.Now()
	logger.Info("loading places catalog", slog.String("base_url", cfg.Client.BaseURL))

	entries, err := catalog.FetchAll(ctx)
	if err != nil {
		logger.Error("places catalog unavailable", slog.Any("error", err))
		return
	}

	logger.Info("places catalog loaded",
		slog.Int("entries", len(entries)),
		slog.Duration("duration", time.Since(start)),
	)
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, acl.CatalogName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.CatalogClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewCatalogClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*placecatalog.Catalog, error) {
		client := do.MustInvoke[*acl.CatalogClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		opts := placecatalog.Options{
			PageSize:     cfg.Catalog.PageSize,
			FetchWorkers: cfg.Catalog.FetchWorkers,
		}
		return placecatalog.New(client, opts, logger, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TravelService, error) {
		catalog := do.MustInvoke[*placecatalog.Catalog](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTravelManager(catalog, logger,
			app.WithPlacesLimit(cfg.Travel.PlacesLimit),
			app.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		return handlers.NewProjectHandler(do.MustInvoke[ports.TravelService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PlaceHandler, error) {
		return handlers.NewPlaceHandler(do.MustInvoke[ports.TravelService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.ProjectHandler](i),
			do.MustInvoke[*handlers.PlaceHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
