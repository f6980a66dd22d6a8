package telemetry

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/travel-planner/internal/platform/config"
)

// Providers owns the tracer and meter providers built by Setup. Metrics is
// nil when telemetry is disabled, which every recorder tolerates.
type Providers struct {
	Metrics *Metrics

	shutdowns []func(context.Context) error
}

// Setup builds the providers described by cfg. A disabled config yields
// empty Providers whose Shutdown is a no-op.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	p := &Providers{}
	if !cfg.Enabled {
		return p, nil
	}

	tp, err := InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	p.shutdowns = append(p.shutdowns, tp.Shutdown)

	mp, err := InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	p.shutdowns = append(p.shutdowns, mp.Shutdown)

	if p.Metrics, err = NewMetrics(mp, cfg.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return p, nil
}

// Shutdown flushes the providers in reverse order of creation and reports
// every failure.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range slices.Backward(p.shutdowns) {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	p.shutdowns = nil
	return errors.Join(errs...)
}
