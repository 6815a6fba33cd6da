package bootstrap

import (
	"context"

	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/pkg/tracing"

	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		metrics.New,
	),
	fx.Invoke(InitTracing),
)

func InitTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := tracing.InitTracerProvider(cfg.Tracing)
	if err != nil {
		return err
	}
	if shutdown == nil {
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
