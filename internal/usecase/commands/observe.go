package commands

import (
	"context"

	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/pkg/tracing"

	"go.opentelemetry.io/otel/codes"
)

var tracer = tracing.Tracer("commands")

// observe wraps a command in a span and records its outcome. Expected business
// rejections keep the span status OK so traces only flag real failures.
func observe(ctx context.Context, m *metrics.Metrics, operation string, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, operation)
	defer span.End()

	err := fn(ctx)
	m.ObserveOperation(operation, err)

	if err != nil {
		span.RecordError(err)
		if metrics.Outcome(err) == "error" {
			span.SetStatus(codes.Error, err.Error())
		}
	}
	return err
}
