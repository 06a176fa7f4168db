package cmd

import (
	"context"
	"fmt"

	"github.com/emberhq/ember/pkg/config"
	"github.com/emberhq/ember/pkg/otelhelper"
	"go.opentelemetry.io/otel/trace"
)

// NewTracer returns an OTLP tracer when tracing is enabled and a no-op tracer
// otherwise. The shutdown function is always safe to call.
//
// nolint:ireturn // Returning interface is intentional for OpenTelemetry tracing
func NewTracer(ctx context.Context, cfg config.TracingConfig) (trace.Tracer, otelhelper.ShutdownFunc, error) {
	if !cfg.Enabled {
		return otelhelper.NoopTracer(), func(context.Context) error { return nil }, nil
	}

	tracer, shutdown, err := otelhelper.NewTracer(ctx, cfg.ServiceName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	return tracer, shutdown, nil
}
