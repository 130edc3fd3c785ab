package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

// TracingOptions selects the span exporter and the root sampling ratio.
type TracingOptions struct {
	ServiceName string
	Exporter    string
	SampleRatio float64
	// Writer receives stdout exported spans.
	Writer io.Writer
}

// NewTracerProvider builds a batching SDK tracer provider exporting to exp.
func NewTracerProvider(serviceName string, exp sdktrace.SpanExporter, ratio float64) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewWithAttributes(
			attribute.String("service.name", serviceName),
		)),
		sdktrace.WithBatcher(exp),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
}

// InstallTracing sets the global tracer provider for o.Exporter and returns
// its shutdown func, which flushes pending spans. ExporterNone keeps the
// no-op provider.
func InstallTracing(o TracingOptions) (func(context.Context) error, error) {
	switch o.Exporter {
	case "", ExporterNone:
		return func(context.Context) error { return nil }, nil
	case ExporterStdout:
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", o.Exporter)
	}

	opts := []stdout.Option{stdout.WithoutMetricExport()}
	if o.Writer != nil {
		opts = append(opts, stdout.WithWriter(o.Writer))
	}

	exp, err := stdout.NewExporter(opts...)
	if err != nil {
		return nil, fmt.Errorf("stdout trace exporter: %w", err)
	}

	tp := NewTracerProvider(o.ServiceName, exp, o.SampleRatio)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
