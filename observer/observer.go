// Package observer provides OTEL-based observability for quaycheck.
//
// It emits traces, metrics, and logs for the reconciliation endpoint and
// the PDF extraction pipeline via OpenTelemetry. Users export to any
// OTEL-compatible backend by setting standard OTEL env vars.
package observer

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/portmatic/quaycheck/observer"

// Instruments holds all OTEL instruments used by the service.
type Instruments struct {
	Tracer trace.Tracer
	Meter  metric.Meter
	Logger otellog.Logger

	// Counters
	Requests        metric.Int64Counter
	RowsExtracted   metric.Int64Counter
	TablesExtracted metric.Int64Counter
	SectionsMatched metric.Int64Counter

	// Histograms
	RequestDuration metric.Float64Histogram
	ExtractDuration metric.Float64Histogram
}

// Init sets up OTEL trace, metric, and log providers with OTLP HTTP exporters.
// Configuration comes from standard OTEL env vars (OTEL_EXPORTER_OTLP_ENDPOINT, etc.).
// Returns a shutdown function that must be called on application exit.
func Init(ctx context.Context) (*Instruments, func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName("quaycheck")),
		resource.WithFromEnv(),
	)
	if err != nil {
		return nil, nil, err
	}

	// Trace provider
	traceExp, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	// Metric provider
	metricExp, err := otlpmetrichttp.New(ctx)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	// Log provider
	logExp, err := otlploghttp.New(ctx)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, nil, err
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExp)),
		sdklog.WithResource(res),
	)
	global.SetLoggerProvider(lp)

	inst, err := newInstruments()
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		_ = lp.Shutdown(ctx)
		return nil, nil, err
	}

	shutdown := func(ctx context.Context) error {
		return errors.Join(
			tp.Shutdown(ctx),
			mp.Shutdown(ctx),
			lp.Shutdown(ctx),
		)
	}

	return inst, shutdown, nil
}

func newInstruments() (*Instruments, error) {
	tracer := otel.Tracer(scopeName)
	meter := otel.Meter(scopeName)
	logger := global.GetLoggerProvider().Logger(scopeName)

	requests, err := meter.Int64Counter("reconcile.requests",
		metric.WithDescription("Reconciliation request count"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, err
	}

	rowsExtracted, err := meter.Int64Counter("extract.rows",
		metric.WithDescription("Table rows surviving noise filtering"),
		metric.WithUnit("{row}"))
	if err != nil {
		return nil, err
	}

	tablesExtracted, err := meter.Int64Counter("extract.tables",
		metric.WithDescription("Tally tables recognized during extraction"),
		metric.WithUnit("{table}"))
	if err != nil {
		return nil, err
	}

	sectionsMatched, err := meter.Int64Counter("reconcile.sections",
		metric.WithDescription("Sections evaluated per request"),
		metric.WithUnit("{section}"))
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram("reconcile.duration",
		metric.WithDescription("End-to-end request duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	extractDuration, err := meter.Float64Histogram("extract.duration",
		metric.WithDescription("Per-document extraction duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	return &Instruments{
		Tracer:          tracer,
		Meter:           meter,
		Logger:          logger,
		Requests:        requests,
		RowsExtracted:   rowsExtracted,
		TablesExtracted: tablesExtracted,
		SectionsMatched: sectionsMatched,
		RequestDuration: requestDuration,
		ExtractDuration: extractDuration,
	}, nil
}
