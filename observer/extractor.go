package observer

import (
	"context"
	"time"

	quaycheck "github.com/portmatic/quaycheck"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// TableExtractor is the extraction contract the observer instruments.
// *extract.Extractor satisfies it.
type TableExtractor interface {
	Extract(content []byte) ([]quaycheck.Table, error)
}

// ObservedExtractor wraps a TableExtractor with OTEL instrumentation.
type ObservedExtractor struct {
	inner TableExtractor
	inst  *Instruments
}

// WrapExtractor returns an instrumented table extractor.
func WrapExtractor(inner TableExtractor, inst *Instruments) *ObservedExtractor {
	return &ObservedExtractor{inner: inner, inst: inst}
}

// Extract runs the wrapped extraction inside a span. document labels
// which upload is being processed ("pdf1" or "pdf2").
func (o *ObservedExtractor) Extract(ctx context.Context, document string, content []byte) ([]quaycheck.Table, error) {
	ctx, span := o.inst.Tracer.Start(ctx, "extract.document", trace.WithAttributes(
		AttrDocument.String(document),
	))
	defer span.End()
	start := time.Now()

	tables, err := o.inner.Extract(content)

	durationMs := float64(time.Since(start).Milliseconds())
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	rows := 0
	for _, t := range tables {
		rows += len(t.Rows)
	}
	span.SetAttributes(AttrTables.Int(len(tables)), AttrRows.Int(rows))

	docAttr := metric.WithAttributes(AttrDocument.String(document))
	o.inst.TablesExtracted.Add(ctx, int64(len(tables)), docAttr)
	o.inst.RowsExtracted.Add(ctx, int64(rows), docAttr)
	o.inst.ExtractDuration.Record(ctx, durationMs, metric.WithAttributes(
		AttrDocument.String(document),
		attribute.String("status", status),
	))

	// Structured log
	var rec otellog.Record
	rec.SetSeverity(otellog.SeverityInfo)
	rec.SetBody(otellog.StringValue("extraction completed"))
	rec.AddAttributes(
		otellog.String("extract.document", document),
		otellog.Int("extract.tables", len(tables)),
		otellog.Int("extract.rows", rows),
		otellog.Float64("extract.duration_ms", durationMs),
		otellog.String("status", status),
	)
	o.inst.Logger.Emit(ctx, rec)

	return tables, err
}
