package operations

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "campaignclean/internal/errors"
	"campaignclean/internal/infrastructure"
)

const (
	TracerName = "campaignclean.operation"
)

// RunTracer provides OpenTelemetry instrumentation for a normalizer run
type RunTracer struct {
	tracer trace.Tracer
}

// NewRunTracer wraps tracer. A nil tracer falls back to the global provider.
func NewRunTracer(tracer trace.Tracer) *RunTracer {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}
	return &RunTracer{tracer: tracer}
}

// TraceRun creates a span for the whole run
func (rt *RunTracer) TraceRun(ctx context.Context, runID string) (context.Context, trace.Span) {
	return rt.tracer.Start(ctx, "normalizer.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", runID),
		),
	)
}

// TraceStep creates a span for one Step
func (rt *RunTracer) TraceStep(ctx context.Context, runID, stepID string) (context.Context, trace.Span) {
	return rt.tracer.Start(ctx, "normalizer.step."+stepID,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("step.id", stepID),
		),
	)
}

// RecordStepCompletion sets the outcome of the Step span carried by ctx
func (rt *RunTracer) RecordStepCompletion(ctx context.Context, duration time.Duration, err error) {
	attrs := map[string]interface{}{
		"step.duration_seconds": duration.Seconds(),
	}

	if err != nil {
		attrs["step.error_type"] = string(apperrors.TypeOf(err))
		infrastructure.SetSpanAttributes(ctx, attrs)
		infrastructure.RecordError(ctx, err)
		return
	}
	infrastructure.SetSpanAttributes(ctx, attrs)
	trace.SpanFromContext(ctx).SetStatus(codes.Ok, "step completed")
}

// RecordRunCompletion sets the outcome of the run span
func (rt *RunTracer) RecordRunCompletion(span trace.Span, state *RunState) {
	span.SetAttributes(
		attribute.String("run.status", string(state.Status)),
		attribute.Int("run.tables", len(state.Tables)),
	)
	if state.Unified != nil {
		span.SetAttributes(attribute.Int("run.rows", state.Unified.Len()))
	}

	if state.Error != nil {
		span.SetStatus(codes.Error, state.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "run completed")
}
