package operations

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"campaignclean/internal/config"
	"campaignclean/internal/dataprocessing"
	apperrors "campaignclean/internal/errors"
	"campaignclean/internal/exporter"
	"campaignclean/internal/infrastructure"
)

// Normalizer runs the load, check, transform and write steps in order.
// The first failing step aborts the run and every later step is skipped.
type Normalizer struct {
	steps   []Step
	logger  *slog.Logger
	metrics *infrastructure.RunMetrics
	tracer  *RunTracer
}

// NewNormalizer wires the standard steps from configuration
func NewNormalizer(cfg *config.Config, paths *config.Paths, logger *slog.Logger, metrics *infrastructure.RunMetrics, tracer trace.Tracer) *Normalizer {
	loader := dataprocessing.NewLoader(cfg.Loader, logger, metrics)
	writer := exporter.NewCSVWriter(paths, logger)

	steps := []Step{
		NewLoadStep(loader, paths.InputDir),
		NewSchemaStep(),
		NewClientStep(),
		NewCampaignStep(),
		NewEconomicsStep(),
		NewWriteStep(writer, paths, metrics),
	}
	return newNormalizer(steps, logger, metrics, tracer)
}

func newNormalizer(steps []Step, logger *slog.Logger, metrics *infrastructure.RunMetrics, tracer trace.Tracer) *Normalizer {
	return &Normalizer{
		steps:   steps,
		logger:  logger,
		metrics: metrics,
		tracer:  NewRunTracer(tracer),
	}
}

// Steps returns the configured steps in run order
func (n *Normalizer) Steps() []Step {
	return n.steps
}

// Run executes every step. The returned state is always non-nil and records
// the status of each step, including on failure.
func (n *Normalizer) Run(ctx context.Context) (*RunState, error) {
	ctx = infrastructure.EnsureRunID(ctx)
	runID := infrastructure.GetRunID(ctx)

	state := NewRunState(runID)
	for _, step := range n.steps {
		state.Steps = append(state.Steps, NewStepState(step.ID(), step.Name()))
	}

	ctx, span := n.tracer.TraceRun(ctx, runID)
	defer span.End()

	state.Start()
	n.logger.InfoContext(ctx, "run_start", slog.Int("steps", len(n.steps)))

	for i, step := range n.steps {
		if err := n.runStep(ctx, state, step, state.Steps[i]); err != nil {
			for _, rest := range state.Steps[i+1:] {
				rest.Skip("previous step failed")
			}

			stepErr := NewStepError(step.ID(), err)
			state.Fail(stepErr)
			n.tracer.RecordRunCompletion(span, state)
			n.logger.ErrorContext(ctx, "run_error",
				slog.String("step", step.ID()),
				slog.String("error_type", string(apperrors.TypeOf(err))),
				slog.String("error", err.Error()))
			return state, stepErr
		}
	}

	state.Complete()
	n.metrics.MarkSuccess(time.Now())
	n.tracer.RecordRunCompletion(span, state)

	attrs := []any{slog.Duration("duration", state.EndTime.Sub(state.StartTime))}
	if state.Unified != nil {
		attrs = append(attrs, slog.Int("rows", state.Unified.Len()))
	}
	n.logger.InfoContext(ctx, "run_complete", attrs...)
	return state, nil
}

func (n *Normalizer) runStep(ctx context.Context, state *RunState, step Step, stepState *StepState) error {
	if err := ctx.Err(); err != nil {
		stepState.Fail(err)
		return err
	}

	stepCtx, span := n.tracer.TraceStep(ctx, state.ID, step.ID())
	defer span.End()

	stepState.Start()
	n.logger.InfoContext(stepCtx, "step_start", slog.String("step", step.ID()))

	err := step.Execute(stepCtx, state)
	if err != nil {
		stepState.Fail(err)
	} else {
		stepState.Complete()
	}

	duration := stepState.Duration()
	n.metrics.ObserveStep(step.ID(), duration)
	n.tracer.RecordStepCompletion(stepCtx, duration, err)

	if err != nil {
		errType := apperrors.TypeOf(err)
		if errType == "" {
			errType = "INTERNAL"
		}
		n.metrics.StepFailures.WithLabelValues(step.ID(), string(errType)).Inc()
		n.logger.ErrorContext(stepCtx, "step_error",
			slog.String("step", step.ID()),
			slog.String("error", err.Error()))
		return err
	}

	n.logger.InfoContext(stepCtx, "step_complete",
		slog.String("step", step.ID()),
		slog.Duration("duration", duration))
	return nil
}
