package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/AaronStockburger/job-worker/internal/application/dto"
	"github.com/AaronStockburger/job-worker/internal/application/usecase"
	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/port"
)

// Failure messages reported to the orchestration engine.
const (
	MessageServiceUnavailable = "risk analysis service unavailable"
	messageInvalidInput       = "invalid job input"
	messageInvalidProfile     = "invalid analysis profile"
)

// Outcome values of the riskworker.jobs counter.
const (
	outcomeCompleted = "completed"
	outcomeFailed    = "failed"
)

// JobHandler runs the risk analysis for each job handed over by the intake and
// reports exactly one terminal outcome per job.
type JobHandler struct {
	analyze    *usecase.AnalyzeSegmentRisk
	reporter   port.JobReporter
	logger     *slog.Logger
	jobs       metric.Int64Counter
	duration   metric.Float64Histogram
	jobTimeout time.Duration
}

// NewJobHandler creates a handler. Each job is bounded by jobTimeout.
func NewJobHandler(
	analyze *usecase.AnalyzeSegmentRisk,
	reporter port.JobReporter,
	meter metric.Meter,
	jobTimeout time.Duration,
	logger *slog.Logger,
) (*JobHandler, error) {
	jobs, err := meter.Int64Counter("riskworker.jobs",
		metric.WithDescription("Risk analysis jobs by terminal outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("creating jobs counter: %w", err)
	}
	duration, err := meter.Float64Histogram("riskworker.job.duration",
		metric.WithDescription("Time from receipt of a job to its terminal state."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating job duration histogram: %w", err)
	}

	return &JobHandler{
		analyze:    analyze,
		reporter:   reporter,
		logger:     logger,
		jobs:       jobs,
		duration:   duration,
		jobTimeout: jobTimeout,
	}, nil
}

// Process analyzes job and reports its outcome. Analysis and report run detached from
// ctx cancellation so that a shutdown never aborts a job in flight; the analysis is
// bounded by the job timeout or the job's own deadline, whichever comes first. A
// returned error means the outcome could not be reported.
func (h *JobHandler) Process(ctx context.Context, job port.Job) error {
	ctx = context.WithoutCancel(ctx)
	logger := h.logger.With("job_key", job.Key, "task_type", job.Type)

	rj, err := model.NewRiskAnalysisJob(job.Key, job.Type)
	if err != nil {
		h.record(ctx, outcomeFailed, 0)
		logger.Warn("rejecting job", "error", err)
		return h.reporter.Fail(ctx, job, fmt.Sprintf("%s: %v", messageInvalidInput, err))
	}

	runCtx, cancel := context.WithTimeout(ctx, h.jobTimeout)
	defer cancel()
	if !job.Deadline.IsZero() {
		var cancelDeadline context.CancelFunc
		runCtx, cancelDeadline = context.WithDeadline(runCtx, job.Deadline)
		defer cancelDeadline()
	}

	out, err := h.analyze.Execute(runCtx, rj, job.Variables)
	if !rj.Mode().IsZero() {
		logger = logger.With("analysis_mode", rj.Mode().String())
	}
	if err != nil {
		h.record(ctx, outcomeFailed, rj.Duration())
		logger.Warn("risk analysis failed", "state", rj.State().String(), "error", err)
		return h.reporter.Fail(ctx, job, FailureMessage(err))
	}

	h.record(ctx, outcomeCompleted, rj.Duration())
	logResult(logger, out)
	return h.reporter.Complete(ctx, job, out)
}

func (h *JobHandler) record(ctx context.Context, outcome string, d time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	h.jobs.Add(ctx, 1, attrs)
	h.duration.Record(ctx, d.Seconds(), attrs)
}

func logResult(logger *slog.Logger, out dto.AnalysisOutput) {
	logger.Info("risk analysis completed",
		"segment_scores", out.SegmentScores,
		"top_risk_segment", out.TopRiskSegment,
		"overload_probability", out.OverloadProbability,
		"risk_level", out.RiskLevel,
		"recommendation_code", out.RecommendationCode,
	)
}

// FailureMessage maps an analysis error onto the message reported to the engine.
// Profile service failures stay opaque.
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrProfileUnavailable):
		return MessageServiceUnavailable
	case errors.Is(err, model.ErrInvalidInput):
		return fmt.Sprintf("%s: %s", messageInvalidInput, detail(err, model.ErrInvalidInput))
	case errors.Is(err, model.ErrInvalidProfile):
		return fmt.Sprintf("%s: %s", messageInvalidProfile, detail(err, model.ErrInvalidProfile))
	default:
		return MessageServiceUnavailable
	}
}

// detail strips the sentinel prefix from a "<sentinel>: <detail>" message.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
