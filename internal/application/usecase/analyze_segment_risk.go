package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"

	"github.com/AaronStockburger/job-worker/internal/application/dto"
	"github.com/AaronStockburger/job-worker/internal/application/validation"
	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/port"
	"github.com/AaronStockburger/job-worker/internal/domain/service"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

// AnalyzeSegmentRiskConfig holds the per-worker settings of the use case.
type AnalyzeSegmentRiskConfig struct {
	DefaultMode valueobject.AnalysisMode
	Locale      language.Tag
	SegmentKeys []string
}

// AnalyzeSegmentRisk is the use case that scores the segments of one job against
// the profile of the selected analysis mode. At most one job is executed at a time;
// every intake path of a worker shares one instance.
type AnalyzeSegmentRisk struct {
	slot        *semaphore.Weighted
	resolver    port.ProfileResolver
	aggregator  *service.RiskAggregator
	validator   *validation.VariablesValidator
	defaultMode valueobject.AnalysisMode
	locale      language.Tag
	segmentKeys []string
}

// NewAnalyzeSegmentRisk creates a new AnalyzeSegmentRisk use case.
func NewAnalyzeSegmentRisk(
	resolver port.ProfileResolver,
	aggregator *service.RiskAggregator,
	cfg AnalyzeSegmentRiskConfig,
) (*AnalyzeSegmentRisk, error) {
	validator, err := validation.NewVariablesValidator(cfg.SegmentKeys)
	if err != nil {
		return nil, fmt.Errorf("building variables validator: %w", err)
	}

	return &AnalyzeSegmentRisk{
		slot:        semaphore.NewWeighted(1),
		resolver:    resolver,
		aggregator:  aggregator,
		validator:   validator,
		defaultMode: cfg.DefaultMode,
		locale:      cfg.Locale,
		segmentKeys: append([]string(nil), cfg.SegmentKeys...),
	}, nil
}

// Execute drives job through its states. It waits until no other job is in flight,
// giving up when ctx ends. Input is checked before the profile is fetched, the
// profile is fetched exactly once, and on any failure the job ends in FAILED with
// the cause returned and no output.
func (uc *AnalyzeSegmentRisk) Execute(ctx context.Context, job *model.RiskAnalysisJob, vars map[string]any) (dto.AnalysisOutput, error) {
	out, err := uc.executeExclusive(ctx, job, vars)
	if err != nil {
		if failErr := job.Fail(err); failErr != nil {
			return dto.AnalysisOutput{}, fmt.Errorf("%w (%v)", err, failErr)
		}
		return dto.AnalysisOutput{}, err
	}
	return out, nil
}

func (uc *AnalyzeSegmentRisk) executeExclusive(ctx context.Context, job *model.RiskAnalysisJob, vars map[string]any) (dto.AnalysisOutput, error) {
	if err := uc.slot.Acquire(ctx, 1); err != nil {
		return dto.AnalysisOutput{}, fmt.Errorf("waiting for the job in flight: %w", err)
	}
	defer uc.slot.Release(1)

	return uc.execute(ctx, job, vars)
}

func (uc *AnalyzeSegmentRisk) execute(ctx context.Context, job *model.RiskAnalysisJob, vars map[string]any) (dto.AnalysisOutput, error) {
	// 1. Received: validate and decode variables, select the mode.
	if err := uc.validator.Validate(vars); err != nil {
		return dto.AnalysisOutput{}, err
	}
	req, err := dto.DecodeVariables(vars, uc.segmentKeys)
	if err != nil {
		return dto.AnalysisOutput{}, err
	}
	selection, err := service.SelectAnalysisMode(req.AnalysisDecision, req.AnalysisMode, uc.defaultMode)
	if err != nil {
		return dto.AnalysisOutput{}, err
	}
	segments, err := req.ToSegmentInputs()
	if err != nil {
		return dto.AnalysisOutput{}, err
	}

	// 2. Scoring: one profile fetch, then score and aggregate.
	if err := job.BeginScoring(selection.Mode, selection.Decision); err != nil {
		return dto.AnalysisOutput{}, err
	}

	profile, err := uc.resolver.Resolve(ctx, selection.Mode)
	if err != nil {
		if !errors.Is(err, model.ErrProfileUnavailable) {
			err = fmt.Errorf("%w: %v", model.ErrProfileUnavailable, err)
		}
		return dto.AnalysisOutput{}, err
	}
	if profile == nil {
		return dto.AnalysisOutput{}, fmt.Errorf("%w: no profile for mode %s", model.ErrProfileUnavailable, selection.Mode)
	}
	if err := profile.Validate(selection.Mode); err != nil {
		return dto.AnalysisOutput{}, err
	}

	result, err := uc.aggregator.Evaluate(segments, profile)
	if err != nil {
		return dto.AnalysisOutput{}, err
	}

	// 3. Completed.
	if err := job.Complete(result); err != nil {
		return dto.AnalysisOutput{}, err
	}

	return dto.FromResult(result, selection, uc.locale), nil
}
