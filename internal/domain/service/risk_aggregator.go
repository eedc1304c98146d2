package service

import (
	"cmp"
	"fmt"
	"maps"
	"math/big"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

// probabilityPlaces is the number of decimal places overload probabilities are reported with.
const probabilityPlaces = 2

// exactFloat64Digits is enough fractional digits to print any float64 exactly.
const exactFloat64Digits = 1074

// RiskAssessment is the probability and classification derived from a maximal segment score.
type RiskAssessment struct {
	OverloadProbability float64
	Band                valueobject.RiskBand
}

// RiskAggregator is a domain service that combines per-segment scores into the
// job-level risk picture.
type RiskAggregator struct {
	scorer *SegmentScorer
}

// NewRiskAggregator creates a new RiskAggregator using the given scorer.
func NewRiskAggregator(scorer *SegmentScorer) *RiskAggregator {
	return &RiskAggregator{scorer: scorer}
}

// Aggregate picks the top-risk segment: highest score first, ties broken by the
// lexicographically smallest key.
func (a *RiskAggregator) Aggregate(scores map[string]int) (string, int, error) {
	if len(scores) == 0 {
		return "", 0, fmt.Errorf("%w: no segment scores to aggregate", model.ErrInvalidInput)
	}

	keys := slices.SortedFunc(maps.Keys(scores), func(x, y string) int {
		if c := cmp.Compare(scores[y], scores[x]); c != 0 {
			return c
		}
		return cmp.Compare(x, y)
	})

	top := keys[0]
	return top, scores[top], nil
}

// DeriveRisk maps the maximal score onto an overload probability in [0,1] with two
// decimals and classifies it into a risk band.
func (a *RiskAggregator) DeriveRisk(maxScore int, profile *model.AnalysisProfile) RiskAssessment {
	base := profile.OverloadBase()
	raw := base + (float64(maxScore)/100)*(1-base)

	p := roundProbability(clamp01(raw))
	return RiskAssessment{
		OverloadProbability: p,
		Band:                valueobject.BandFromProbability(p),
	}
}

// Evaluate scores every segment against the profile and aggregates the results.
// Segment keys must be unique.
func (a *RiskAggregator) Evaluate(segments []model.SegmentInput, profile *model.AnalysisProfile) (model.ScoreResult, error) {
	if len(segments) == 0 {
		return model.ScoreResult{}, fmt.Errorf("%w: at least one segment is required", model.ErrInvalidInput)
	}

	scores := make(map[string]int, len(segments))
	for _, seg := range segments {
		if _, dup := scores[seg.Key()]; dup {
			return model.ScoreResult{}, fmt.Errorf("%w: duplicate segment key %q", model.ErrInvalidInput, seg.Key())
		}
		score, err := a.scorer.Score(seg, profile)
		if err != nil {
			return model.ScoreResult{}, err
		}
		scores[seg.Key()] = score
	}

	top, maxScore, err := a.Aggregate(scores)
	if err != nil {
		return model.ScoreResult{}, err
	}

	risk := a.DeriveRisk(maxScore, profile)
	return model.NewScoreResult(scores, top, maxScore, risk.OverloadProbability, risk.Band), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// roundProbability rounds half away from zero on the exact binary value of p, so
// 0.715 (stored as 0.71499999...) becomes 0.71 while 0.875 becomes 0.88.
func roundProbability(p float64) float64 {
	exact := new(big.Float).SetFloat64(p).Text('f', exactFloat64Digits)
	return decimal.RequireFromString(exact).Round(probabilityPlaces).InexactFloat64()
}
