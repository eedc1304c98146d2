package model

import (
	"maps"

	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

// ScoreResult is the outcome of scoring every segment of a job against one profile.
type ScoreResult struct {
	segmentScores       map[string]int
	topRiskSegment      string
	riskLevel           valueobject.RiskLevel
	recommendation      valueobject.RecommendationCode
	maxScore            int
	overloadProbability float64
}

// NewScoreResult assembles a result. The score map is copied.
func NewScoreResult(
	segmentScores map[string]int,
	topRiskSegment string,
	maxScore int,
	overloadProbability float64,
	band valueobject.RiskBand,
) ScoreResult {
	return ScoreResult{
		segmentScores:       maps.Clone(segmentScores),
		topRiskSegment:      topRiskSegment,
		maxScore:            maxScore,
		overloadProbability: overloadProbability,
		riskLevel:           band.RiskLevel(),
		recommendation:      band.Recommendation(),
	}
}

// SegmentScores returns a copy of the per-segment scores.
func (r ScoreResult) SegmentScores() map[string]int {
	return maps.Clone(r.segmentScores)
}

// --- Accessors ---

func (r ScoreResult) TopRiskSegment() string                         { return r.topRiskSegment }
func (r ScoreResult) MaxScore() int                                  { return r.maxScore }
func (r ScoreResult) OverloadProbability() float64                   { return r.overloadProbability }
func (r ScoreResult) RiskLevel() valueobject.RiskLevel               { return r.riskLevel }
func (r ScoreResult) Recommendation() valueobject.RecommendationCode { return r.recommendation }
