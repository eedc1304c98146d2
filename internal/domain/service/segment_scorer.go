package service

import (
	"fmt"
	"math"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
)

const (
	minSegmentScore = 0
	maxSegmentScore = 100
)

// SegmentScorer is a domain service that turns one segment's telemetry into a
// risk score using the weights of an analysis profile.
type SegmentScorer struct{}

// NewSegmentScorer creates a new SegmentScorer instance.
func NewSegmentScorer() *SegmentScorer {
	return &SegmentScorer{}
}

// Score computes weatherWeight + incidentWeight*incidents + loadWeight*loadRatio,
// rounded to the nearest integer and clamped into [0,100].
// It fails with ErrInvalidProfile if the profile has no weight for the segment's weather.
func (s *SegmentScorer) Score(segment model.SegmentInput, profile *model.AnalysisProfile) (int, error) {
	weatherWeight, ok := profile.WeatherWeight(segment.Weather())
	if !ok {
		return 0, fmt.Errorf("%w: no weight for weather %q (segment %s)",
			model.ErrInvalidProfile, segment.Weather(), segment.Key())
	}

	raw := weatherWeight +
		profile.IncidentWeight()*float64(segment.Incidents()) +
		profile.LoadWeight()*segment.LoadRatio()

	return clampScore(raw), nil
}

func clampScore(raw float64) int {
	rounded := math.Round(raw)
	if math.IsNaN(rounded) {
		return minSegmentScore
	}
	if rounded < minSegmentScore {
		return minSegmentScore
	}
	if rounded > maxSegmentScore {
		return maxSegmentScore
	}
	return int(rounded)
}
