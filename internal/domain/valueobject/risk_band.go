package valueobject

// Probability breakpoints shared by risk levels and recommendations.
// Bands are inclusive at the lower bound and exclusive at the upper bound.
const (
	MediumRiskThreshold = 0.4
	HighRiskThreshold   = 0.7
)

// RiskBand is a classification band of the overload probability. A band owns both
// the risk level and the recommendation so the two always move together.
type RiskBand struct {
	level          RiskLevel
	recommendation RecommendationCode
}

var (
	BandLow    = RiskBand{level: RiskLevelLow, recommendation: RecommendationNoAction}
	BandMedium = RiskBand{level: RiskLevelMedium, recommendation: RecommendationManualReview}
	BandHigh   = RiskBand{level: RiskLevelHigh, recommendation: RecommendationMeasureRequired}
)

// BandFromProbability classifies an overload probability.
func BandFromProbability(probability float64) RiskBand {
	switch {
	case probability >= HighRiskThreshold:
		return BandHigh
	case probability >= MediumRiskThreshold:
		return BandMedium
	default:
		return BandLow
	}
}

// RiskLevel returns the band's risk level.
func (b RiskBand) RiskLevel() RiskLevel {
	return b.level
}

// Recommendation returns the band's recommendation code.
func (b RiskBand) Recommendation() RecommendationCode {
	return b.recommendation
}

// Equal checks equality with another RiskBand.
func (b RiskBand) Equal(other RiskBand) bool {
	return b.level.Equal(other.level)
}
