package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

func TestBandFromProbability_Boundaries(t *testing.T) {
	tests := []struct {
		name           string
		probability    float64
		level          valueobject.RiskLevel
		recommendation valueobject.RecommendationCode
	}{
		{"0 is LOW", 0, valueobject.RiskLevelLow, valueobject.RecommendationNoAction},
		{"0.39999 is LOW", 0.39999, valueobject.RiskLevelLow, valueobject.RecommendationNoAction},
		{"0.4 is MEDIUM", 0.4, valueobject.RiskLevelMedium, valueobject.RecommendationManualReview},
		{"0.55 is MEDIUM", 0.55, valueobject.RiskLevelMedium, valueobject.RecommendationManualReview},
		{"0.69999 is MEDIUM", 0.69999, valueobject.RiskLevelMedium, valueobject.RecommendationManualReview},
		{"0.7 is HIGH", 0.7, valueobject.RiskLevelHigh, valueobject.RecommendationMeasureRequired},
		{"1 is HIGH", 1, valueobject.RiskLevelHigh, valueobject.RecommendationMeasureRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			band := valueobject.BandFromProbability(tt.probability)
			assert.True(t, tt.level.Equal(band.RiskLevel()),
				"expected %s for %v, got %s", tt.level, tt.probability, band.RiskLevel())
			assert.True(t, tt.recommendation.Equal(band.Recommendation()),
				"expected %s for %v, got %s", tt.recommendation, tt.probability, band.Recommendation())
		})
	}
}

func TestRiskLevelFromProbability_MatchesBand(t *testing.T) {
	for _, p := range []float64{0, 0.2, 0.39, 0.4, 0.6, 0.7, 0.99} {
		band := valueobject.BandFromProbability(p)
		assert.True(t, band.RiskLevel().Equal(valueobject.RiskLevelFromProbability(p)))
	}
}

func TestRecommendationCode_Text(t *testing.T) {
	assert.Equal(t, "No action required, keep monitoring.",
		valueobject.RecommendationNoAction.Text(language.English))
	assert.Equal(t, "Manual review by a grid engineer recommended.",
		valueobject.RecommendationManualReview.Text(language.English))
	assert.Equal(t, "Maßnahme erforderlich: Wartung oder Netzverstärkung zeitnah einplanen.",
		valueobject.RecommendationMeasureRequired.Text(language.German))
	assert.Empty(t, valueobject.RecommendationCode{}.Text(language.English))
}

func TestMatchLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"de", language.German},
		{"de-DE", language.German},
		{"fr", language.English},
		{"not a locale!", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, valueobject.MatchLocale(tt.input))
		})
	}
}
