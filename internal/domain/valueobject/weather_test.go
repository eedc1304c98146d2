package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

func TestWeather_FromString(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.Weather
		wantErr  bool
	}{
		{"good", valueobject.WeatherGood, false},
		{"moderate", valueobject.WeatherModerate, false},
		{"bad", valueobject.WeatherBad, false},
		{"BAD", valueobject.WeatherBad, false},
		{" good ", valueobject.WeatherGood, false},
		{"gut", valueobject.WeatherGood, false},
		{"mittel", valueobject.WeatherModerate, false},
		{"schlecht", valueobject.WeatherBad, false},
		{"stormy", valueobject.Weather{}, true},
		{"", valueobject.Weather{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := valueobject.WeatherFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, result.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result))
		})
	}
}

func TestAllWeathers(t *testing.T) {
	all := valueobject.AllWeathers()
	require.Len(t, all, 3)
	assert.Equal(t, "good", all[0].String())
	assert.Equal(t, "bad", all[2].String())
}

func TestAnalysisMode_FromString(t *testing.T) {
	mode, err := valueobject.AnalysisModeFromString("Extended")
	require.NoError(t, err)
	assert.True(t, valueobject.AnalysisModeExtended.Equal(mode))

	_, err = valueobject.AnalysisModeFromString("deep")
	require.Error(t, err)
}

func TestAnalysisDecision_FromString(t *testing.T) {
	tests := []struct {
		input   string
		mode    valueobject.AnalysisMode
		wantErr bool
	}{
		{"STANDARD", valueobject.AnalysisModeStandard, false},
		{"EXTENDED", valueobject.AnalysisModeExtended, false},
		{"extended", valueobject.AnalysisModeExtended, false},
		{"SKIP", valueobject.AnalysisMode{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			decision, err := valueobject.AnalysisDecisionFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, decision.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.mode.Equal(decision.Mode()))
		})
	}
}

func TestJobState_IsTerminal(t *testing.T) {
	assert.False(t, valueobject.JobStateReceived.IsTerminal())
	assert.False(t, valueobject.JobStateScoring.IsTerminal())
	assert.True(t, valueobject.JobStateCompleted.IsTerminal())
	assert.True(t, valueobject.JobStateFailed.IsTerminal())
}
