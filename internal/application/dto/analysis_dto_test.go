package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/AaronStockburger/job-worker/internal/application/dto"
	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/service"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

func decodeJSON(t *testing.T, raw string) map[string]any {
	t.Helper()
	var vars map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &vars))
	return vars
}

func TestSegmentVariableName(t *testing.T) {
	assert.Equal(t, "segmentA_weather", dto.SegmentVariableName("A", dto.FieldWeather))
	assert.Equal(t, "segmentD_expectedLoad", dto.SegmentVariableName("D", dto.FieldExpectedLoad))
}

func TestDecodeVariables(t *testing.T) {
	t.Run("decodes selectors and segments", func(t *testing.T) {
		vars := decodeJSON(t, `{
			"analysisDecision": "EXTENDED",
			"segmentA_weather": "bad", "segmentA_incidents": 2, "segmentA_currentLoad": 80, "segmentA_expectedLoad": 100,
			"unrelated": {"nested": true}
		}`)

		req, err := dto.DecodeVariables(vars, []string{"A"})

		require.NoError(t, err)
		require.NotNil(t, req.AnalysisDecision)
		assert.Equal(t, "EXTENDED", *req.AnalysisDecision)
		assert.Nil(t, req.AnalysisMode)
		assert.Equal(t, []string{"A"}, req.SegmentKeys)

		seg := req.Segments["A"]
		require.NotNil(t, seg.Incidents)
		assert.Equal(t, 2, *seg.Incidents)
		assert.Equal(t, 80.0, *seg.CurrentLoad)
	})

	t.Run("null selector counts as absent", func(t *testing.T) {
		req, err := dto.DecodeVariables(decodeJSON(t, `{"analysisMode": null}`), []string{"A"})
		require.NoError(t, err)
		assert.Nil(t, req.AnalysisMode)
	})

	t.Run("absent segment fields stay nil", func(t *testing.T) {
		req, err := dto.DecodeVariables(decodeJSON(t, `{"segmentB_weather": "good"}`), []string{"B"})
		require.NoError(t, err)
		assert.NotNil(t, req.Segments["B"].Weather)
		assert.Nil(t, req.Segments["B"].Incidents)
	})

	t.Run("rejects fractional incidents", func(t *testing.T) {
		_, err := dto.DecodeVariables(decodeJSON(t, `{"segmentA_incidents": 2.5}`), []string{"A"})
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("rejects incidents beyond int64", func(t *testing.T) {
		for _, raw := range []string{"1e19", "9223372036854775808", "-1e19"} {
			_, err := dto.DecodeVariables(decodeJSON(t, `{"segmentA_incidents": `+raw+`}`), []string{"A"})
			require.ErrorIs(t, err, model.ErrInvalidInput, raw)
			assert.Contains(t, err.Error(), "within int64 range", raw)
		}
	})

	t.Run("accepts a large integral float", func(t *testing.T) {
		req, err := dto.DecodeVariables(decodeJSON(t, `{"segmentA_incidents": 1e15}`), []string{"A"})
		require.NoError(t, err)
		assert.Equal(t, 1_000_000_000_000_000, *req.Segments["A"].Incidents)
	})

	t.Run("rejects a numeric string load", func(t *testing.T) {
		_, err := dto.DecodeVariables(decodeJSON(t, `{"segmentA_currentLoad": "80"}`), []string{"A"})
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("rejects a non-string mode", func(t *testing.T) {
		_, err := dto.DecodeVariables(decodeJSON(t, `{"analysisMode": 1}`), []string{"A"})
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestAnalyzeSegmentsRequest_ToSegmentInputs(t *testing.T) {
	t.Run("keeps configured key order", func(t *testing.T) {
		vars := decodeJSON(t, `{
			"segmentB_weather": "mittel", "segmentB_incidents": 0, "segmentB_currentLoad": 1, "segmentB_expectedLoad": 1,
			"segmentA_weather": "Gut",    "segmentA_incidents": 1, "segmentA_currentLoad": 2, "segmentA_expectedLoad": 0
		}`)
		req, err := dto.DecodeVariables(vars, []string{"B", "A"})
		require.NoError(t, err)

		segments, err := req.ToSegmentInputs()

		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.Equal(t, "B", segments[0].Key())
		assert.True(t, valueobject.WeatherModerate.Equal(segments[0].Weather()))
		assert.Equal(t, "A", segments[1].Key())
		assert.True(t, valueobject.WeatherGood.Equal(segments[1].Weather()))
		assert.Equal(t, 1.0, segments[1].LoadRatio())
	})

	t.Run("names the missing variable", func(t *testing.T) {
		vars := decodeJSON(t, `{"segmentC_weather": "good", "segmentC_incidents": 0, "segmentC_currentLoad": 1}`)
		req, err := dto.DecodeVariables(vars, []string{"C"})
		require.NoError(t, err)

		_, err = req.ToSegmentInputs()

		require.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Contains(t, err.Error(), "segmentC_expectedLoad")
	})

	t.Run("unknown weather", func(t *testing.T) {
		vars := decodeJSON(t, `{"segmentA_weather": "foggy", "segmentA_incidents": 0, "segmentA_currentLoad": 1, "segmentA_expectedLoad": 1}`)
		req, err := dto.DecodeVariables(vars, []string{"A"})
		require.NoError(t, err)

		_, err = req.ToSegmentInputs()

		require.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Contains(t, err.Error(), "segmentA_weather")
	})
}

func TestFromResult(t *testing.T) {
	result := model.NewScoreResult(map[string]int{"A": 86, "B": 30}, "A", 86, 0.87, valueobject.BandHigh)

	t.Run("without decision", func(t *testing.T) {
		out := dto.FromResult(result, service.ModeSelection{Mode: valueobject.AnalysisModeStandard}, language.English)

		raw, err := json.Marshal(out)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"segmentScores": {"A": 86, "B": 30},
			"topRiskSegment": "A",
			"overloadProbability": 0.87,
			"riskLevel": "HIGH",
			"recommendationCode": "MEASURE_REQUIRED",
			"recommendationText": "Action required: schedule maintenance or grid reinforcement promptly.",
			"analysisModeUsed": "standard"
		}`, string(raw))
	})

	t.Run("with decision", func(t *testing.T) {
		out := dto.FromResult(result, service.ModeSelection{
			Mode:     valueobject.AnalysisModeExtended,
			Decision: valueobject.DecisionExtendedAnalysis,
		}, language.German)

		assert.Equal(t, "extended", out.AnalysisModeUsed)
		assert.Equal(t, "EXTENDED", out.AnalysisDecision)
		assert.Equal(t, "Maßnahme erforderlich: Wartung oder Netzverstärkung zeitnah einplanen.", out.RecommendationText)
	})
}
