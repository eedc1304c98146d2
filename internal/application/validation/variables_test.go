package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaronStockburger/job-worker/internal/application/validation"
	"github.com/AaronStockburger/job-worker/internal/domain/model"
)

func decodeJSON(t *testing.T, raw string) map[string]any {
	t.Helper()
	var vars map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &vars))
	return vars
}

const validTwoSegments = `{
	"segmentA_weather": "bad",  "segmentA_incidents": 2, "segmentA_currentLoad": 80, "segmentA_expectedLoad": 100,
	"segmentB_weather": "good", "segmentB_incidents": 0, "segmentB_currentLoad": 50, "segmentB_expectedLoad": 0
}`

func TestNewVariablesValidator(t *testing.T) {
	_, err := validation.NewVariablesValidator(nil)
	require.Error(t, err)

	v, err := validation.NewVariablesValidator([]string{"A", "B"})
	require.NoError(t, err)
	assert.NotNil(t, v)
}

func TestVariablesValidator_Validate(t *testing.T) {
	v, err := validation.NewVariablesValidator([]string{"A", "B"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		overrides map[string]any
		remove    []string
		wantErr   bool
		wantInErr string
	}{
		{name: "valid"},
		{name: "selectors present", overrides: map[string]any{"analysisMode": "extended", "analysisDecision": "EXTENDED"}},
		{name: "null selector", overrides: map[string]any{"analysisDecision": nil}},
		{name: "extra variables are ignored", overrides: map[string]any{"customer": "x"}},
		{name: "integral float incidents", overrides: map[string]any{"segmentA_incidents": 3.0}},
		{name: "missing field", remove: []string{"segmentB_currentLoad"}, wantErr: true, wantInErr: "segmentB_currentLoad"},
		{name: "fractional incidents", overrides: map[string]any{"segmentA_incidents": 1.5}, wantErr: true, wantInErr: "/segmentA_incidents"},
		{name: "negative load", overrides: map[string]any{"segmentB_expectedLoad": -1.0}, wantErr: true, wantInErr: "/segmentB_expectedLoad"},
		{name: "empty weather", overrides: map[string]any{"segmentA_weather": ""}, wantErr: true, wantInErr: "/segmentA_weather"},
		{name: "weather of wrong type", overrides: map[string]any{"segmentA_weather": 1.0}, wantErr: true, wantInErr: "/segmentA_weather"},
		{name: "mode of wrong type", overrides: map[string]any{"analysisMode": true}, wantErr: true, wantInErr: "/analysisMode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := decodeJSON(t, validTwoSegments)
			for k, val := range tt.overrides {
				vars[k] = val
			}
			for _, k := range tt.remove {
				delete(vars, k)
			}

			err := v.Validate(vars)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, model.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantInErr)
		})
	}
}

func TestVariablesValidator_NilVariables(t *testing.T) {
	v, err := validation.NewVariablesValidator([]string{"A"})
	require.NoError(t, err)

	err = v.Validate(nil)

	require.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Contains(t, err.Error(), "segmentA_weather")
}

func TestVariablesValidator_StableMessage(t *testing.T) {
	v, err := validation.NewVariablesValidator([]string{"A", "B", "C", "D"})
	require.NoError(t, err)

	first := v.Validate(map[string]any{}).Error()
	for range 20 {
		assert.Equal(t, first, v.Validate(map[string]any{}).Error())
	}
}
