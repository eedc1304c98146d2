package dto

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"golang.org/x/text/language"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/service"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

// Job variable names.
const (
	VarAnalysisMode     = "analysisMode"
	VarAnalysisDecision = "analysisDecision"

	FieldWeather      = "weather"
	FieldIncidents    = "incidents"
	FieldCurrentLoad  = "currentLoad"
	FieldExpectedLoad = "expectedLoad"
)

// SegmentVariableName returns the flat variable name of a segment field, e.g. segmentA_weather.
func SegmentVariableName(key, field string) string {
	return "segment" + key + "_" + field
}

// SegmentVariables holds the raw variables of one segment. Nil means the variable was absent.
type SegmentVariables struct {
	Weather      *string  `mapstructure:"weather"`
	Incidents    *int     `mapstructure:"incidents"`
	CurrentLoad  *float64 `mapstructure:"currentLoad"`
	ExpectedLoad *float64 `mapstructure:"expectedLoad"`
}

// AnalyzeSegmentsRequest is the input DTO for the AnalyzeSegmentRisk use case.
type AnalyzeSegmentsRequest struct {
	AnalysisMode     *string `mapstructure:"analysisMode"`
	AnalysisDecision *string `mapstructure:"analysisDecision"`
	// Segments is keyed by segment key and preserves the configured key order in SegmentKeys.
	Segments    map[string]SegmentVariables `mapstructure:"-"`
	SegmentKeys []string                    `mapstructure:"-"`
}

// DecodeVariables maps a flat job variables map onto a request for the given segment keys.
// Type mismatches and non-integral incident counts are reported as ErrInvalidInput.
func DecodeVariables(vars map[string]any, segmentKeys []string) (AnalyzeSegmentsRequest, error) {
	var req AnalyzeSegmentsRequest
	if err := decode(vars, &req); err != nil {
		return AnalyzeSegmentsRequest{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	req.SegmentKeys = append([]string(nil), segmentKeys...)
	req.Segments = make(map[string]SegmentVariables, len(segmentKeys))

	for _, key := range segmentKeys {
		raw := map[string]any{}
		for _, field := range []string{FieldWeather, FieldIncidents, FieldCurrentLoad, FieldExpectedLoad} {
			if v, ok := vars[SegmentVariableName(key, field)]; ok {
				raw[field] = v
			}
		}

		var seg SegmentVariables
		if err := decode(raw, &seg); err != nil {
			return AnalyzeSegmentsRequest{}, fmt.Errorf("%w: segment %s: %v", model.ErrInvalidInput, key, err)
		}
		req.Segments[key] = seg
	}

	return req, nil
}

func decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: integralFloatHook,
		Result:     out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// integralFloatHook rejects fractional numbers decoded into integer fields, which
// mapstructure would otherwise truncate silently.
func integralFloatHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f := reflect.ValueOf(data).Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("expected an integer, got %v", f)
		}
		// float64(math.MaxInt64) is 2^63, which already overflows int.
		if f >= math.MaxInt64 || f < math.MinInt64 {
			return nil, fmt.Errorf("expected an integer within int64 range, got %v", f)
		}
	}
	return data, nil
}

// ToSegmentInputs validates each segment and converts it into a domain value, in key order.
func (r AnalyzeSegmentsRequest) ToSegmentInputs() ([]model.SegmentInput, error) {
	out := make([]model.SegmentInput, 0, len(r.SegmentKeys))
	for _, key := range r.SegmentKeys {
		seg, err := r.Segments[key].toDomain(key)
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}
	return out, nil
}

func (s SegmentVariables) toDomain(key string) (model.SegmentInput, error) {
	missing := func(field string) error {
		return fmt.Errorf("%w: missing variable %s", model.ErrInvalidInput, SegmentVariableName(key, field))
	}
	switch {
	case s.Weather == nil:
		return model.SegmentInput{}, missing(FieldWeather)
	case s.Incidents == nil:
		return model.SegmentInput{}, missing(FieldIncidents)
	case s.CurrentLoad == nil:
		return model.SegmentInput{}, missing(FieldCurrentLoad)
	case s.ExpectedLoad == nil:
		return model.SegmentInput{}, missing(FieldExpectedLoad)
	}

	weather, err := valueobject.WeatherFromString(*s.Weather)
	if err != nil {
		return model.SegmentInput{}, fmt.Errorf("%w: %s: %v", model.ErrInvalidInput, SegmentVariableName(key, FieldWeather), err)
	}

	return model.NewSegmentInput(key, weather, *s.Incidents, *s.CurrentLoad, *s.ExpectedLoad)
}

// AnalysisOutput is the output DTO holding the variables reported on job completion.
type AnalysisOutput struct {
	SegmentScores       map[string]int `json:"segmentScores"`
	TopRiskSegment      string         `json:"topRiskSegment"`
	RiskLevel           string         `json:"riskLevel"`
	RecommendationCode  string         `json:"recommendationCode"`
	RecommendationText  string         `json:"recommendationText"`
	AnalysisModeUsed    string         `json:"analysisModeUsed"`
	AnalysisDecision    string         `json:"analysisDecision,omitempty"`
	OverloadProbability float64        `json:"overloadProbability"`
}

// FromResult maps a score result and the applied mode selection to the output DTO.
func FromResult(r model.ScoreResult, sel service.ModeSelection, locale language.Tag) AnalysisOutput {
	return AnalysisOutput{
		SegmentScores:       r.SegmentScores(),
		TopRiskSegment:      r.TopRiskSegment(),
		OverloadProbability: r.OverloadProbability(),
		RiskLevel:           r.RiskLevel().String(),
		RecommendationCode:  r.Recommendation().String(),
		RecommendationText:  r.Recommendation().Text(locale),
		AnalysisModeUsed:    sel.Mode.String(),
		AnalysisDecision:    sel.Decision.String(),
	}
}
