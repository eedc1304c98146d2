package model

import (
	"fmt"
	"math"

	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

// AnalysisProfile holds the scoring weights of one analysis mode. It is owned by the
// profile service and treated as an immutable snapshot for the duration of a job.
type AnalysisProfile struct {
	weatherWeights map[valueobject.Weather]float64
	id             valueobject.AnalysisMode
	incidentWeight float64
	loadWeight     float64
	overloadBase   float64
}

// NewAnalysisProfile creates a profile snapshot. The weight map is copied.
func NewAnalysisProfile(
	id valueobject.AnalysisMode,
	weatherWeights map[valueobject.Weather]float64,
	incidentWeight float64,
	loadWeight float64,
	overloadBase float64,
) *AnalysisProfile {
	weights := make(map[valueobject.Weather]float64, len(weatherWeights))
	for w, v := range weatherWeights {
		weights[w] = v
	}

	return &AnalysisProfile{
		id:             id,
		weatherWeights: weights,
		incidentWeight: incidentWeight,
		loadWeight:     loadWeight,
		overloadBase:   overloadBase,
	}
}

// Validate checks that the profile can be applied to a job that requested the given mode.
// A missing weather weight is not checked here; it only matters for the weathers a job reports.
func (p *AnalysisProfile) Validate(requested valueobject.AnalysisMode) error {
	if !p.id.IsZero() && !p.id.Equal(requested) {
		return fmt.Errorf("%w: profile %q returned for mode %q", ErrInvalidProfile, p.id, requested)
	}
	for w, v := range p.weatherWeights {
		if !isFinite(v) {
			return fmt.Errorf("%w: weather weight %s is not a finite number", ErrInvalidProfile, w)
		}
	}
	if !isFinite(p.incidentWeight) {
		return fmt.Errorf("%w: incident weight is not a finite number", ErrInvalidProfile)
	}
	if !isFinite(p.loadWeight) {
		return fmt.Errorf("%w: load weight is not a finite number", ErrInvalidProfile)
	}
	if !isFinite(p.overloadBase) || p.overloadBase < 0 || p.overloadBase > 1 {
		return fmt.Errorf("%w: overload base must be within [0,1], got %v", ErrInvalidProfile, p.overloadBase)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WeatherWeight returns the weight for a weather category and whether the profile defines it.
func (p *AnalysisProfile) WeatherWeight(w valueobject.Weather) (float64, bool) {
	v, ok := p.weatherWeights[w]
	return v, ok
}

// --- Accessors ---

func (p *AnalysisProfile) ID() valueobject.AnalysisMode { return p.id }
func (p *AnalysisProfile) IncidentWeight() float64      { return p.incidentWeight }
func (p *AnalysisProfile) LoadWeight() float64          { return p.loadWeight }
func (p *AnalysisProfile) OverloadBase() float64        { return p.overloadBase }
