package model

import (
	"fmt"
	"math"

	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

// SegmentInput is the telemetry reported for one grid segment in a single job.
type SegmentInput struct {
	key          string
	weather      valueobject.Weather
	incidents    int
	currentLoad  float64
	expectedLoad float64
}

// NewSegmentInput validates and creates the telemetry for a segment.
func NewSegmentInput(
	key string,
	weather valueobject.Weather,
	incidents int,
	currentLoad float64,
	expectedLoad float64,
) (SegmentInput, error) {
	if key == "" {
		return SegmentInput{}, fmt.Errorf("%w: segment key is required", ErrInvalidInput)
	}
	if weather.IsZero() {
		return SegmentInput{}, fmt.Errorf("%w: segment %s: weather is required", ErrInvalidInput, key)
	}
	if incidents < 0 {
		return SegmentInput{}, fmt.Errorf("%w: segment %s: incidents must be non-negative, got %d", ErrInvalidInput, key, incidents)
	}
	if !isNonNegativeFinite(currentLoad) {
		return SegmentInput{}, fmt.Errorf("%w: segment %s: current load must be a non-negative number, got %v", ErrInvalidInput, key, currentLoad)
	}
	if !isNonNegativeFinite(expectedLoad) {
		return SegmentInput{}, fmt.Errorf("%w: segment %s: expected load must be a non-negative number, got %v", ErrInvalidInput, key, expectedLoad)
	}

	return SegmentInput{
		key:          key,
		weather:      weather,
		incidents:    incidents,
		currentLoad:  currentLoad,
		expectedLoad: expectedLoad,
	}, nil
}

func isNonNegativeFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// LoadRatio returns current over expected load. An expected load of zero counts as fully loaded.
func (s SegmentInput) LoadRatio() float64 {
	if s.expectedLoad == 0 {
		return 1
	}
	return s.currentLoad / s.expectedLoad
}

// --- Accessors ---

func (s SegmentInput) Key() string                  { return s.key }
func (s SegmentInput) Weather() valueobject.Weather { return s.weather }
func (s SegmentInput) Incidents() int               { return s.incidents }
func (s SegmentInput) CurrentLoad() float64         { return s.currentLoad }
func (s SegmentInput) ExpectedLoad() float64        { return s.expectedLoad }
