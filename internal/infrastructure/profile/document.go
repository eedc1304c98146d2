package profile

import (
	"fmt"
	"sort"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

// Document is the wire form of an analysis profile as served by the profile service
// and stored in profile files. Weather keys may use the English or German labels.
type Document struct {
	WeatherWeights map[string]*float64 `json:"weatherWeights" yaml:"weatherWeights"`
	IncidentWeight *float64            `json:"incidentWeight" yaml:"incidentWeight"`
	LoadWeight     *float64            `json:"loadWeight" yaml:"loadWeight"`
	OverloadBase   *float64            `json:"overloadBase" yaml:"overloadBase"`
	ID             string              `json:"id" yaml:"id"`
}

// ToModel converts the document into a domain profile. Absent numbers, unknown weather
// labels, duplicate weathers and an unknown id are reported as ErrInvalidProfile.
func (d Document) ToModel() (*model.AnalysisProfile, error) {
	var id valueobject.AnalysisMode
	if d.ID != "" {
		m, err := valueobject.AnalysisModeFromString(d.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidProfile, err)
		}
		id = m
	}

	switch {
	case d.IncidentWeight == nil:
		return nil, fmt.Errorf("%w: incidentWeight is missing", model.ErrInvalidProfile)
	case d.LoadWeight == nil:
		return nil, fmt.Errorf("%w: loadWeight is missing", model.ErrInvalidProfile)
	case d.OverloadBase == nil:
		return nil, fmt.Errorf("%w: overloadBase is missing", model.ErrInvalidProfile)
	}

	// Sorted so that error messages do not depend on map order.
	labels := make([]string, 0, len(d.WeatherWeights))
	for label := range d.WeatherWeights {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	weights := make(map[valueobject.Weather]float64, len(labels))
	for _, label := range labels {
		w, err := valueobject.WeatherFromString(label)
		if err != nil {
			return nil, fmt.Errorf("%w: weatherWeights: %v", model.ErrInvalidProfile, err)
		}
		if _, dup := weights[w]; dup {
			return nil, fmt.Errorf("%w: weatherWeights: %s is defined twice", model.ErrInvalidProfile, w)
		}
		v := d.WeatherWeights[label]
		if v == nil {
			return nil, fmt.Errorf("%w: weatherWeights: %s has no value", model.ErrInvalidProfile, label)
		}
		weights[w] = *v
	}

	return model.NewAnalysisProfile(id, weights, *d.IncidentWeight, *d.LoadWeight, *d.OverloadBase), nil
}

// FromModel converts a domain profile into its wire form using the English labels.
func FromModel(p *model.AnalysisProfile) Document {
	weights := make(map[string]*float64, 3)
	for _, w := range valueobject.AllWeathers() {
		if v, ok := p.WeatherWeight(w); ok {
			weights[w.String()] = &v
		}
	}
	incident, load, base := p.IncidentWeight(), p.LoadWeight(), p.OverloadBase()

	return Document{
		ID:             p.ID().String(),
		WeatherWeights: weights,
		IncidentWeight: &incident,
		LoadWeight:     &load,
		OverloadBase:   &base,
	}
}
