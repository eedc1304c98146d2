package valueobject

import (
	"fmt"
	"strings"
)

// Weather is an immutable value object for the weather category reported for a grid segment.
type Weather struct {
	value string
}

var (
	WeatherGood     = Weather{value: "good"}
	WeatherModerate = Weather{value: "moderate"}
	WeatherBad      = Weather{value: "bad"}
)

// AllWeathers lists every weather category in ascending severity.
func AllWeathers() []Weather {
	return []Weather{WeatherGood, WeatherModerate, WeatherBad}
}

// WeatherFromString parses a weather category. Matching is case-insensitive and the
// German labels used by the field telemetry (gut, mittel, schlecht) are accepted as aliases.
func WeatherFromString(s string) (Weather, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good", "gut":
		return WeatherGood, nil
	case "moderate", "mittel":
		return WeatherModerate, nil
	case "bad", "schlecht":
		return WeatherBad, nil
	default:
		return Weather{}, fmt.Errorf("invalid weather: %q", s)
	}
}

// String returns the canonical string representation.
func (w Weather) String() string {
	return w.value
}

// IsZero returns true if the weather has not been set.
func (w Weather) IsZero() bool {
	return w.value == ""
}

// Equal checks equality with another Weather.
func (w Weather) Equal(other Weather) bool {
	return w.value == other.value
}
