package testutil

// Job keys used across tests. They have the shape of the engine's int64 keys.
const (
	TestJobKey1 = "2251799813685249"
	TestJobKey2 = "2251799813685250"
)

// JobVariables returns the variables of a four-segment job. Segment A is the riskiest
// under the standard profile of StandardProfileJSON. Numbers are float64, as they would
// be after decoding a JSON payload.
func JobVariables() map[string]any {
	return map[string]any{
		"analysisMode":          "standard",
		"segmentA_weather":      "schlecht",
		"segmentA_incidents":    2.0,
		"segmentA_currentLoad":  80.0,
		"segmentA_expectedLoad": 100.0,
		"segmentB_weather":      "good",
		"segmentB_incidents":    0.0,
		"segmentB_currentLoad":  50.0,
		"segmentB_expectedLoad": 0.0,
		"segmentC_weather":      "moderate",
		"segmentC_incidents":    1.0,
		"segmentC_currentLoad":  40.0,
		"segmentC_expectedLoad": 80.0,
		"segmentD_weather":      "gut",
		"segmentD_incidents":    3.0,
		"segmentD_currentLoad":  20.0,
		"segmentD_expectedLoad": 100.0,
	}
}

// StandardProfileJSON is a standard profile as served by the profile service.
const StandardProfileJSON = `{
  "id": "standard",
  "weatherWeights": {"gut": 10, "mittel": 30, "schlecht": 60},
  "incidentWeight": 5,
  "loadWeight": 20,
  "overloadBase": 0.1
}`

// ExtendedProfileJSON is an extended profile as served by the profile service.
const ExtendedProfileJSON = `{
  "id": "extended",
  "weatherWeights": {"gut": 15, "mittel": 35, "schlecht": 60},
  "incidentWeight": 10,
  "loadWeight": 25,
  "overloadBase": 0.05
}`
