package valueobject

import (
	"fmt"
	"strings"
)

// AnalysisMode identifies the analysis profile applied to a job.
type AnalysisMode struct {
	value string
}

var (
	AnalysisModeStandard = AnalysisMode{value: "standard"}
	AnalysisModeExtended = AnalysisMode{value: "extended"}
)

// DefaultAnalysisMode is the baseline mode used when a job carries no selector.
var DefaultAnalysisMode = AnalysisModeStandard

// AnalysisModeFromString reconstructs an AnalysisMode from its identifier.
func AnalysisModeFromString(s string) (AnalysisMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return AnalysisModeStandard, nil
	case "extended":
		return AnalysisModeExtended, nil
	default:
		return AnalysisMode{}, fmt.Errorf("invalid analysis mode: %q", s)
	}
}

// String returns the profile identifier.
func (m AnalysisMode) String() string {
	return m.value
}

// IsZero returns true if the mode has not been set.
func (m AnalysisMode) IsZero() bool {
	return m.value == ""
}

// Equal checks equality with another AnalysisMode.
func (m AnalysisMode) Equal(other AnalysisMode) bool {
	return m.value == other.value
}

// AnalysisDecision is the outcome of the upstream decision step that chooses
// how thoroughly a job's segments are analysed.
type AnalysisDecision struct {
	value string
	mode  AnalysisMode
}

var (
	DecisionStandardAnalysis = AnalysisDecision{value: "STANDARD", mode: AnalysisModeStandard}
	DecisionExtendedAnalysis = AnalysisDecision{value: "EXTENDED", mode: AnalysisModeExtended}
)

// AnalysisDecisionFromString parses a decision value. Matching is case-insensitive,
// so the mode identifiers themselves ("standard", "extended") are accepted too.
func AnalysisDecisionFromString(s string) (AnalysisDecision, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "STANDARD":
		return DecisionStandardAnalysis, nil
	case "EXTENDED":
		return DecisionExtendedAnalysis, nil
	default:
		return AnalysisDecision{}, fmt.Errorf("invalid analysis decision: %q", s)
	}
}

// Mode returns the analysis mode the decision selects.
func (d AnalysisDecision) Mode() AnalysisMode {
	return d.mode
}

// String returns the decision value.
func (d AnalysisDecision) String() string {
	return d.value
}

// IsZero returns true if no decision was made.
func (d AnalysisDecision) IsZero() bool {
	return d.value == ""
}

// Equal checks equality with another AnalysisDecision.
func (d AnalysisDecision) Equal(other AnalysisDecision) bool {
	return d.value == other.value
}
