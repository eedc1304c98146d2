package service

import (
	"fmt"
	"strings"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

// ModeSelection is the analysis mode chosen for a job and the decision it came from.
// Decision is zero when the mode did not originate from a decision variable.
type ModeSelection struct {
	Mode     valueobject.AnalysisMode
	Decision valueobject.AnalysisDecision
}

// SelectAnalysisMode resolves the analysis mode of a job. An explicit decision wins
// over an explicit mode, which wins over the default. Nil or blank selectors count
// as absent; present but unknown values are rejected with ErrInvalidInput.
func SelectAnalysisMode(decision, mode *string, def valueobject.AnalysisMode) (ModeSelection, error) {
	if present(decision) {
		d, err := valueobject.AnalysisDecisionFromString(*decision)
		if err != nil {
			return ModeSelection{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
		}
		return ModeSelection{Mode: d.Mode(), Decision: d}, nil
	}

	if present(mode) {
		m, err := valueobject.AnalysisModeFromString(*mode)
		if err != nil {
			return ModeSelection{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
		}
		return ModeSelection{Mode: m}, nil
	}

	if def.IsZero() {
		def = valueobject.DefaultAnalysisMode
	}
	return ModeSelection{Mode: def}, nil
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
