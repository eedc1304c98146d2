package port

import (
	"context"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

// ProfileResolver defines the port for fetching the analysis profile of a mode.
type ProfileResolver interface {
	// Resolve returns the profile for the given mode. Any failure to obtain it
	// is reported as model.ErrProfileUnavailable.
	Resolve(ctx context.Context, mode valueobject.AnalysisMode) (*model.AnalysisProfile, error)
}
