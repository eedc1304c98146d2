package profile

import (
	"context"
	"fmt"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/port"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

var _ port.ProfileResolver = (*StaticResolver)(nil)

// StaticResolver serves fixed in-memory profiles.
type StaticResolver struct {
	profiles map[valueobject.AnalysisMode]*model.AnalysisProfile
}

// NewStaticResolver creates a resolver serving each profile under its own id.
func NewStaticResolver(profiles ...*model.AnalysisProfile) *StaticResolver {
	m := make(map[valueobject.AnalysisMode]*model.AnalysisProfile, len(profiles))
	for _, p := range profiles {
		m[p.ID()] = p
	}
	return &StaticResolver{profiles: m}
}

// Resolve returns the profile registered for mode.
func (r *StaticResolver) Resolve(_ context.Context, mode valueobject.AnalysisMode) (*model.AnalysisProfile, error) {
	p, ok := r.profiles[mode]
	if !ok {
		return nil, fmt.Errorf("%w: no profile %q", model.ErrProfileUnavailable, mode)
	}
	return p, nil
}
