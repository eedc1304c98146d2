package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/port"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
	"github.com/AaronStockburger/job-worker/pkg/postgres"
)

var _ port.ProfileResolver = (*PostgresResolver)(nil)

// ProfileTable is the table the migrations create and PostgresResolver reads.
const ProfileTable = "analysis_profiles"

// PostgresResolver implements port.ProfileResolver on the analysis_profiles table.
type PostgresResolver struct {
	db postgres.Querier
}

// NewPostgresResolver creates a resolver reading from db, which may be a pool or a transaction.
func NewPostgresResolver(db postgres.Querier) *PostgresResolver {
	return &PostgresResolver{db: db}
}

const selectProfileSQL = `
	SELECT id, weather_weights, incident_weight, load_weight, overload_base
	FROM analysis_profiles
	WHERE id = $1`

// Resolve reads the row of mode. Query failures and a missing row are reported as
// ErrProfileUnavailable.
func (r *PostgresResolver) Resolve(ctx context.Context, mode valueobject.AnalysisMode) (*model.AnalysisProfile, error) {
	var doc Document
	var incident, load, base float64

	err := r.db.QueryRow(ctx, selectProfileSQL, mode.String()).Scan(
		&doc.ID,
		&doc.WeatherWeights,
		&incident,
		&load,
		&base,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no profile %q", model.ErrProfileUnavailable, mode)
		}
		return nil, fmt.Errorf("%w: querying profile %q: %v", model.ErrProfileUnavailable, mode, err)
	}

	doc.IncidentWeight = &incident
	doc.LoadWeight = &load
	doc.OverloadBase = &base
	return doc.ToModel()
}

const upsertProfileSQL = `
	INSERT INTO analysis_profiles (id, weather_weights, incident_weight, load_weight, overload_base, updated_at)
	VALUES ($1, $2, $3, $4, $5, now())
	ON CONFLICT (id) DO UPDATE SET
		weather_weights = EXCLUDED.weather_weights,
		incident_weight = EXCLUDED.incident_weight,
		load_weight     = EXCLUDED.load_weight,
		overload_base   = EXCLUDED.overload_base,
		updated_at      = now()`

// SaveProfile inserts or replaces the row of p. The profile must carry an id.
func SaveProfile(ctx context.Context, db postgres.Querier, p *model.AnalysisProfile) error {
	if p.ID().IsZero() {
		return fmt.Errorf("%w: profile id is required", model.ErrInvalidProfile)
	}

	doc := FromModel(p)
	if _, err := db.Exec(ctx, upsertProfileSQL,
		doc.ID, doc.WeatherWeights, *doc.IncidentWeight, *doc.LoadWeight, *doc.OverloadBase,
	); err != nil {
		return fmt.Errorf("saving profile %q: %w", doc.ID, err)
	}
	return nil
}

// ImportProfiles validates docs and saves them in a single transaction.
func ImportProfiles(ctx context.Context, db postgres.TxBeginner, docs []Document) (int, error) {
	profiles := make([]*model.AnalysisProfile, 0, len(docs))
	for i, doc := range docs {
		p, err := doc.ToModel()
		if err != nil {
			return 0, fmt.Errorf("profile %d (%q): %w", i, doc.ID, err)
		}
		if err := p.Validate(p.ID()); err != nil {
			return 0, fmt.Errorf("profile %d (%q): %w", i, doc.ID, err)
		}
		profiles = append(profiles, p)
	}

	err := postgres.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		for _, p := range profiles {
			if err := SaveProfile(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(profiles), nil
}
