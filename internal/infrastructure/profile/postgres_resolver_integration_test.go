//go:build integration

package profile_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
	"github.com/AaronStockburger/job-worker/internal/infrastructure/profile"
	"github.com/AaronStockburger/job-worker/pkg/postgres"
	"github.com/AaronStockburger/job-worker/pkg/testutil"
)

func TestPostgresResolver(t *testing.T) {
	ctx := context.Background()
	pg := testutil.NewPostgresContainer(ctx, t)
	defer pg.Cleanup(t)
	require.ErrorIs(t, postgres.TableReady(ctx, pg.Pool, profile.ProfileTable), postgres.ErrTableMissing)

	report := pg.RunMigrations(t)
	assert.Equal(t, postgres.MigrationReport{From: 0, To: 1}, report)
	require.NoError(t, postgres.TableReady(ctx, pg.Pool, profile.ProfileTable))

	again := pg.RunMigrations(t)
	assert.False(t, again.Changed(), "second run must be a no-op")

	docs, err := profile.ReadFile(filepath.Join("..", "..", "..", "configs", "profiles.example.yaml"))
	require.NoError(t, err)

	n, err := profile.ImportProfiles(ctx, pg.Pool, docs)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	r := profile.NewPostgresResolver(pg.Pool)

	t.Run("reads an imported profile", func(t *testing.T) {
		p, err := r.Resolve(ctx, valueobject.AnalysisModeStandard)
		require.NoError(t, err)
		require.NoError(t, p.Validate(valueobject.AnalysisModeStandard))
		bad, ok := p.WeatherWeight(valueobject.WeatherBad)
		require.True(t, ok)
		assert.Equal(t, 60.0, bad)
	})

	t.Run("import replaces existing rows", func(t *testing.T) {
		updated := model.NewAnalysisProfile(valueobject.AnalysisModeExtended,
			map[valueobject.Weather]float64{valueobject.WeatherGood: 1, valueobject.WeatherModerate: 2, valueobject.WeatherBad: 3},
			4, 5, 0.6)
		_, err := profile.ImportProfiles(ctx, pg.Pool, []profile.Document{profile.FromModel(updated)})
		require.NoError(t, err)

		p, err := r.Resolve(ctx, valueobject.AnalysisModeExtended)
		require.NoError(t, err)
		assert.Equal(t, 0.6, p.OverloadBase())
	})

	t.Run("invalid document aborts the whole import", func(t *testing.T) {
		bad := docs[0]
		bad.OverloadBase = nil
		_, err := profile.ImportProfiles(ctx, pg.Pool, []profile.Document{docs[1], bad})
		require.ErrorIs(t, err, model.ErrInvalidProfile)
	})

	t.Run("missing row is unavailable", func(t *testing.T) {
		_, err := pg.Pool.Exec(ctx, "DELETE FROM analysis_profiles WHERE id = 'standard'")
		require.NoError(t, err)

		_, err = r.Resolve(ctx, valueobject.AnalysisModeStandard)
		require.ErrorIs(t, err, model.ErrProfileUnavailable)
	})
}
