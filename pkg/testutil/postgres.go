package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/AaronStockburger/job-worker/db"
	"github.com/AaronStockburger/job-worker/pkg/postgres"
)

// PostgresContainer is a throwaway profile database.
type PostgresContainer struct {
	Container *tcpostgres.PostgresContainer
	DSN       string
	Pool      *pgxpool.Pool
}

// NewPostgresContainer starts postgres:16-alpine and opens a pool through
// postgres.NewPool, so tests run on the same pool settings as the worker.
// The caller should defer pc.Cleanup(t).
func NewPostgresContainer(ctx context.Context, t *testing.T) *PostgresContainer {
	t.Helper()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("riskworker"),
		tcpostgres.WithUsername("riskworker"),
		tcpostgres.WithPassword("riskworker"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.Config{
		URL:             dsn,
		MaxConns:        4,
		ApplicationName: "riskworker-test",
	})
	if err != nil {
		t.Fatalf("failed to open profile pool: %v", err)
	}

	return &PostgresContainer{Container: container, DSN: dsn, Pool: pool}
}

// RunMigrations applies the embedded migrations with golang-migrate and fails the
// test unless the schema ends on a clean version.
func (pc *PostgresContainer) RunMigrations(t *testing.T) postgres.MigrationReport {
	t.Helper()

	report, err := postgres.MigrateUp(pc.DSN, db.Migrations, db.MigrationsDir)
	if err != nil {
		t.Fatalf("failed to migrate profile database: %v", err)
	}
	t.Logf("profile schema at version %d (was %d)", report.To, report.From)
	return report
}

// Cleanup closes the pool and terminates the container.
func (pc *PostgresContainer) Cleanup(t *testing.T) {
	t.Helper()

	if pc.Pool != nil {
		pc.Pool.Close()
	}

	if pc.Container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := pc.Container.Terminate(ctx); err != nil {
			t.Logf("warning: failed to terminate postgres container: %v", err)
		}
	}
}
