package postgres

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // register postgres driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// MigrationReport is the schema version before and after a migration run.
// Version 0 means no migration is applied.
type MigrationReport struct {
	From uint
	To   uint
}

// Changed reports whether the run moved the schema version.
func (r MigrationReport) Changed() bool {
	return r.From != r.To
}

// MigrateUp applies all pending migrations read from dir of source.
func MigrateUp(dsn string, source fs.FS, dir string) (MigrationReport, error) {
	return runMigrations(dsn, source, dir, (*migrate.Migrate).Up)
}

// MigrateDown rolls back all migrations read from dir of source.
func MigrateDown(dsn string, source fs.FS, dir string) (MigrationReport, error) {
	return runMigrations(dsn, source, dir, (*migrate.Migrate).Down)
}

func runMigrations(dsn string, source fs.FS, dir string, step func(*migrate.Migrate) error) (MigrationReport, error) {
	src, err := iofs.New(source, dir)
	if err != nil {
		return MigrationReport{}, fmt.Errorf("postgres: open migrations %q: %w", dir, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return MigrationReport{}, fmt.Errorf("postgres: create migrator: %w", err)
	}
	defer m.Close()

	from, err := schemaVersion(m)
	if err != nil {
		return MigrationReport{}, err
	}

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return MigrationReport{From: from}, fmt.Errorf("postgres: migrate from version %d: %w", from, err)
	}

	to, err := schemaVersion(m)
	if err != nil {
		return MigrationReport{From: from}, err
	}
	return MigrationReport{From: from, To: to}, nil
}

// schemaVersion returns the applied version. A dirty schema is an error: a previous
// run failed halfway and needs manual repair.
func schemaVersion(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("postgres: read schema version: %w", err)
	case dirty:
		return v, fmt.Errorf("postgres: schema is dirty at version %d", v)
	}
	return v, nil
}
