package cli

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/AaronStockburger/job-worker/db"
	"github.com/AaronStockburger/job-worker/internal/infrastructure/config"
	"github.com/AaronStockburger/job-worker/pkg/postgres"
)

type migrateFunc func(dsn string, source fs.FS, dir string) (postgres.MigrationReport, error)

func newMigrateCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the analysis profile table",
	}

	run := func(step migrateFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			source, dir := migrationSource(cfg)
			report, err := step(cfg.Postgres.URL, source, dir)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE:  run(postgres.MigrateUp),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			RunE:  run(postgres.MigrateDown),
		},
	)

	return cmd
}

// migrationSource returns the embedded migrations unless a directory is configured.
func migrationSource(cfg *config.Config) (fs.FS, string) {
	if cfg.Postgres.MigrationsPath == "" {
		return db.Migrations, db.MigrationsDir
	}
	return os.DirFS(cfg.Postgres.MigrationsPath), "."
}

func printReport(w io.Writer, r postgres.MigrationReport) {
	if !r.Changed() {
		fmt.Fprintf(w, "schema already at version %d\n", r.To)
		return
	}
	fmt.Fprintf(w, "schema migrated from version %d to %d\n", r.From, r.To)
}
