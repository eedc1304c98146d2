// Package cli implements the riskworkerd command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AaronStockburger/job-worker/internal/infrastructure/config"
)

// serviceName identifies the worker in logs, traces and metrics.
const serviceName = "riskworker"

// options is shared by all subcommands. Each root command owns its viper instance.
type options struct {
	v          *viper.Viper
	configFile string
}

func (o *options) load() (*config.Config, error) {
	return config.Load(o.v, o.configFile)
}

// NewRootCommand builds the riskworkerd command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "riskworkerd",
		Short: "Grid segment risk analysis worker",
		Long: `riskworkerd scores grid segments for overload risk. It takes risk analysis jobs
from the job topic, scores every segment against the analysis profile of the
selected mode and reports the result back to the orchestration engine.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (YAML)")
	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-format", "json", "log format: json, text")
	cmd.PersistentFlags().String("profile-source", config.ProfileSourceHTTP, "analysis profile source: http, file, postgres")

	// Flag lookups are static; BindPFlag only fails on a nil flag.
	_ = opts.v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = opts.v.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))
	_ = opts.v.BindPFlag("profile.source", cmd.PersistentFlags().Lookup("profile-source"))

	cmd.AddCommand(
		newServeCommand(opts),
		newEvaluateCommand(opts),
		newMigrateCommand(opts),
		newProfilesCommand(opts),
		newCertsCommand(),
		newTokenCommand(opts),
	)

	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
