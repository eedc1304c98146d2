package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
	"github.com/AaronStockburger/job-worker/internal/infrastructure/profile"
)

func newProfilesCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect and import analysis profiles",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get MODE",
			Short: "Fetch the profile of MODE from the configured source",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := opts.load()
				if err != nil {
					return err
				}
				mode, err := valueobject.AnalysisModeFromString(args[0])
				if err != nil {
					return err
				}

				resolver, pool, err := newResolver(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				if pool != nil {
					defer pool.Close()
				}

				p, err := resolver.Resolve(cmd.Context(), mode)
				if err != nil {
					return err
				}
				if err := p.Validate(mode); err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(profile.FromModel(p))
			},
		},
		&cobra.Command{
			Use:   "import FILE",
			Short: "Import the profiles of a profile file into PostgreSQL",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := opts.load()
				if err != nil {
					return err
				}
				docs, err := profile.ReadFile(args[0])
				if err != nil {
					return err
				}

				pool, err := openPool(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer pool.Close()

				n, err := profile.ImportProfiles(cmd.Context(), pool, docs)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d profiles\n", n)
				return nil
			},
		},
	)

	return cmd
}
