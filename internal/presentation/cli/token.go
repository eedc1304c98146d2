package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AaronStockburger/job-worker/pkg/auth"
)

func newTokenCommand(opts *options) *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the gRPC API (shared secret auth only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.GRPC.Auth.Secret == "" {
				return errors.New("grpc.auth.secret is not configured")
			}

			verifier, err := newVerifier(cfg)
			if err != nil {
				return err
			}
			token, err := verifier.Issue(subject, []string{auth.ScopeAnalyze}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "riskworker-cli", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")

	return cmd
}
