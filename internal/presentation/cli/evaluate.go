package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AaronStockburger/job-worker/internal/domain/model"
	"github.com/AaronStockburger/job-worker/internal/domain/port"
	"github.com/AaronStockburger/job-worker/internal/infrastructure/profile"
)

func newEvaluateCommand(opts *options) *cobra.Command {
	var varsFile, profilesFile string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score one set of job variables and print the output variables",
		Long: `evaluate runs a single analysis outside the job transport. The variables file holds
a JSON object with the same variables a job carries ("-" reads stdin). Without
--profiles the configured profile source is used.`,
		Example: `  riskworkerd evaluate --vars job.json --profiles configs/profiles.example.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg, cmd.ErrOrStderr())

			vars, err := readVariables(cmd.InOrStdin(), varsFile)
			if err != nil {
				return err
			}

			var resolver port.ProfileResolver
			if profilesFile != "" {
				resolver = profile.NewFileResolver(profilesFile)
			} else {
				r, pool, err := newResolver(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				if pool != nil {
					defer pool.Close()
				}
				resolver = r
			}

			analyze, err := newUseCase(cfg, resolver)
			if err != nil {
				return err
			}

			job, err := model.NewRiskAnalysisJob(uuid.NewString(), cfg.Worker.TaskType)
			if err != nil {
				return err
			}

			out, err := analyze.Execute(cmd.Context(), job, vars)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}
			logger.Debug("analysis completed", "job_key", job.Key(), "duration", job.Duration())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&varsFile, "vars", "", `JSON file with job variables ("-" for stdin)`)
	cmd.Flags().StringVar(&profilesFile, "profiles", "", "profile file to use instead of the configured source")
	_ = cmd.MarkFlagRequired("vars")

	return cmd
}

func readVariables(stdin io.Reader, path string) (map[string]any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading variables: %w", err)
	}

	var vars map[string]any
	if err := json.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("decoding variables: %w", err)
	}
	if vars == nil {
		return nil, fmt.Errorf("decoding variables: expected a JSON object")
	}
	return vars, nil
}
