package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AaronStockburger/job-worker/pkg/tlsutil"
)

func newCertsCommand() *cobra.Command {
	var hosts []string
	var outDir string

	cmd := &cobra.Command{
		Use:   "certs",
		Short: "Generate a development CA and gRPC server certificate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := tlsutil.GenerateSelfSignedCert(hosts, outDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "certificates written to %s\n", outDir)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&hosts, "hosts", []string{"localhost", "127.0.0.1"}, "DNS names and IPs of the server certificate")
	cmd.Flags().StringVar(&outDir, "out", "certs", "output directory")

	return cmd
}
