package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	logpkg "github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/log"
)

// NewStatsCommand constructs the `stats` command, fetching bridge metrics.
func NewStatsCommand(logger logpkg.Logger) *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Fetch metrics from the bridge",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			plain, _ := cmd.Flags().GetBool("plain")

			cli := newBridgeClient(cmd, cfg, logger)
			defer cli.Close()

			stats, err := cli.GetStats(cmd.Context(), !plain)
			if err != nil {
				return err
			}
			if plain {
				if raw, ok := stats["raw"].(string); ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), raw)
					return nil
				}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		},
	}

	statsCmd.Flags().StringP("bridge", "b", "", "Bridge URL (default http://localhost:8080, or HTTP_EMS_BRIDGE_URL env)")
	statsCmd.Flags().Bool("plain", false, "Plain text output instead of JSON")
	return statsCmd
}
