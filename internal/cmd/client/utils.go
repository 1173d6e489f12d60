package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/internal/config"
	"github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/bridge"
	logpkg "github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/log"
)

// loadConfig resolves the --config flag (when present) into a Config with
// the environment overlaid. Flags still win over the result: callers apply
// them via stringFlagOr.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		// Command executed standalone without the root's persistent flag.
		path = ""
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	config.FromEnv(&cfg)
	return cfg, nil
}

// stringFlagOr returns the flag value when non-empty, otherwise fallback.
func stringFlagOr(cmd *cobra.Command, name, fallback string) string {
	if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
		return v
	}
	return fallback
}

// httpTimeout picks the HTTP round-trip timeout: an explicitly set
// --timeout-sec flag wins, then the config value, then 60s.
func httpTimeout(cmd *cobra.Command, cfg config.Config) time.Duration {
	sec := cfg.HTTPTimeoutSec
	if f := cmd.Flags().Lookup("timeout-sec"); f != nil && f.Changed {
		if v, err := cmd.Flags().GetFloat64("timeout-sec"); err == nil && v > 0 {
			sec = v
		}
	}
	if sec <= 0 {
		sec = 60
	}
	return time.Duration(sec * float64(time.Second))
}

// newBridgeClient builds the client for one command invocation.
func newBridgeClient(cmd *cobra.Command, cfg config.Config, logger logpkg.Logger) *bridge.Client {
	bridgeURL := stringFlagOr(cmd, "bridge", cfg.BridgeURL)
	return bridge.New(bridgeURL,
		bridge.WithTimeout(httpTimeout(cmd, cfg)),
		bridge.WithLogger(logger),
	)
}

// requireUser applies the flag > env/config fallback for the EMS username
// and fails with a usage error when neither is set.
func requireUser(cmd *cobra.Command, cfg config.Config) (string, error) {
	user := stringFlagOr(cmd, "user", cfg.User)
	if user == "" {
		return "", fmt.Errorf("--user is required (or set JMS_USR)")
	}
	return user, nil
}
