package config

import (
	"os"
	"strconv"
)

// FromEnv overlays the bridge's conventional environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("HTTP_EMS_BRIDGE_URL"); v != "" {
		cfg.BridgeURL = v
	}
	if v := os.Getenv("JMS_USR"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("JMS_PSW"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("EMSB_HTTP_TIMEOUT_SEC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.HTTPTimeoutSec = f
		}
	}
}
