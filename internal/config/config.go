package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// BridgeURL is the HTTP base URL of the bridge.
	BridgeURL string `json:"bridgeUrl" yaml:"bridgeUrl"`
	// User is the default EMS username.
	User string `json:"user" yaml:"user"`
	// Password is the default EMS password.
	Password string `json:"password" yaml:"password"`
	// HTTPTimeoutSec bounds each HTTP round trip, in seconds.
	HTTPTimeoutSec float64 `json:"httpTimeoutSec" yaml:"httpTimeoutSec"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		BridgeURL:      "http://localhost:8080",
		HTTPTimeoutSec: 60,
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults. Unknown extensions are treated as JSON.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}
