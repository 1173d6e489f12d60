// Package config provides loading and environment overlay for emsb
// configuration. It exposes a Default() baseline, file loading for JSON and
// YAML, and an env overlay honoring the bridge's conventional variables.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("~/.emsb.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//
// Precedence is flag > env > file > default: Load starts from Default,
// FromEnv overlays the file values, and the CLI applies explicit flags last.
package config
