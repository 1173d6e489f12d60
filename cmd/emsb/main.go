package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	clientcmd "github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/internal/cmd/client"
	logpkg "github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/log"
)

func main() {
	// Pick up a local .env before env fallbacks are read; absence is fine.
	_ = godotenv.Load()

	// Respect EMSB_LOG_LEVEL; the CLI stays quiet by default so stdout
	// carries only command output.
	level := os.Getenv("EMSB_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.WarnLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	root := clientcmd.NewRoot(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", clientcmd.ErrorMessage(err))
		os.Exit(1)
	}
}
