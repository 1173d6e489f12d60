// Package log provides the structured logging facade used by the emsb
// client and CLI.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. A BaseLogger routes entries through a
// Formatter (text or JSON) to one or more Outputs.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.WithComponent("bridge")
//	l.Info("message sent", log.Str("queue", "queue.test"), log.Int("status", 200))
//
// The console output writes to stderr so command output on stdout stays
// machine-readable.
package log
