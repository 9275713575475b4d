// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("environment loaded", slog.String("name", "dev"))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// A package-level default logger writing to standard error is available
// through the package-level functions and is reconfigured with [Config].
//
// # Output Formats
//
// Two output formats are supported: [FormatText] (default) and
// [FormatJSON]. Format is set at logger creation time using functional
// options.
package log
