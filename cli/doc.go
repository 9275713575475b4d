// Package cli contains the command line interface for stand.
//
// The interface is declared as a [CLI] struct parsed by kong. Commands
// operate on the project containing the working directory (or the
// directory given with -C), located by walking upward for a configuration
// document.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, ...)
//   - --log-caller: Include caller information in log output
//
// Logger flags are applied in an early pre-parse scan so that messages
// emitted while parsing already honor them.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof ./cmd/stand
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
