// Package cli contains the command line interface for texpr.
//
// # Usage
//
// The CLI parses LaTeX-flavored math notation and re-emits it in canonical
// or serialized form:
//
//	# Canonical form (default command)
//	texpr 'x + (1+2)'
//
//	# Explicit output formats
//	texpr fmt json '\frac{1}{2}'
//	texpr fmt yaml -s formula.tex
//	texpr fmt ast '<1,2,3>'
//
//	# Validation only
//	texpr check '5+'
//
//	# Interactive console
//	texpr repl
//
// # Sources
//
// Formulas are read from the command line, from files named with --source,
// or from stdin ("-"). Bare file names are resolved against a search path
// seeded from the TEXPR_PATH environment variable with the working directory
// and the user config directory prefixed.
//
// # Configuration
//
// Flag defaults are read from a YAML config file in the user config
// directory (see [resolve] for the accepted layout). Generate one with
// current flag values using:
//
//	texpr init
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o texpr .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/texpr/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	texpr --log-level=debug --pprof-mode=cpu fmt canonical formula.tex
//
//	# Text format logs to stderr, canonical output to stdout
//	texpr --log-format=text 'a^b!'
package cli
