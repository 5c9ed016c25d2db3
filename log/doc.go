// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog], used for all texpr diagnostics.
//
// The package-level functions write to a default logger bound to stderr,
// keeping diagnostics out of the formula output that texpr subcommands
// write to stdout. Construct independent loggers with [Make].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.InfoContext(ctx, "parsed formula", slog.String("render", out))
//	logger.ErrorContext(ctx, "parse failed", slog.Any("error", err))
//
// # Configuration
//
// Configure a logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The default logger is reconfigured in place with [Config]; the texpr
// command wires its --log-* flags through it.
//
// # Adding Attributes
//
// Attributes can be added to a logger to be included in all subsequent
// log messages using the [Logger.With] method:
//
//	logger = logger.With(slog.String("source", path))
//	logger.InfoContext(ctx, "checked") // includes source=path
//
// # Supported Levels
//
// The package supports five log levels: [LevelTrace], [LevelDebug],
// [LevelInfo], [LevelWarn], and [LevelError]. Messages below the
// configured level are discarded. Trace sits below slog's debug level
// and carries parser and REPL progress detail.
//
// # Time Formatting
//
// Time formatting is configurable using [WithTimeLayout]. You can
// specify any named layout supported by the [time] package (such as
// "RFC3339" or "RFC3339Nano") or provide a custom layout string. The
// layout "none" disables timestamps.
//
// # Output Formats
//
// Two output formats are supported: [FormatText] (default) and
// [FormatJSON]. Both have a colorized pretty variant, enabled by default
// and controlled with [WithPretty].
package log
