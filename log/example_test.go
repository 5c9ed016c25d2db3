package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/texpr/log"
)

func Example_basic() {
	ctx := context.Background()

	logger := log.Make(os.Stderr)
	logger.InfoContext(ctx, "parsed formula", slog.String("render", "1+2"))
}

func Example_configuration() {
	ctx := context.Background()

	logger := log.Make(os.Stderr,
		log.WithLevel(log.LevelTrace),
		log.WithTimeLayout("RFC3339Nano"),
		log.WithCaller(true))

	logger.TraceContext(ctx, "parse complete", slog.Int("depth", 3))
}

func Example_levels() {
	ctx := context.Background()

	logger := log.Make(os.Stderr, log.WithLevel(log.LevelWarn))

	logger.DebugContext(ctx, "discarded below warn")
	logger.WarnContext(ctx, "unbalanced delimiter", slog.Int("offset", 4))
	logger.ErrorContext(ctx, "parse failed", slog.String("source", "repl"))
}

func Example_jsonFormat() {
	ctx := context.Background()

	logger := log.Make(os.Stderr, log.WithFormat(log.FormatJSON))
	logger.InfoContext(ctx, "formula valid", slog.String("origin", "stdin"))
}

func Example_withAttributes() {
	ctx := context.Background()

	// Attach the source file once instead of on every message.
	logger := log.Make(os.Stderr)
	logger = logger.With(slog.String("source", "formulas.tex"))

	logger.InfoContext(ctx, "checking formulas")
	logger.DebugContext(ctx, "formula valid", slog.Int("line", 12))
}
