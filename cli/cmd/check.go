package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/texpr/latex"
	"github.com/ardnew/texpr/log"
)

// Check validates formula syntax without producing output.
//
// Each formula argument is parsed independently. When no arguments are
// given, a single formula is read from the sources named with --source (or
// stdin). The exit status is non-zero when any formula is malformed, and the
// structured syntax error (position, snippet, expected alternatives) is
// reported for the first failure.
type Check struct {
	Formula []string `arg:"" help:"Formula text to validate (reads --source or stdin when omitted)" optional:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if len(c.Formula) == 0 {
		_, err := parseSource(ctx, "", stdinSource)
		if err != nil {
			return err
		}

		log.DebugContext(ctx, "formula valid", slog.String("origin", "source"))

		return nil
	}

	for i, formula := range c.Formula {
		_, err := latex.ParseCached(ctx, formula)
		if err != nil {
			return latex.WrapError(err).
				With(slog.Int("argument", i))
		}

		log.DebugContext(ctx, "formula valid",
			slog.Int("argument", i),
			slog.Int("length", len(formula)),
		)
	}

	return nil
}
