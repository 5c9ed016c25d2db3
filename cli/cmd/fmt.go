package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/texpr/latex"
)

// Fmt parses a formula and prints it in the chosen output form.
//
// The formula is taken from the command line when given, otherwise it is
// read from the sources named with --source (or stdin).
type Fmt struct {
	Canonical Canonical `cmd:"" default:"withargs" help:"Emit canonical notation with minimal parentheses (default)."`
	JSON      JSON      `cmd:""                    help:"Emit the expression tree as JSON."`
	YAML      YAML      `cmd:""                    help:"Emit the expression tree as YAML."`
	AST       AST       `cmd:""                    help:"Emit an indented dump of the expression tree."`
}

// Canonical re-emits a formula in canonical notation.
type Canonical struct {
	Formula string `arg:"" help:"Formula text (reads --source or stdin when omitted)" optional:""`
}

// Run executes the canonical command.
func (f *Canonical) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	expr, err := parseSource(ctx, f.Formula, stdinSource)
	if err != nil {
		return latex.WrapError(err).
			With(slog.String("format", "canonical"))
	}

	return latex.Format(ctx, os.Stdout, expr)
}

// JSON emits the expression tree as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Formula string `arg:"" help:"Formula text (reads --source or stdin when omitted)" optional:""`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	expr, err := parseSource(ctx, j.Formula, stdinSource)
	if err != nil {
		return latex.WrapError(err).
			With(slog.String("format", "json"))
	}

	return latex.FormatJSON(ctx, os.Stdout, expr, j.Indent)
}

// YAML emits the expression tree as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Formula string `arg:"" help:"Formula text (reads --source or stdin when omitted)" optional:""`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	expr, err := parseSource(ctx, y.Formula, stdinSource)
	if err != nil {
		return latex.WrapError(err).
			With(slog.String("format", "yaml"))
	}

	return latex.FormatYAML(ctx, os.Stdout, expr, y.Indent)
}

// AST emits an indented dump of the expression tree.
type AST struct {
	Indent int `default:"2" help:"Indent width per tree level" short:"i"`

	Formula string `arg:"" help:"Formula text (reads --source or stdin when omitted)" optional:""`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	expr, err := parseSource(ctx, a.Formula, stdinSource)
	if err != nil {
		return latex.WrapError(err).
			With(slog.String("format", "ast"))
	}

	return latex.FormatTree(ctx, os.Stdout, expr, a.Indent)
}
