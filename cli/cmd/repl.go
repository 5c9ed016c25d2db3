package cmd

import (
	"context"
	"io"

	"github.com/ardnew/texpr/cli/cmd/repl"
	"github.com/ardnew/texpr/log"
)

// Repl starts an interactive formula console.
//
// Sources named with --source seed the console with an initial formula.
type Repl struct{}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	dir, ok := ktx.Model.Vars()[CacheIdentifier]
	if !ok {
		panic("internal error: cache directory undefined")
	}

	var seed io.Reader
	if src := sourceFilesFrom(ctx); src != nil && !src.IsZero() {
		seed = src
	}

	return repl.Run(ctx, seed, dir, log.Default())
}
