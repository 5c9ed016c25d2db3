package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/texpr/latex"
)

// TestCheckRun tests syntax validation of formula arguments.
func TestCheckRun(t *testing.T) {
	tests := []struct {
		name     string
		formulas []string
		wantErr  bool
	}{
		{
			name:     "single valid formula",
			formulas: []string{"1+2"},
			wantErr:  false,
		},
		{
			name:     "multiple valid formulas",
			formulas: []string{`\frac{1}{2}`, "arc(x)", "<1,2,3>"},
			wantErr:  false,
		},
		{
			name:     "invalid formula",
			formulas: []string{"1+"},
			wantErr:  true,
		},
		{
			name:     "valid then invalid",
			formulas: []string{"1+2", "(x"},
			wantErr:  true,
		},
		{
			name:     "uneven matrix rows",
			formulas: []string{"[1,2;3]"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := &Check{Formula: tt.formulas}
			err := check.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("Check.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestCheckRunSource tests validation of a formula read from a source file.
func TestCheckRunSource(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "valid source",
			content: `5/6\cdot5+4^{2+x}`,
			wantErr: false,
		},
		{
			name:    "invalid source",
			content: `\frac{5}{`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "formula.tex")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			ctx := WithSourceFiles(context.Background(), []string{path})

			check := &Check{}
			err := check.Run(ctx)

			if (err != nil) != tt.wantErr {
				t.Errorf("Check.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestCheckRunSyntaxError tests that the structured syntax error surfaces.
func TestCheckRunSyntaxError(t *testing.T) {
	check := &Check{Formula: []string{"1+*2"}}
	err := check.Run(context.Background())

	if err == nil {
		t.Fatal("Check.Run() expected error for malformed formula")
	}

	var perr *latex.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("Check.Run() error = %T, want to wrap *latex.ParseError", err)
	}
}
