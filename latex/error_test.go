package latex

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseString_Errors(t *testing.T) {
	tests := []struct {
		want  error
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
			want:  ErrSyntax,
		},
		{
			name:  "lone operator",
			input: "+",
			want:  ErrSyntax,
		},
		{
			name:  "missing right operand",
			input: "5+",
			want:  ErrSyntax,
		},
		{
			name:  "missing product operand",
			input: `5\cdot`,
			want:  ErrSyntax,
		},
		{
			name:  "missing exponent",
			input: "5^",
			want:  ErrSyntax,
		},
		{
			name:  "unbalanced parenthesis",
			input: "(1+2",
			want:  ErrUnbalanced,
		},
		{
			name:  "unbalanced frac brace",
			input: `\frac{1}{2`,
			want:  ErrUnbalanced,
		},
		{
			name:  "frac missing second operand",
			input: `\frac{1}`,
			want:  ErrSyntax,
		},
		{
			name:  "two decimal points",
			input: "1.2.3",
			want:  ErrInvalidNumber,
		},
		{
			name:  "integer overflow",
			input: "99999999999",
			want:  ErrInvalidNumber,
		},
		{
			name:  "lone decimal point",
			input: ".",
			want:  ErrInvalidNumber,
		},
		{
			name:  "empty call arguments",
			input: "f()",
			want:  ErrEmptyArguments,
		},
		{
			name:  "empty vector",
			input: "<>",
			want:  ErrEmptyArguments,
		},
		{
			name:  "empty matrix",
			input: "[]",
			want:  ErrEmptyArguments,
		},
		{
			name:  "uneven matrix rows",
			input: "[1,2;3]",
			want:  ErrMatrixShape,
		},
		{
			name:  "matrix row grows",
			input: "[1;2,3]",
			want:  ErrMatrixShape,
		},
		{
			name:  "unterminated vector",
			input: "<1,2",
			want:  ErrUnbalanced,
		},
		{
			name:  "unknown escape kind",
			input: "_Z3",
			want:  ErrSyntax,
		},
		{
			name:  "escape without slot",
			input: "_A",
			want:  ErrSyntax,
		},
		{
			name:  "escape slot overflows",
			input: "_A300",
			want:  ErrInvalidNumber,
		},
		{
			name:  "trailing input",
			input: "1+2)",
			want:  ErrTrailingInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(context.Background(), tt.input)
			if err == nil {
				t.Fatalf("parse of %q succeeded, want %v", tt.input, tt.want)
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("parse of %q = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParseError_Position(t *testing.T) {
	_, err := ParseString(context.Background(), "1+(2\n\n+)")
	if err == nil {
		t.Fatal("expected parse error")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}

	if pe.Line < 1 || pe.Column < 1 {
		t.Errorf("position (%d,%d) is not 1-based", pe.Line, pe.Column)
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := ParseString(context.Background(), "1+2 oops")
	if err == nil {
		t.Fatal("expected parse error")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}

	msg := pe.Error()

	if !strings.Contains(msg, "line 1") {
		t.Errorf("message %q does not name the line", msg)
	}

	// The caret marker points at the failure column.
	if !strings.Contains(msg, "^") {
		t.Errorf("message %q has no position marker", msg)
	}
}

func TestParseError_MissingOperand(t *testing.T) {
	// A consumed operator commits the parse to its right operand. The
	// failure must classify as a syntax error at the operand position, not
	// as trailing input left over from backtracking past the operator.
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{"additive", "5+", 2},
		{"subtractive", "5-", 2},
		{"multiplicative", `5\cdot`, 6},
		{"modulus", "5%", 2},
		{"power", "5^", 2},
		{"negated operand", "5+-", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(context.Background(), tt.input)
			if err == nil {
				t.Fatalf("parse of %q succeeded", tt.input)
			}

			if errors.Is(err, ErrTrailingInput) {
				t.Fatalf("parse of %q classified as trailing input", tt.input)
			}

			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("parse of %q = %v, want %v", tt.input, err, ErrSyntax)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}

			if pe.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", pe.Offset, tt.offset)
			}

			found := false

			for _, want := range pe.Expected {
				if want == "expression" {
					found = true
				}
			}

			if !found {
				t.Errorf("expected alternatives %v to include %q",
					pe.Expected, "expression")
			}
		})
	}
}

func TestParseError_Expected(t *testing.T) {
	_, err := ParseString(context.Background(), "(1+2")
	if err == nil {
		t.Fatal("expected parse error")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}

	found := false

	for _, want := range pe.Expected {
		if want == ")" {
			found = true
		}
	}

	if !found {
		t.Errorf("expected alternatives %v to include %q", pe.Expected, ")")
	}
}

func TestError_Wrapping(t *testing.T) {
	base := errors.New("cause")
	err := NewError("context").Wrap(base)

	if !errors.Is(err, base) {
		t.Error("wrapped cause not found by errors.Is")
	}

	if got := err.Error(); got != "context: cause" {
		t.Errorf("Error() = %q, want %q", got, "context: cause")
	}
}
