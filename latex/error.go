package latex

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrSyntax           = NewError("syntax error")
	ErrUnbalanced       = NewError("unbalanced delimiter")
	ErrInvalidNumber    = NewError("invalid number literal")
	ErrEmptyArguments   = NewError("empty argument list")
	ErrMatrixShape      = NewError("inconsistent matrix row length")
	ErrMaxDepthExceeded = NewError("maximum expression depth exceeded")
	ErrInputTooLong     = NewError("input exceeds maximum length")
	ErrTrailingInput    = NewError("trailing input after expression")
	ErrReadInput        = NewError("failed to read input")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error. An error that already is
// an Error is returned as-is; anything else (including a [ParseError]) is
// wrapped so its detail stays reachable through the unwrap chain.
func WrapError(err error) *Error {
	if ee, ok := err.(*Error); ok {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// ParseError reports the position where parsing failed along with the set
// of notation forms that would have been accepted there.
type ParseError struct {
	Err      error    // Sentinel category (ErrSyntax, ErrUnbalanced, ...)
	Source   string   // The original source input
	Expected []string // Notation forms acceptable at the failure position
	Offset   int      // Byte offset of the failure
	Line     int      // 1-based line of the failure
	Column   int      // 1-based column of the failure
}

// NewParseError creates a ParseError at the given position.
func NewParseError(err error, source string, offset, line, column int) *ParseError {
	return &ParseError{
		Err:    err,
		Source: source,
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg, snippet, expected := e.formatWithContext()
	if len(expected) == 0 {
		return strings.TrimSuffix(msg+snippet, "\n")
	}

	return msg + snippet + "\texpected: " + strings.Join(expected, ", ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ParseError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *ParseError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("line", e.Line),
		slog.Int("column", e.Column),
	}

	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}

	if len(e.Expected) > 0 {
		attrs = append(attrs, slog.Any("expected", e.Expected))
	}

	return slog.GroupValue(attrs...)
}

// formatWithContext formats the parse error with source code context.
func (e *ParseError) formatWithContext() (string, string, []string) {
	lines := strings.Split(e.Source, "\n")

	var buf, src strings.Builder

	// Write error location and description
	if e.Err != nil {
		buf.WriteString(e.Err.Error())
	} else {
		buf.WriteString("parse error")
	}

	buf.WriteString(" at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Column))
	buf.WriteString(":\n")

	// Show the offending line if within bounds
	if e.Line > 0 && e.Line <= len(lines) {
		line := lines[e.Line-1]

		// Print the line with line number
		src.WriteString("  ")
		src.WriteString(strconv.Itoa(e.Line))
		src.WriteString(" | ")
		src.WriteString(line)
		src.WriteRune('\n')

		// Print marker pointing to the column
		// Calculate the width needed for line number display
		lineNumWidth := len(strconv.Itoa(e.Line))
		// +5 accounts for: 2 leading spaces + " | " (3 chars)
		padding := strings.Repeat(" ", lineNumWidth+5)

		// Add spaces to reach the error column
		if e.Column > 0 {
			padding += strings.Repeat(" ", e.Column-1)
		}

		src.WriteString(padding + "^\n")
	}

	// Write what was expected
	exp := make([]string, 0, len(e.Expected))
	for _, want := range e.Expected {
		exp = append(exp, strconv.Quote(want))
	}

	slices.Sort(exp)
	exp = slices.Compact(exp)

	return buf.String(), src.String(), exp
}
