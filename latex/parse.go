package latex

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// ParseString parses an expression from a string.
//
// By default the entire input must be consumed; use [WithPartialInput] to
// accept a leading expression and ignore the rest. Malformed input fails
// with a [*ParseError] identifying the furthest position reached and the
// notation forms acceptable there.
func ParseString(ctx context.Context, s string, opts ...Option) (Expr, error) {
	cfg := makeConfig(opts...)

	if cfg.maxInput > 0 && len(s) > cfg.maxInput {
		return nil, ErrInputTooLong.With(
			slog.Int("length", len(s)),
			slog.Int("limit", cfg.maxInput))
	}

	p := &parser{
		cfg:   cfg,
		input: []byte(s),
	}

	expr, ok := p.parseExpr()

	switch {
	case p.err != nil:
		return nil, p.err
	case !ok:
		return nil, p.syntaxError(ErrSyntax)
	}

	if !cfg.partial {
		p.skipWhitespace()

		if !p.eof() {
			return nil, p.syntaxError(ErrTrailingInput)
		}
	}

	cfg.logger.TraceContext(ctx, "parse complete",
		slog.Int("consumed", p.pos),
		slog.Int("length", len(p.input)))

	return expr, nil
}

// parser holds the parser state.
//
// Failures come in two flavors: a soft failure returns (nil, false) and
// lets the caller backtrack to try sibling alternatives, recording what was
// acceptable at the furthest position reached; a hard failure sets err and
// unwinds without further backtracking. Hard failures fire inside committed
// constructs, where no sibling alternative could ever succeed.
type parser struct {
	err      error
	expected []string
	input    []byte
	cfg      config
	pos      int
	depth    int
	expPos   int
}

// parseExpr parses the additive layer: term (('+' | '-') term)*,
// folded left-to-right.
func (p *parser) parseExpr() (Expr, bool) {
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	lhs, ok := p.parseTerm()
	if !ok {
		return nil, false
	}

	for {
		mark := p.pos
		p.skipWhitespace()

		var op Op

		switch {
		case p.match("+"):
			op = OpAdd
		case p.match("-"):
			op = OpSubtract
		default:
			p.expect("+", "-")
			p.pos = mark

			return lhs, true
		}

		// The operator commits the parse: nothing else can follow it, so a
		// missing operand is a failure at the operand position, not trailing
		// input to backtrack over.
		rhs, ok := p.parseTerm()
		if !ok {
			if p.err == nil {
				p.err = p.syntaxError(ErrSyntax)
			}

			return nil, false
		}

		lhs = &Binary{Op: op, L: lhs, R: rhs}
	}
}

// parseTerm parses the multiplicative layer:
// unary (('\cdot' | '/' | '%') unary)*, folded left-to-right.
func (p *parser) parseTerm() (Expr, bool) {
	lhs, ok := p.parseUnary()
	if !ok {
		return nil, false
	}

	for {
		mark := p.pos
		p.skipWhitespace()

		var op Op

		switch {
		case p.match(`\cdot`):
			op = OpMultiply
		case p.match("/"):
			op = OpDivide
		case p.match("%"):
			op = OpModulus
		default:
			p.expect(`\cdot`, "/", "%")
			p.pos = mark

			return lhs, true
		}

		// Committed once the operator is consumed, as in parseExpr.
		rhs, ok := p.parseUnary()
		if !ok {
			if p.err == nil {
				p.err = p.syntaxError(ErrSyntax)
			}

			return nil, false
		}

		lhs = &Binary{Op: op, L: lhs, R: rhs}
	}
}

// parseUnary parses the unary layer: a prefix '-' wraps the following unary
// expression in a negation, so repeated '-' chains naturally; a postfix '!'
// wraps the preceding exponent-layer expression in a factorial, so in a^b!
// the '!' applies to the whole power a^b.
func (p *parser) parseUnary() (Expr, bool) {
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	p.skipWhitespace()

	if p.match("-") {
		x, ok := p.parseUnary()
		if !ok {
			return nil, false
		}

		return &Unary{Op: OpNegate, X: x}, true
	}

	x, ok := p.parsePower()
	if !ok {
		return nil, false
	}

	mark := p.pos
	p.skipWhitespace()

	if p.match("!") {
		return &Unary{Op: OpFactorial, X: x}, true
	}

	p.expect("!")
	p.pos = mark

	return x, true
}

// parsePower parses the exponent layer: leaf ('^' power)?. Recursing into
// itself for the right operand makes '^' right-associative, so a^b^c parses
// as a^(b^c).
func (p *parser) parsePower() (Expr, bool) {
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	base, ok := p.parseLeaf()
	if !ok {
		return nil, false
	}

	mark := p.pos
	p.skipWhitespace()

	if p.match("^") {
		// Committed once the operator is consumed, as in parseExpr.
		exp, ok := p.parsePower()
		if !ok {
			if p.err == nil {
				p.err = p.syntaxError(ErrSyntax)
			}

			return nil, false
		}

		return &Binary{Op: OpPower, L: base, R: exp}, true
	}

	p.expect("^")
	p.pos = mark

	return base, true
}

// parseLeaf parses the atomic layer, dispatching on the first significant
// character: a group, \frac, vector, matrix, number, function call, escape
// placeholder, or single-character variable.
func (p *parser) parseLeaf() (Expr, bool) {
	p.skipWhitespace()

	if p.eof() {
		p.expect("expression")

		return nil, false
	}

	switch c := p.input[p.pos]; {
	case c == '(' || c == '{':
		p.pos++

		return p.parseGroupBody(c)

	case c == '\\':
		return p.parseMacro()

	case c == '<':
		return p.parseVector()

	case c == '[':
		return p.parseMatrix()

	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()

	case c == '_':
		return p.parseEscape()

	default:
		r, _ := utf8.DecodeRune(p.input[p.pos:])
		if unicode.IsLetter(r) {
			if call, ok := p.parseCall(); ok {
				return call, true
			}

			if p.err != nil {
				return nil, false
			}
		}

		return p.parseVariable()
	}
}

// parseGroupBody parses the interior and closer of a group whose opener,
// given as '(' or '{', has already been consumed. Either the bare closer or
// its \right spelling is accepted, independent of how the group was opened.
func (p *parser) parseGroupBody(open byte) (Expr, bool) {
	inner, ok := p.parseExpr()
	if !ok {
		if p.err == nil {
			p.err = p.syntaxError(ErrSyntax)
		}

		return nil, false
	}

	p.skipWhitespace()

	closer, macro := ")", `\right)`
	if open == '{' {
		closer, macro = "}", `\right}`
	}

	if !p.match(closer) && !p.match(macro) {
		p.abort(ErrUnbalanced, closer, macro)

		return nil, false
	}

	return inner, true
}

// parseMacro parses a leaf beginning with a backslash: \left opens a group,
// \frac{num}{den} builds a division, and any other macro word is a function
// name with its backslash stripped.
func (p *parser) parseMacro() (Expr, bool) {
	mark := p.pos
	p.pos++ // consume '\'

	name := p.scanName()
	if name == "" {
		p.pos = mark
		p.expect("expression")

		return nil, false
	}

	switch name {
	case "left":
		if p.eof() || (p.input[p.pos] != '(' && p.input[p.pos] != '{') {
			p.pos = mark
			p.expect(`\left(`, `\left{`)

			return nil, false
		}

		open := p.input[p.pos]
		p.pos++

		return p.parseGroupBody(open)

	case "frac":
		if !p.eof() && p.input[p.pos] == '{' {
			return p.parseFrac()
		}

		return p.parseCallArgs(name, mark)

	case "right":
		// Closers are consumed by their group; a stray \right is not a leaf.
		p.pos = mark
		p.expect("expression")

		return nil, false

	default:
		return p.parseCallArgs(name, mark)
	}
}

// parseFrac parses the two braced operands of \frac, whose name has already
// been consumed, and builds a division.
func (p *parser) parseFrac() (Expr, bool) {
	num, ok := p.parseBraced()
	if !ok {
		return nil, false
	}

	den, ok := p.parseBraced()
	if !ok {
		return nil, false
	}

	return &Binary{Op: OpDivide, L: num, R: den}, true
}

// parseBraced parses '{' expression '}'.
func (p *parser) parseBraced() (Expr, bool) {
	if !p.match("{") {
		p.abort(ErrSyntax, "{")

		return nil, false
	}

	inner, ok := p.parseExpr()
	if !ok {
		if p.err == nil {
			p.err = p.syntaxError(ErrSyntax)
		}

		return nil, false
	}

	p.skipWhitespace()

	if !p.match("}") {
		p.abort(ErrUnbalanced, "}")

		return nil, false
	}

	return inner, true
}

// parseCall parses a function call with a bare (unescaped) name.
func (p *parser) parseCall() (Expr, bool) {
	mark := p.pos

	name := p.scanName()
	if name == "" {
		p.pos = mark

		return nil, false
	}

	return p.parseCallArgs(name, mark)
}

// parseCallArgs parses the parenthesized argument list of a function call
// whose name has already been consumed. The opener must follow the name
// immediately; otherwise the parse backtracks to mark so the first name
// character can be read as a variable instead. Once the opener is consumed
// the call is committed and failures inside it are hard errors.
func (p *parser) parseCallArgs(name string, mark int) (Expr, bool) {
	if !p.match("(") && !p.match(`\left(`) {
		p.pos = mark
		p.expect("(", `\left(`)

		return nil, false
	}

	p.skipWhitespace()

	if p.hasPrefix(")") || p.hasPrefix(`\right)`) {
		p.abort(ErrEmptyArguments, "expression")

		return nil, false
	}

	args := make([]Expr, 0, 1)

	for {
		arg, ok := p.parseExpr()
		if !ok {
			if p.err == nil {
				p.err = p.syntaxError(ErrSyntax)
			}

			return nil, false
		}

		args = append(args, arg)

		p.skipWhitespace()

		if p.match(",") {
			continue
		}

		if p.match(")") || p.match(`\right)`) {
			break
		}

		p.abort(ErrUnbalanced, ",", ")", `\right)`)

		return nil, false
	}

	return &Call{Name: name, Args: args}, true
}

// parseVector parses '<' expression (',' expression)* '>'.
func (p *parser) parseVector() (Expr, bool) {
	p.pos++ // consume '<'
	p.skipWhitespace()

	if p.hasPrefix(">") {
		p.abort(ErrEmptyArguments, "expression")

		return nil, false
	}

	elems := make([]Expr, 0, 2)

	for {
		e, ok := p.parseExpr()
		if !ok {
			if p.err == nil {
				p.err = p.syntaxError(ErrSyntax)
			}

			return nil, false
		}

		elems = append(elems, e)

		p.skipWhitespace()

		if p.match(",") {
			continue
		}

		if p.match(">") {
			break
		}

		p.abort(ErrUnbalanced, ",", ">")

		return nil, false
	}

	return &Vector{Elems: elems}, true
}

// parseMatrix parses '[' row (';' row)* ']' with each row a comma-separated
// expression list. Every row must have the same length as the first.
func (p *parser) parseMatrix() (Expr, bool) {
	p.pos++ // consume '['
	p.skipWhitespace()

	if p.hasPrefix("]") {
		p.abort(ErrEmptyArguments, "expression")

		return nil, false
	}

	var (
		elems      []Expr
		rows, cols int
	)

	for {
		rowStart := p.pos
		rowLen := 0

		for {
			e, ok := p.parseExpr()
			if !ok {
				if p.err == nil {
					p.err = p.syntaxError(ErrSyntax)
				}

				return nil, false
			}

			elems = append(elems, e)
			rowLen++

			p.skipWhitespace()

			if !p.match(",") {
				break
			}
		}

		rows++

		if cols == 0 {
			cols = rowLen
		} else if rowLen != cols {
			p.abortAt(rowStart, ErrMatrixShape)

			return nil, false
		}

		if p.match(";") {
			continue
		}

		if p.match("]") {
			break
		}

		p.abort(ErrUnbalanced, ",", ";", "]")

		return nil, false
	}

	return &Matrix{Elems: elems, Rows: rows, Cols: cols}, true
}

// parseNumber parses a numeric literal: digits with at most one decimal
// point. A '.' selects Decimal; otherwise Integer. No sign (handled by the
// unary layer) and no exponent notation.
func (p *parser) parseNumber() (Expr, bool) {
	start := p.pos
	dots := 0

	for !p.eof() {
		c := p.input[p.pos]

		switch {
		case c >= '0' && c <= '9':
		case c == '.':
			dots++
		default:
			goto done
		}

		p.pos++
	}

done:
	lit := string(p.input[start:p.pos])

	if dots > 0 {
		f, err := strconv.ParseFloat(lit, 32)
		if err != nil || dots > 1 {
			p.abortAt(start, ErrInvalidNumber)

			return nil, false
		}

		return Decimal(f), true
	}

	n, err := strconv.ParseInt(lit, 10, 32)
	if err != nil {
		p.abortAt(start, ErrInvalidNumber)

		return nil, false
	}

	return Integer(n), true
}

// parseEscape parses '_' kind digits, where kind is one of A, F, V, M, or
// '*' and the digits form an unsigned 8-bit slot index.
func (p *parser) parseEscape() (Expr, bool) {
	p.pos++ // consume '_'

	if p.eof() {
		p.abort(ErrSyntax, "_A", "_F", "_V", "_M", "_*")

		return nil, false
	}

	r, size := utf8.DecodeRune(p.input[p.pos:])

	kind, ok := escapeKindOf(r)
	if !ok {
		p.abort(ErrSyntax, "_A", "_F", "_V", "_M", "_*")

		return nil, false
	}

	p.pos += size
	start := p.pos

	for !p.eof() && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}

	if start == p.pos {
		p.abort(ErrSyntax, "digit")

		return nil, false
	}

	slot, err := strconv.ParseUint(string(p.input[start:p.pos]), 10, 8)
	if err != nil {
		p.abortAt(start, ErrInvalidNumber)

		return nil, false
	}

	return Escape{Kind: kind, Slot: uint8(slot)}, true
}

// parseVariable parses a single-character variable, the leaf alternative of
// last resort. Characters with a grammatical meaning can never name a
// variable; rejecting them here keeps the recorded expectations pointing at
// the true failure instead of swallowing stray punctuation.
func (p *parser) parseVariable() (Expr, bool) {
	r, size := utf8.DecodeRune(p.input[p.pos:])

	if (r == utf8.RuneError && size == 1) || unicode.IsSpace(r) ||
		bytes.ContainsRune(reserved, r) {
		p.expect("expression")

		return nil, false
	}

	p.pos += size

	return Variable(r), true
}

// reserved holds the characters that begin no variable.
var reserved = []byte(`+-^!%/\(){}[]<>,;_.`)

// scanName scans a name: a letter followed by letters or digits.
func (p *parser) scanName() string {
	start := p.pos

	r, size := utf8.DecodeRune(p.input[p.pos:])
	if !unicode.IsLetter(r) {
		return ""
	}

	p.pos += size

	for !p.eof() {
		r, size := utf8.DecodeRune(p.input[p.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}

		p.pos += size
	}

	return string(p.input[start:p.pos])
}

// Helper methods

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) hasPrefix(lit string) bool {
	return bytes.HasPrefix(p.input[p.pos:], []byte(lit))
}

func (p *parser) match(lit string) bool {
	if p.hasPrefix(lit) {
		p.pos += len(lit)

		return true
	}

	return false
}

func (p *parser) skipWhitespace() {
	for !p.eof() {
		r, size := utf8.DecodeRune(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}

		p.pos += size
	}
}

// enter guards a recursive descent step against unbounded nesting.
func (p *parser) enter() bool {
	p.depth++

	if p.cfg.maxDepth > 0 && p.depth > p.cfg.maxDepth {
		p.abort(ErrMaxDepthExceeded)

		return false
	}

	return true
}

func (p *parser) leave() {
	p.depth--
}

// expect records alternatives acceptable at the current position. Only the
// furthest position reached is retained; a record beyond it discards the
// previous list.
func (p *parser) expect(want ...string) {
	if p.pos < p.expPos {
		return
	}

	if p.pos > p.expPos {
		p.expPos = p.pos
		p.expected = p.expected[:0]
	}

	p.expected = append(p.expected, want...)
}

// syntaxError builds a ParseError from the furthest failure recorded.
func (p *parser) syntaxError(sentinel *Error) *ParseError {
	pos := p.pos

	var expected []string

	if p.expPos >= pos {
		pos = p.expPos
		expected = append(expected, p.expected...)
	}

	line, col := p.lineCol(pos)
	pe := NewParseError(sentinel, string(p.input), pos, line, col)
	pe.Expected = expected

	return pe
}

// abort raises a hard error at the current position.
func (p *parser) abort(sentinel *Error, expected ...string) {
	p.abortAt(p.pos, sentinel, expected...)
}

// abortAt raises a hard error at the given position.
func (p *parser) abortAt(pos int, sentinel *Error, expected ...string) {
	if p.err != nil {
		return
	}

	line, col := p.lineCol(pos)
	pe := NewParseError(sentinel, string(p.input), pos, line, col)
	pe.Expected = expected

	p.err = pe
}

// lineCol converts a byte offset to a 1-based line and column.
func (p *parser) lineCol(offset int) (line, col int) {
	line, col = 1, 1

	for i := 0; i < offset && i < len(p.input); {
		r, size := utf8.DecodeRune(p.input[i:])

		i += size
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return line, col
}
