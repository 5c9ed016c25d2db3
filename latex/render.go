package latex

import (
	"strconv"
	"strings"
)

// Render serializes an expression tree back to notation text, inserting the
// minimal grouping required for the result to re-parse to a structurally
// equal tree. It is total over well-formed trees and never fails.
//
// One tree per notation: left-associative operators group a right-hand
// child of equal precedence, the base of a power is grouped unless it is
// self-delimiting, and exponents are braced unless they are bare leaves.
// The only exception is the render-only percent operator, whose output has
// no parse.
func Render(e Expr) string {
	var sb strings.Builder

	render(&sb, e)

	return sb.String()
}

func render(sb *strings.Builder, e Expr) {
	switch x := e.(type) {
	case Integer:
		sb.WriteString(strconv.FormatInt(int64(x), 10))

	case Decimal:
		renderDecimal(sb, x)

	case Variable:
		sb.WriteRune(rune(x))

	case Escape:
		sb.WriteByte('_')
		sb.WriteByte(x.Kind.letter())
		sb.WriteString(strconv.FormatUint(uint64(x.Slot), 10))

	case *Unary:
		renderUnary(sb, x)

	case *Binary:
		renderBinary(sb, x)

	case *Call:
		sb.WriteString(x.Name)
		sb.WriteString(`\left(`)

		for i, arg := range x.Args {
			if i > 0 {
				sb.WriteByte(',')
			}

			render(sb, arg)
		}

		sb.WriteString(`\right)`)

	case *Vector:
		sb.WriteByte('<')

		for i, elem := range x.Elems {
			if i > 0 {
				sb.WriteByte(',')
			}

			render(sb, elem)
		}

		sb.WriteByte('>')

	case *Matrix:
		sb.WriteByte('[')

		for r := range x.Rows {
			if r > 0 {
				sb.WriteByte(';')
			}

			for c, elem := range x.Row(r) {
				if c > 0 {
					sb.WriteByte(',')
				}

				render(sb, elem)
			}
		}

		sb.WriteByte(']')
	}
}

// renderDecimal formats a decimal literal. The output always contains a
// decimal point so the numeric kind survives a re-parse, and never uses
// exponent notation since the grammar has none.
func renderDecimal(sb *strings.Builder, d Decimal) {
	s := strconv.FormatFloat(float64(d), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	sb.WriteString(s)
}

func renderUnary(sb *strings.Builder, u *Unary) {
	if u.Op == OpNegate {
		sb.WriteByte('-')
	}

	if isLeaf(u.X) {
		render(sb, u.X)
	} else {
		renderGrouped(sb, u.X)
	}

	switch u.Op {
	case OpFactorial:
		sb.WriteByte('!')
	case OpPercent:
		sb.WriteByte('%')
	}
}

func renderBinary(sb *strings.Builder, b *Binary) {
	switch b.Op {
	case OpDivide:
		// \frac is self-delimiting; the operands need no grouping.
		sb.WriteString(`\frac{`)
		render(sb, b.L)
		sb.WriteString(`}{`)
		render(sb, b.R)
		sb.WriteByte('}')

	case OpPower:
		// A base that is not self-delimiting would either capture the
		// exponent (a^b^c) or be captured by it (a!^b), so group it. The
		// exponent is braced unless a bare leaf ends it unambiguously.
		if b.L.prec() == precAtom {
			render(sb, b.L)
		} else {
			renderGrouped(sb, b.L)
		}

		sb.WriteByte('^')

		if isLeaf(b.R) {
			render(sb, b.R)
		} else {
			sb.WriteByte('{')
			render(sb, b.R)
			sb.WriteByte('}')
		}

	default:
		// Left-associative: the left child may bind equally loose, the
		// right child must bind strictly tighter, or the re-parse would
		// fold it into the left spine.
		if b.L.prec() < b.prec() {
			renderGrouped(sb, b.L)
		} else {
			render(sb, b.L)
		}

		sb.WriteString(b.Op.symbol())

		if b.R.prec() <= b.prec() {
			renderGrouped(sb, b.R)
		} else {
			render(sb, b.R)
		}
	}
}

// renderGrouped renders e wrapped in \left( ... \right).
func renderGrouped(sb *strings.Builder, e Expr) {
	sb.WriteString(`\left(`)
	render(sb, e)
	sb.WriteString(`\right)`)
}

// symbol returns the notation spelling of a binary operator joiner.
func (op Op) symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return `\cdot`
	case OpModulus:
		return "%"
	case OpPower:
		return "^"
	default:
		return ""
	}
}
