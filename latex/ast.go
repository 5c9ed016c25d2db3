package latex

// Expr is a node in an expression tree.
//
// A tree is built bottom-up by the parser and is immutable once built: no
// node is ever mutated in place, every node has exactly one parent, and
// transformations construct new trees. The concrete types are [Integer],
// [Decimal], [Variable], [Escape], [*Unary], [*Binary], [*Call], [*Vector],
// and [*Matrix]; the unexported method seals the set.
type Expr interface {
	prec() prec
}

// prec orders the grammar's precedence layers for the serializer.
// Self-delimiting forms (leaves, calls, literals, \frac) bind tightest.
type prec int

const (
	precAdd prec = iota + 1
	precMul
	precUnary
	precPow
	precAtom
)

// Op identifies a unary or binary operator. Operators are classified into
// this closed set at the point of token recognition; no other values exist.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulus
	OpPower
	OpNegate
	OpFactorial
	OpPercent
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpModulus:
		return "modulus"
	case OpPower:
		return "power"
	case OpNegate:
		return "negate"
	case OpFactorial:
		return "factorial"
	case OpPercent:
		return "percent"
	default:
		return "unknown"
	}
}

// EscapeKind is the syntactic category matched by an escape placeholder.
type EscapeKind int

const (
	// EscapeAtom matches any leaf expression.
	EscapeAtom EscapeKind = iota

	// EscapeFunction matches any function call.
	EscapeFunction

	// EscapeVector matches any vector literal.
	EscapeVector

	// EscapeMatrix matches any matrix literal.
	EscapeMatrix

	// EscapeEverything matches any expression.
	EscapeEverything
)

// String returns the escape kind name.
func (k EscapeKind) String() string {
	switch k {
	case EscapeAtom:
		return "atom"
	case EscapeFunction:
		return "function"
	case EscapeVector:
		return "vector"
	case EscapeMatrix:
		return "matrix"
	case EscapeEverything:
		return "everything"
	default:
		return "unknown"
	}
}

// letter returns the single-character spelling used in notation text.
func (k EscapeKind) letter() byte {
	switch k {
	case EscapeAtom:
		return 'A'
	case EscapeFunction:
		return 'F'
	case EscapeVector:
		return 'V'
	case EscapeMatrix:
		return 'M'
	default:
		return '*'
	}
}

// escapeKindOf classifies a notation character as an escape kind.
func escapeKindOf(r rune) (EscapeKind, bool) {
	switch r {
	case 'A':
		return EscapeAtom, true
	case 'F':
		return EscapeFunction, true
	case 'V':
		return EscapeVector, true
	case 'M':
		return EscapeMatrix, true
	case '*':
		return EscapeEverything, true
	default:
		return 0, false
	}
}

// Integer is a numeric leaf without a decimal point.
type Integer int32

// Decimal is a numeric leaf with a decimal point. The kind is chosen by the
// presence of a '.' in the literal text, never by magnitude.
type Decimal float32

// Variable is a single-character identifier leaf.
type Variable rune

// Escape is a typed placeholder leaf: a hole of syntactic category Kind,
// numbered Slot. It carries no computed value; downstream pattern matchers
// give it meaning.
type Escape struct {
	Kind EscapeKind
	Slot uint8
}

// Unary is a single-operand operator node. Op is one of OpNegate,
// OpFactorial, or OpPercent. OpPercent is render-only: the grammar never
// produces it ('%' parses as binary OpModulus), but trees built by external
// components may contain it.
type Unary struct {
	X  Expr
	Op Op
}

// Binary is a two-operand operator node. Op is one of OpAdd, OpSubtract,
// OpMultiply, OpDivide, OpModulus, or OpPower.
type Binary struct {
	L  Expr
	R  Expr
	Op Op
}

// Call is a named function application with at least one argument;
// zero-argument calls are not representable.
type Call struct {
	Name string
	Args []Expr
}

// Vector is a fixed-length tuple literal with at least one element.
type Vector struct {
	Elems []Expr
}

// Size returns the number of elements.
func (v *Vector) Size() int { return len(v.Elems) }

// Matrix is a 2-D literal stored row-major. Rows*Cols == len(Elems) always
// holds for parser-produced matrices; uneven source rows are rejected at
// parse time.
type Matrix struct {
	Elems []Expr
	Rows  int
	Cols  int
}

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) Expr { return m.Elems[r*m.Cols+c] }

// Row returns the elements of row r.
func (m *Matrix) Row(r int) []Expr { return m.Elems[r*m.Cols : (r+1)*m.Cols] }

func (Integer) prec() prec  { return precAtom }
func (Decimal) prec() prec  { return precAtom }
func (Variable) prec() prec { return precAtom }
func (Escape) prec() prec   { return precAtom }
func (*Unary) prec() prec   { return precUnary }
func (*Call) prec() prec    { return precAtom }
func (*Vector) prec() prec  { return precAtom }
func (*Matrix) prec() prec  { return precAtom }

func (b *Binary) prec() prec {
	switch b.Op {
	case OpAdd, OpSubtract:
		return precAdd
	case OpMultiply, OpModulus:
		return precMul
	case OpPower:
		return precPow
	default:
		// Divide renders as \frac{...}{...}, which is self-delimiting.
		return precAtom
	}
}

// isLeaf reports whether e is a bare atom (number, variable, or escape).
func isLeaf(e Expr) bool {
	switch e.(type) {
	case Integer, Decimal, Variable, Escape:
		return true
	default:
		return false
	}
}

// Equal reports deep structural equality of two trees.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Integer:
		y, ok := b.(Integer)

		return ok && x == y

	case Decimal:
		y, ok := b.(Decimal)

		return ok && x == y

	case Variable:
		y, ok := b.(Variable)

		return ok && x == y

	case Escape:
		y, ok := b.(Escape)

		return ok && x == y

	case *Unary:
		y, ok := b.(*Unary)

		return ok && x.Op == y.Op && Equal(x.X, y.X)

	case *Binary:
		y, ok := b.(*Binary)

		return ok && x.Op == y.Op && Equal(x.L, y.L) && Equal(x.R, y.R)

	case *Call:
		y, ok := b.(*Call)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}

		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}

		return true

	case *Vector:
		y, ok := b.(*Vector)
		if !ok || len(x.Elems) != len(y.Elems) {
			return false
		}

		for i := range x.Elems {
			if !Equal(x.Elems[i], y.Elems[i]) {
				return false
			}
		}

		return true

	case *Matrix:
		y, ok := b.(*Matrix)
		if !ok || x.Rows != y.Rows || x.Cols != y.Cols ||
			len(x.Elems) != len(y.Elems) {
			return false
		}

		for i := range x.Elems {
			if !Equal(x.Elems[i], y.Elems[i]) {
				return false
			}
		}

		return true

	default:
		return false
	}
}
