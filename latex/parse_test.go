package latex

import (
	"context"
	"strings"
	"testing"
)

// Tree-building helpers keep expected values readable.
func add(l, r Expr) Expr  { return &Binary{Op: OpAdd, L: l, R: r} }
func sub(l, r Expr) Expr  { return &Binary{Op: OpSubtract, L: l, R: r} }
func mul(l, r Expr) Expr  { return &Binary{Op: OpMultiply, L: l, R: r} }
func div(l, r Expr) Expr  { return &Binary{Op: OpDivide, L: l, R: r} }
func mod(l, r Expr) Expr  { return &Binary{Op: OpModulus, L: l, R: r} }
func pow(l, r Expr) Expr  { return &Binary{Op: OpPower, L: l, R: r} }
func neg(x Expr) Expr     { return &Unary{Op: OpNegate, X: x} }
func fact(x Expr) Expr    { return &Unary{Op: OpFactorial, X: x} }
func num(n int32) Expr    { return Integer(n) }
func dec(f float32) Expr  { return Decimal(f) }
func sym(r rune) Expr     { return Variable(r) }
func vec(es ...Expr) Expr { return &Vector{Elems: es} }

func call(name string, args ...Expr) Expr {
	return &Call{Name: name, Args: args}
}

func mat(rows, cols int, es ...Expr) Expr {
	return &Matrix{Elems: es, Rows: rows, Cols: cols}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		want  Expr
		name  string
		input string
	}{
		{
			name:  "integer",
			input: "3",
			want:  num(3),
		},
		{
			name:  "decimal",
			input: "3.5",
			want:  dec(3.5),
		},
		{
			name:  "decimal without integer part",
			input: ".5",
			want:  dec(0.5),
		},
		{
			name:  "variable",
			input: "x",
			want:  sym('x'),
		},
		{
			name:  "addition is left-associative",
			input: "5+6+7",
			want:  add(add(num(5), num(6)), num(7)),
		},
		{
			name:  "subtraction is left-associative",
			input: "5-6-7",
			want:  sub(sub(num(5), num(6)), num(7)),
		},
		{
			name:  "power is right-associative",
			input: "2^3^4",
			want:  pow(num(2), pow(num(3), num(4))),
		},
		{
			name:  "multiplication binds tighter than addition",
			input: `2+3\cdot4`,
			want:  add(num(2), mul(num(3), num(4))),
		},
		{
			name:  "division binds tighter than subtraction",
			input: "8-6/2",
			want:  sub(num(8), div(num(6), num(2))),
		},
		{
			name:  "modulus shares multiplicative precedence",
			input: `7%2\cdot3`,
			want:  mul(mod(num(7), num(2)), num(3)),
		},
		{
			name:  "power binds tighter than multiplication",
			input: `2\cdot3^4`,
			want:  mul(num(2), pow(num(3), num(4))),
		},
		{
			name:  "parentheses override precedence",
			input: `(2+3)\cdot4`,
			want:  mul(add(num(2), num(3)), num(4)),
		},
		{
			name:  "braces group like parentheses",
			input: "{2+3}",
			want:  add(num(2), num(3)),
		},
		{
			name:  "left right delimiters",
			input: `\left(2+3\right)`,
			want:  add(num(2), num(3)),
		},
		{
			name:  "nested groups restart the additive layer",
			input: "5+(6+7)+8",
			want:  add(add(num(5), add(num(6), num(7))), num(8)),
		},
		{
			name:  "frac maps to division",
			input: `\frac{1}{2}`,
			want:  div(num(1), num(2)),
		},
		{
			name:  "frac operands are full expressions",
			input: `\frac{1+x}{2\cdot y}`,
			want:  div(add(num(1), sym('x')), mul(num(2), sym('y'))),
		},
		{
			name:  "prefix negation",
			input: "-5",
			want:  neg(num(5)),
		},
		{
			name:  "negation chains",
			input: "--x",
			want:  neg(neg(sym('x'))),
		},
		{
			name:  "negation of factorial",
			input: "-x!",
			want:  neg(fact(sym('x'))),
		},
		{
			name:  "factorial",
			input: "5!",
			want:  fact(num(5)),
		},
		{
			name:  "factorial binds the whole power",
			input: "a^b!",
			want:  fact(pow(sym('a'), sym('b'))),
		},
		{
			name:  "subtraction of negation",
			input: "a--b",
			want:  sub(sym('a'), neg(sym('b'))),
		},
		{
			name:  "function call",
			input: "f(1,2,3)",
			want:  call("f", num(1), num(2), num(3)),
		},
		{
			name:  "function with multi-character name",
			input: "arc2(x)",
			want:  call("arc2", sym('x')),
		},
		{
			name:  "function with escaped name drops the backslash",
			input: `\sin(x)`,
			want:  call("sin", sym('x')),
		},
		{
			name:  "function with left right argument delimiters",
			input: `arc\left(6\right)`,
			want:  call("arc", num(6)),
		},
		{
			name:  "function arguments are full expressions",
			input: `f(1+2,3\cdot4)`,
			want:  call("f", add(num(1), num(2)), mul(num(3), num(4))),
		},
		{
			name:  "name without call syntax is a variable",
			input: "x+y",
			want:  add(sym('x'), sym('y')),
		},
		{
			name:  "escape placeholder atom",
			input: "_A3",
			want:  Escape{Kind: EscapeAtom, Slot: 3},
		},
		{
			name:  "escape placeholder everything",
			input: "_*255",
			want:  Escape{Kind: EscapeEverything, Slot: 255},
		},
		{
			name:  "escape placeholder in expression",
			input: "_F0+_V1",
			want: add(
				Escape{Kind: EscapeFunction, Slot: 0},
				Escape{Kind: EscapeVector, Slot: 1},
			),
		},
		{
			name:  "vector literal",
			input: "<1,2,3>",
			want:  vec(num(1), num(2), num(3)),
		},
		{
			name:  "vector of one element",
			input: "<x>",
			want:  vec(sym('x')),
		},
		{
			name:  "matrix literal is row-major",
			input: "[1,2;3,4]",
			want:  mat(2, 2, num(1), num(2), num(3), num(4)),
		},
		{
			name:  "matrix of one row",
			input: "[1,2,3]",
			want:  mat(1, 3, num(1), num(2), num(3)),
		},
		{
			name:  "whitespace is skipped between tokens",
			input: " 1 + 2 \t- 3 ",
			want:  sub(add(num(1), num(2)), num(3)),
		},
		{
			name:  "whitespace around unary operators",
			input: "- 5 !",
			want:  neg(fact(num(5))),
		},
		{
			name:  "full scenario",
			input: `\frac{5}{6}\cdot5+\left(4^{2+x}\right)-1!+arc\left(6\right)`,
			want: add(
				sub(
					add(
						mul(div(num(5), num(6)), num(5)),
						pow(num(4), add(num(2), sym('x'))),
					),
					fact(num(1)),
				),
				call("arc", num(6)),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if !Equal(got, tt.want) {
				t.Errorf("parsed %q:\n got: %s\nwant: %s",
					tt.input, Render(got), Render(tt.want))
			}
		})
	}
}

func TestParseString_Matrix(t *testing.T) {
	got, err := ParseString(context.Background(), "[1,2;3,4]")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	m, ok := got.(*Matrix)
	if !ok {
		t.Fatalf("expected *Matrix, got %T", got)
	}

	if m.Rows != 2 || m.Cols != 2 {
		t.Errorf("expected shape (2,2), got (%d,%d)", m.Rows, m.Cols)
	}

	want := []int32{1, 2, 3, 4}
	for i, elem := range m.Elems {
		n, ok := elem.(Integer)
		if !ok || int32(n) != want[i] {
			t.Errorf("backing[%d] = %v, want %d", i, elem, want[i])
		}
	}

	if e := m.At(1, 0); !Equal(e, Integer(3)) {
		t.Errorf("At(1,0) = %v, want 3", e)
	}
}

func TestParseString_TrailingInput(t *testing.T) {
	_, err := ParseString(context.Background(), "1+2 extra")
	if err == nil {
		t.Fatal("expected trailing input error")
	}

	got, err := ParseString(context.Background(), "1+2 extra",
		WithPartialInput(true))
	if err != nil {
		t.Fatalf("partial parse error: %v", err)
	}

	if !Equal(got, add(num(1), num(2))) {
		t.Errorf("partial parse = %s, want 1+2", Render(got))
	}
}

func TestParseString_MaxDepth(t *testing.T) {
	deep := strings.Repeat("(", 200) + "1" + strings.Repeat(")", 200)

	_, err := ParseString(context.Background(), deep)
	if err == nil {
		t.Fatal("expected max depth error")
	}

	// A custom limit admits the same input.
	got, err := ParseString(context.Background(), deep, WithMaxDepth(1000))
	if err != nil {
		t.Fatalf("parse error with raised limit: %v", err)
	}

	if !Equal(got, num(1)) {
		t.Errorf("parse = %s, want 1", Render(got))
	}
}

func TestParseString_MaxInput(t *testing.T) {
	_, err := ParseString(context.Background(), "1+1", WithMaxInput(2))
	if err == nil {
		t.Fatal("expected input length error")
	}
}

func TestParseReader(t *testing.T) {
	got, err := ParseReader(context.Background(), strings.NewReader("1+x"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !Equal(got, add(num(1), sym('x'))) {
		t.Errorf("parse = %s, want 1+x", Render(got))
	}
}

func TestParseCached(t *testing.T) {
	t.Cleanup(ClearCache)

	first, err := ParseCached(context.Background(), "a+b")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	second, err := ParseCached(context.Background(), "a+b")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	// Trees are immutable, so the cache hands out the same one.
	if first != second {
		t.Error("expected cache hit to return the identical tree")
	}

	// Different options miss the cache.
	third, err := ParseCached(context.Background(), "a+b", WithMaxDepth(10))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !Equal(first, third) {
		t.Error("expected equal trees across configs")
	}
}
