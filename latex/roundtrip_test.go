package latex

import (
	"context"
	"testing"
)

// Every tree the parser can build must survive Render followed by
// ParseString structurally intact.
func TestRoundTrip_Trees(t *testing.T) {
	trees := []struct {
		expr Expr
		name string
	}{
		{name: "integer", expr: num(7)},
		{name: "decimal", expr: dec(1.25)},
		{name: "variable", expr: sym('q')},
		{name: "escape", expr: Escape{Kind: EscapeEverything, Slot: 9}},
		{name: "left-nested addition", expr: add(add(num(1), num(2)), num(3))},
		{name: "right-nested addition", expr: add(num(1), add(num(2), num(3)))},
		{name: "right-nested subtraction", expr: sub(num(1), sub(num(2), num(3)))},
		{name: "right-nested modulus", expr: mod(num(9), mod(num(5), num(2)))},
		{name: "mixed additive", expr: sub(add(sym('a'), sym('b')), sym('c'))},
		{name: "multiplication of sums", expr: mul(add(num(1), num(2)), add(num(3), num(4)))},
		{name: "right-nested multiplication", expr: mul(num(2), mul(num(3), num(4)))},
		{name: "division tower", expr: div(div(num(1), num(2)), div(num(3), num(4)))},
		{name: "power tower", expr: pow(num(2), pow(num(3), num(4)))},
		{name: "left-nested power", expr: pow(pow(num(2), num(3)), num(4))},
		{name: "power of division", expr: pow(div(num(1), num(2)), num(3))},
		{name: "power of factorial", expr: pow(fact(sym('a')), sym('b'))},
		{name: "factorial of power", expr: fact(pow(sym('a'), sym('b')))},
		{name: "negation chain", expr: neg(neg(num(5)))},
		{name: "negation of sum", expr: neg(add(sym('x'), num(1)))},
		{name: "call of compound arguments", expr: call("max", add(num(1), num(2)), pow(sym('x'), num(2)))},
		{name: "vector of compounds", expr: vec(add(num(1), num(2)), div(num(3), num(4)))},
		{name: "matrix of compounds", expr: mat(2, 2, num(1), neg(num(2)), pow(sym('x'), num(2)), num(4))},
		{name: "nested containers", expr: vec(mat(1, 2, num(1), num(2)), call("f", vec(sym('x'))))},
		{
			name: "full scenario",
			expr: add(
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

	for _, tt := range trees {
		t.Run(tt.name, func(t *testing.T) {
			text := Render(tt.expr)

			got, err := ParseString(context.Background(), text)
			if err != nil {
				t.Fatalf("re-parse of %q: %v", text, err)
			}

			if !Equal(got, tt.expr) {
				t.Errorf("round trip of %q lost structure:\n got: %s",
					text, Render(got))
			}
		})
	}
}

// Canonical text is a fixed point: rendering the parse of canonical text
// reproduces it byte for byte.
func TestRoundTrip_Canonical(t *testing.T) {
	inputs := []string{
		"1+2+3",
		"a-b-c",
		`2\cdot3+4`,
		`\frac{1}{2}`,
		"2^{3^4}",
		"-x",
		"5!",
		"_A3+_*0",
		"<1,2,3>",
		"[1,2;3,4]",
		`f\left(x,y\right)`,
		`\frac{5}{6}\cdot5+4^{2+x}-1!+arc\left(6\right)`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			expr, err := ParseString(context.Background(), input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if got := Render(expr); got != input {
				t.Errorf("Render(parse(%q)) = %q", input, got)
			}
		})
	}
}
