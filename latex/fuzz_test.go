package latex

import (
	"context"
	"testing"
	"unicode/utf8"
)

// FuzzParseString tests the parser with random inputs to find edge cases.
func FuzzParseString(f *testing.F) {
	// Seed corpus with known valid syntax
	f.Add("5+6+7")
	f.Add("a-b-c")
	f.Add("2^3^4")
	f.Add(`2+3\cdot4`)
	f.Add(`\frac{1}{2}`)
	f.Add(`\left(4^{2+x}\right)`)
	f.Add("-5!")
	f.Add("_A3")
	f.Add("_*255")
	f.Add("<1,2,3>")
	f.Add("[1,2;3,4]")
	f.Add("f(1,2,3)")
	f.Add(`arc\left(6\right)`)
	f.Add(`\frac{5}{6}\cdot5+\left(4^{2+x}\right)-1!+arc\left(6\right)`)
	f.Add("((((((1))))))")
	f.Add("1.2.3")
	f.Add("_Z9")
	f.Add("<>")

	f.Fuzz(func(t *testing.T, input string) {
		// Skip invalid UTF-8
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		// Parser should not panic on any input
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("parser panicked on input %q: %v", input, r)
			}
		}()

		expr, err := ParseString(context.Background(), input)

		// It's OK for parsing to fail, but it shouldn't panic
		// and failures must carry an error
		if err != nil {
			return
		}

		if expr == nil {
			t.Errorf("nil tree without error for input %q", input)

			return
		}

		// Whatever parsed must survive a render and re-parse intact.
		// Rendering may add grouping, so the re-parse runs without the
		// depth bound the original parse already enforced.
		text := Render(expr)

		again, err := ParseString(context.Background(), text, WithMaxDepth(0))
		if err != nil {
			t.Errorf("re-parse of %q (rendered from %q) failed: %v",
				text, input, err)

			return
		}

		if !Equal(expr, again) {
			t.Errorf("round trip of %q changed the tree: %q", input, text)
		}
	})
}

// FuzzRender feeds the serializer trees built from fuzzed scalars.
func FuzzRender(f *testing.F) {
	f.Add(int32(5), float32(1.5), "f", uint8(3))
	f.Add(int32(-1), float32(0), "arc", uint8(0))
	f.Add(int32(2147483647), float32(0.125), "max", uint8(255))

	f.Fuzz(func(t *testing.T, n int32, d float32, name string, slot uint8) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("render panicked: %v", r)
			}
		}()

		tree := &Binary{
			Op: OpAdd,
			L: &Binary{
				Op: OpMultiply,
				L:  Integer(n),
				R:  &Unary{Op: OpNegate, X: Decimal(d)},
			},
			R: &Call{
				Name: name,
				Args: []Expr{Escape{Kind: EscapeAtom, Slot: slot}},
			},
		}

		if Render(tree) == "" {
			t.Error("render produced no output")
		}
	})
}
