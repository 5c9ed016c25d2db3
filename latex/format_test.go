package latex

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	expr := add(mul(div(num(5), num(6)), num(5)), sym('x'))

	var sb strings.Builder
	if err := Format(context.Background(), &sb, expr); err != nil {
		t.Fatalf("format error: %v", err)
	}

	want := `\frac{5}{6}\cdot5+x` + "\n"
	if sb.String() != want {
		t.Errorf("Format() = %q, want %q", sb.String(), want)
	}
}

func TestFormatJSON(t *testing.T) {
	expr := add(num(1), sym('x'))

	var sb strings.Builder
	if err := FormatJSON(context.Background(), &sb, expr, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if _, ok := decoded["add"]; !ok {
		t.Errorf("JSON output %q missing the add node", sb.String())
	}
}

func TestFormatYAML(t *testing.T) {
	expr := call("f", num(1), vec(num(2), num(3)))

	var sb strings.Builder
	if err := FormatYAML(context.Background(), &sb, expr, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	if !strings.Contains(sb.String(), "call:") {
		t.Errorf("YAML output %q missing the call node", sb.String())
	}
}

func TestFormatTree(t *testing.T) {
	expr := add(num(1), fact(sym('x')))

	var sb strings.Builder
	if err := FormatTree(context.Background(), &sb, expr, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	want := []string{
		"add",
		"  integer 1",
		"  factorial",
		"    variable x",
	}

	if len(lines) != len(want) {
		t.Fatalf("FormatTree() = %q, want %d lines", sb.String(), len(want))
	}

	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestToNative(t *testing.T) {
	expr := mat(1, 2, num(1), dec(2.5))

	native, ok := ToNative(expr).([]any)
	if !ok || len(native) != 1 {
		t.Fatalf("ToNative() = %#v, want one row", ToNative(expr))
	}

	row, ok := native[0].([]any)
	if !ok || len(row) != 2 {
		t.Fatalf("row = %#v, want two elements", native[0])
	}

	if row[0] != int64(1) || row[1] != float64(2.5) {
		t.Errorf("row = %#v, want [1 2.5]", row)
	}
}

func TestAll(t *testing.T) {
	expr := add(num(1), call("f", Escape{Kind: EscapeAtom, Slot: 0}))

	var (
		count   int
		escapes int
	)

	for e := range All(expr) {
		count++

		if _, ok := e.(Escape); ok {
			escapes++
		}
	}

	if count != 4 {
		t.Errorf("All() visited %d nodes, want 4", count)
	}

	if escapes != 1 {
		t.Errorf("All() found %d escapes, want 1", escapes)
	}
}

func TestAll_EarlyStop(t *testing.T) {
	expr := add(add(num(1), num(2)), num(3))

	count := 0

	for range All(expr) {
		count++
		if count == 2 {
			break
		}
	}

	if count != 2 {
		t.Errorf("iteration continued past break: %d", count)
	}
}
