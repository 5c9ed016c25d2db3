package latex

// ToNative converts an expression tree to native Go values suitable for
// JSON or YAML encoding: numbers and variables become scalars, vectors
// become flat arrays, matrices become nested row arrays, and every other
// node becomes a single-key map tagged with its operator or kind.
func ToNative(e Expr) any {
	switch x := e.(type) {
	case Integer:
		return int64(x)

	case Decimal:
		return float64(x)

	case Variable:
		return string(x)

	case Escape:
		return map[string]any{
			"escape": map[string]any{
				"kind": x.Kind.String(),
				"slot": int64(x.Slot),
			},
		}

	case *Unary:
		return map[string]any{x.Op.String(): ToNative(x.X)}

	case *Binary:
		return map[string]any{
			x.Op.String(): []any{ToNative(x.L), ToNative(x.R)},
		}

	case *Call:
		args := make([]any, len(x.Args))
		for i, arg := range x.Args {
			args[i] = ToNative(arg)
		}

		return map[string]any{
			"call": map[string]any{
				"name": x.Name,
				"args": args,
			},
		}

	case *Vector:
		elems := make([]any, len(x.Elems))
		for i, elem := range x.Elems {
			elems[i] = ToNative(elem)
		}

		return elems

	case *Matrix:
		rows := make([]any, x.Rows)
		for r := range x.Rows {
			row := make([]any, x.Cols)
			for c, elem := range x.Row(r) {
				row[c] = ToNative(elem)
			}

			rows[r] = row
		}

		return rows

	default:
		return nil
	}
}
