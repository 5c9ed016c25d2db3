package latex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the expression in canonical notation to the writer.
func Format(_ context.Context, w io.Writer, e Expr) error {
	_, err := fmt.Fprintln(w, Render(e))

	return err
}

// FormatJSON writes the expression as JSON to the writer.
func FormatJSON(_ context.Context, w io.Writer, e Expr, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(
			ToNative(e), "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(ToNative(e))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the expression as YAML to the writer.
func FormatYAML(ctx context.Context, w io.Writer, e Expr, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, ToNative(e), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// FormatTree writes the expression as an indented tree to the writer,
// one node per line.
func FormatTree(_ context.Context, w io.Writer, e Expr, indent int) error {
	if indent <= 0 {
		indent = 2
	}

	return formatTree(w, e, indent, 0)
}

func formatTree(w io.Writer, e Expr, indent, depth int) error {
	pad := strings.Repeat(" ", depth*indent)

	var err error

	switch x := e.(type) {
	case Integer:
		_, err = fmt.Fprintf(w, "%sinteger %d\n", pad, int32(x))

	case Decimal:
		_, err = fmt.Fprintf(w, "%sdecimal %v\n", pad, float32(x))

	case Variable:
		_, err = fmt.Fprintf(w, "%svariable %c\n", pad, rune(x))

	case Escape:
		_, err = fmt.Fprintf(w, "%sescape %s %d\n", pad, x.Kind, x.Slot)

	case *Unary:
		if _, err = fmt.Fprintf(w, "%s%s\n", pad, x.Op); err != nil {
			return err
		}

		err = formatTree(w, x.X, indent, depth+1)

	case *Binary:
		if _, err = fmt.Fprintf(w, "%s%s\n", pad, x.Op); err != nil {
			return err
		}

		if err = formatTree(w, x.L, indent, depth+1); err != nil {
			return err
		}

		err = formatTree(w, x.R, indent, depth+1)

	case *Call:
		if _, err = fmt.Fprintf(w, "%scall %s\n", pad, x.Name); err != nil {
			return err
		}

		for _, arg := range x.Args {
			if err = formatTree(w, arg, indent, depth+1); err != nil {
				return err
			}
		}

	case *Vector:
		if _, err = fmt.Fprintf(w, "%svector %d\n", pad, x.Size()); err != nil {
			return err
		}

		for _, elem := range x.Elems {
			if err = formatTree(w, elem, indent, depth+1); err != nil {
				return err
			}
		}

	case *Matrix:
		_, err = fmt.Fprintf(w, "%smatrix %dx%d\n", pad, x.Rows, x.Cols)
		if err != nil {
			return err
		}

		for r := range x.Rows {
			for _, elem := range x.Row(r) {
				if err = formatTree(w, elem, indent, depth+1); err != nil {
					return err
				}
			}
		}
	}

	return err
}
