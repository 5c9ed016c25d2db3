package latex

import "iter"

// All returns an iterator over e followed by all of its descendants in
// preorder. Downstream pattern matchers use it to enumerate the escape
// placeholders of a template without knowing the tree shape.
func All(e Expr) iter.Seq[Expr] {
	return func(yield func(Expr) bool) {
		walk(e, yield)
	}
}

func walk(e Expr, yield func(Expr) bool) bool {
	if !yield(e) {
		return false
	}

	switch x := e.(type) {
	case *Unary:
		return walk(x.X, yield)

	case *Binary:
		return walk(x.L, yield) && walk(x.R, yield)

	case *Call:
		for _, arg := range x.Args {
			if !walk(arg, yield) {
				return false
			}
		}

	case *Vector:
		for _, elem := range x.Elems {
			if !walk(elem, yield) {
				return false
			}
		}

	case *Matrix:
		for _, elem := range x.Elems {
			if !walk(elem, yield) {
				return false
			}
		}
	}

	return true
}
