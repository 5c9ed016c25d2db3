// Package latex translates between a linear, LaTeX-flavored algebraic
// notation and an immutable expression tree, and back.
//
// The parser is a tokenless recursive-descent parser over five precedence
// layers; whitespace is skipped contextually, so no separate lexing pass
// exists. The serializer walks a tree and re-emits notation with the minimal
// parenthesization required for the output to re-parse to an equivalent tree.
//
// # Grammar
//
// Informal EBNF, lowest-binding layer first:
//
//	Expr     → Term (('+' | '-') Term)*                    left-associative
//	Term     → Unary (('\cdot' | '/' | '%') Unary)*        left-associative
//	Unary    → '-' Unary | Power '!' | Power
//	Power    → Leaf ('^' Power)?                           right-associative
//	Leaf     → Group | Frac | Vector | Matrix | Number
//	         | Call | Escape | Variable
//	Group    → ('(' | '\left(') Expr (')' | '\right)')
//	         | ('{' | '\left{') Expr ('}' | '\right}')
//	Frac     → '\frac' '{' Expr '}' '{' Expr '}'
//	Vector   → '<' Expr (',' Expr)* '>'
//	Matrix   → '[' Row (';' Row)* ']' ;  Row → Expr (',' Expr)*
//	Number   → digits with at most one '.'
//	Call     → '\'? alpha alnum* ('(' | '\left(') Expr (',' Expr)*
//	           (')' | '\right)')
//	Escape   → '_' ('A'|'F'|'V'|'M'|'*') digits
//	Variable → any single character not reserved by the grammar
//
// The escape production is a typed placeholder ("a hole of this syntactic
// category, numbered N") consumed by downstream pattern-matching components;
// it carries no value of its own.
//
// # Contract
//
// [ParseString] requires the entire input to be consumed unless
// [WithPartialInput] is given. Malformed input yields a [*ParseError]
// identifying the furthest position reached and the alternatives expected
// there. Nesting depth and input length are bounded ([WithMaxDepth],
// [WithMaxInput]) so adversarial input fails with a structured error instead
// of exhausting the stack.
//
// [Render] is total over well-formed trees and never fails. For any tree t
// produced by the parser, Render(t) re-parses to a tree structurally equal
// to t.
//
// The package performs no evaluation, simplification, or rewrite matching;
// the tree is the interface to those components.
package latex
