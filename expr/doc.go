// Package expr defines the immutable expression tree at the heart of
// symexpr, plus the arithmetic construction layer that builds it.
//
// 🚀 The model
//
//	An expression is a strict tree of four variants:
//	  • Symbol   — a named variable ("x")
//	  • Constant — a float64 value (may be ±Inf or NaN)
//	  • Unary    — negate, sqrt or abs applied to one operand
//	  • Binary   — add, sub, mul, div or pow over two operands
//
// Nodes are never mutated after construction; every transformation in
// the sibling packages (simplify, diff, eval, limits) produces a new
// tree. Children are exclusively owned by their parent — trees never
// share subtrees — so read-only passes may run concurrently over the
// same tree without locks.
//
// ⚙️ Construction
//
//	x := expr.Sym("x")
//	e := expr.Add(expr.Pow(x, 2), expr.Mul(3, x)) // x^2 + 3*x
//
// The arithmetic constructors accept either Expr values or raw Go
// numbers (int, int64, float32, float64); raw numbers are promoted to
// Constant nodes. Passing any other type is a programming error and
// panics.
//
// Structural equality is the engine's notion of sameness: Equal
// reports true iff two trees agree on variant, operator tags, symbol
// names and constant values, recursively.
package expr
