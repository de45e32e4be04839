package eval

import (
	"github.com/drexhage/symexpr/expr"
	"github.com/drexhage/symexpr/simplify"
)

// Evaluate substitutes value for every occurrence of variable in e and
// folds the substituted tree with one bottom-up rewrite round. The
// result is a *expr.Constant when e is fully determined by variable,
// otherwise a residual symbolic tree.
func Evaluate(e expr.Expr, variable string, value float64) (expr.Expr, error) {
	return simplify.Once(substitute(e, variable, value))
}

// substitute rebuilds e with every Symbol named variable replaced by a
// Constant holding value. The input tree is never mutated.
func substitute(e expr.Expr, variable string, value float64) expr.Expr {
	switch n := e.(type) {
	case *expr.Symbol:
		if n.Name == variable {
			return expr.Num(value)
		}
		return n
	case *expr.Constant:
		return n
	case *expr.Unary:
		return expr.NewUnary(n.Op, substitute(n.Operand, variable, value))
	case *expr.Binary:
		return expr.NewBinary(n.Op,
			substitute(n.Left, variable, value),
			substitute(n.Right, variable, value))
	}
	return e
}

// HasVariable reports whether variable occurs in any Symbol leaf
// reachable from e.
func HasVariable(e expr.Expr, variable string) bool {
	switch n := e.(type) {
	case *expr.Symbol:
		return n.Name == variable
	case *expr.Unary:
		return HasVariable(n.Operand, variable)
	case *expr.Binary:
		return HasVariable(n.Left, variable) || HasVariable(n.Right, variable)
	}
	return false
}
