package diff

import (
	"errors"

	"github.com/drexhage/symexpr/expr"
	"github.com/drexhage/symexpr/simplify"
)

// ErrUnknownOperator indicates an operator tag outside the closed
// enumeration reached the differentiator. Given well-formed trees this
// is unreachable; it signals an internal-consistency violation.
var ErrUnknownOperator = errors.New("diff: unknown operator")

// Derivative differentiates e with respect to variable and simplifies
// the result. e may be an expr.Expr or a raw Go number, which is
// promoted to a Constant (and so differentiates to Constant 0).
func Derivative(e any, variable string) (expr.Expr, error) {
	raw, err := rawDerivative(expr.Lift(e), variable)
	if err != nil {
		return nil, err
	}
	return simplify.Simplify(raw)
}

// rawDerivative builds the un-simplified derivative tree.
func rawDerivative(e expr.Expr, variable string) (expr.Expr, error) {
	switch n := e.(type) {
	case *expr.Constant:
		return expr.Num(0), nil

	case *expr.Symbol:
		if n.Name == variable {
			return expr.Num(1), nil
		}
		return expr.Num(0), nil

	case *expr.Unary:
		d, err := rawDerivative(n.Operand, variable)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case expr.OpNeg:
			return expr.Neg(d), nil
		case expr.OpSqrt:
			// f' / (2·sqrt(f))
			return expr.Div(d, expr.Mul(2, expr.Sqrt(n.Operand))), nil
		case expr.OpAbs:
			// f'·f / abs(f)
			return expr.Div(expr.Mul(d, n.Operand), expr.Abs(n.Operand)), nil
		}
		return nil, ErrUnknownOperator

	case *expr.Binary:
		dl, err := rawDerivative(n.Left, variable)
		if err != nil {
			return nil, err
		}
		dr, err := rawDerivative(n.Right, variable)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case expr.OpAdd:
			return expr.Add(dl, dr), nil
		case expr.OpSub:
			return expr.Sub(dl, dr), nil
		case expr.OpMul:
			return expr.Add(expr.Mul(dl, n.Right), expr.Mul(n.Left, dr)), nil
		case expr.OpDiv:
			return expr.Div(
				expr.Sub(expr.Mul(dl, n.Right), expr.Mul(n.Left, dr)),
				expr.Pow(n.Right, 2)), nil
		case expr.OpPow:
			// Constant-exponent power rule; wrong when the exponent
			// depends on variable (see package doc).
			return expr.Mul(
				expr.Mul(n.Right, expr.Pow(n.Left, expr.Sub(n.Right, 1))),
				dl), nil
		}
		return nil, ErrUnknownOperator
	}
	return nil, ErrUnknownOperator
}
