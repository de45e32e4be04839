package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drexhage/symexpr/diff"
	"github.com/drexhage/symexpr/expr"
	"github.com/drexhage/symexpr/simplify"
)

func derived(t *testing.T, e any, variable string) expr.Expr {
	t.Helper()
	out, err := diff.Derivative(e, variable)
	require.NoError(t, err)
	return out
}

// TestDerivative_BaseCases covers constants (including raw Go numbers,
// which are auto-wrapped) and symbols.
func TestDerivative_BaseCases(t *testing.T) {
	x := expr.Sym("x")

	assert.True(t, expr.Equal(expr.Num(0), derived(t, 5, "x")), "d(5)/dx = 0")
	assert.True(t, expr.Equal(expr.Num(0), derived(t, expr.Num(3.14), "x")))
	assert.True(t, expr.Equal(expr.Num(1), derived(t, x, "x")), "d(x)/dx = 1")
	assert.True(t, expr.Equal(expr.Num(0), derived(t, expr.Sym("y"), "x")), "d(y)/dx = 0")
}

// TestDerivative_Polynomial verifies d(x^2 + 3x + 2)/dx = 2x + 3 after
// simplification.
func TestDerivative_Polynomial(t *testing.T) {
	x := expr.Sym("x")
	e := expr.Add(expr.Add(expr.Pow(x, 2), expr.Mul(3, x)), 2)

	out := derived(t, e, "x")
	want := expr.Add(expr.Mul(2, x), 3)
	assert.True(t, expr.Equal(want, out), "got %#v", out)
}

// TestDerivative_ProductRule verifies f'g + fg' with a symbolic
// co-factor: d(x*y)/dx = y.
func TestDerivative_ProductRule(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	out := derived(t, expr.Mul(x, y), "x")
	assert.True(t, expr.Equal(y, out), "got %#v", out)
}

// TestDerivative_QuotientRule verifies (f'g − fg')/g²:
// d(1/x)/dx = -1 / x².
func TestDerivative_QuotientRule(t *testing.T) {
	x := expr.Sym("x")
	out := derived(t, expr.Div(1, x), "x")
	want := expr.Div(-1, expr.Pow(x, 2))
	assert.True(t, expr.Equal(want, out), "got %#v", out)
}

// TestDerivative_ChainRules covers the unary chain rules for negate,
// sqrt and abs.
func TestDerivative_ChainRules(t *testing.T) {
	x := expr.Sym("x")

	out := derived(t, expr.Neg(x), "x")
	assert.True(t, expr.Equal(expr.Num(-1), out), "d(-x)/dx: got %#v", out)

	out = derived(t, expr.Sqrt(x), "x")
	want := expr.Div(1, expr.Mul(2, expr.Sqrt(x)))
	assert.True(t, expr.Equal(want, out), "d(sqrt x)/dx: got %#v", out)

	out = derived(t, expr.Abs(x), "x")
	want2 := expr.Div(x, expr.Abs(x))
	assert.True(t, expr.Equal(want2, out), "d(abs x)/dx: got %#v", out)
}

// TestDerivative_PowerRuleConstantExponent pins the documented
// constant-exponent assumption: the exponent subtree is used as-is,
// so d(x^3)/dx = 3*x^2.
func TestDerivative_PowerRuleConstantExponent(t *testing.T) {
	x := expr.Sym("x")
	out := derived(t, expr.Pow(x, 3), "x")
	want := expr.Mul(3, expr.Pow(x, 2))
	assert.True(t, expr.Equal(want, out), "got %#v", out)
}

// TestDerivative_SimplifyErrorPropagates verifies that a division by
// zero produced while simplifying the raw derivative escapes as
// simplify.ErrDivisionByZero.
func TestDerivative_SimplifyErrorPropagates(t *testing.T) {
	x := expr.Sym("x")
	_, err := diff.Derivative(expr.Div(x, 0), "x")
	assert.ErrorIs(t, err, simplify.ErrDivisionByZero)
}
