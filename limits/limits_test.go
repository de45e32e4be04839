package limits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drexhage/symexpr/expr"
	"github.com/drexhage/symexpr/limits"
)

// TestLimit_ReciprocalAtZero verifies the classic pole: 1/x diverges
// to −∞ from the left of 0 and +∞ from the right.
func TestLimit_ReciprocalAtZero(t *testing.T) {
	e := expr.Div(1, expr.Sym("x"))

	assert.Equal(t, limits.NegativeInfinity, limits.Limit(e, "x", 0, limits.Left, nil))
	assert.Equal(t, limits.PositiveInfinity, limits.Limit(e, "x", 0, limits.Right, nil))

	left, right := limits.BothLimits(e, "x", 0, nil)
	assert.Equal(t, limits.NegativeInfinity, left)
	assert.Equal(t, limits.PositiveInfinity, right)
}

// TestLimit_FiniteAndUndefined covers ordinary convergence and the
// Undefined short-circuit for symbolic residuals.
func TestLimit_FiniteAndUndefined(t *testing.T) {
	x := expr.Sym("x")

	// x+1 → 3 at x=2 from either side; the tail sample may sit one
	// ulp off the target, so compare with a tolerance
	e := expr.Add(x, 1)
	for _, dir := range []limits.Direction{limits.Left, limits.Right} {
		got := limits.Limit(e, "x", 2, dir, nil)
		require.Equal(t, limits.KindFinite, got.Kind)
		assert.InDelta(t, 3, got.Value, 1e-9)
	}

	// a free symbol the sampler cannot determine
	assert.Equal(t, limits.Undefined, limits.Limit(expr.Sym("y"), "x", 0, limits.Left, nil))

	// 1/(x-x) divides by an exact zero at every sample; the evaluation
	// error is swallowed into Undefined, never propagated
	assert.Equal(t, limits.Undefined, limits.Limit(expr.Div(1, expr.Sub(x, x)), "x", 0, limits.Left, nil))
}

// TestLimit_RemovableSingularity verifies the finite two-sided limit
// of (x²−1)/(x−1) at 1.
func TestLimit_RemovableSingularity(t *testing.T) {
	x := expr.Sym("x")
	e := expr.Div(expr.Sub(expr.Pow(x, 2), 1), expr.Sub(x, 1))

	left, right := limits.BothLimits(e, "x", 1, nil)
	assert.True(t, limits.Finite(2).Equal(left), "left = %s", left)
	assert.True(t, limits.Finite(2).Equal(right), "right = %s", right)
	assert.True(t, left.Equal(right))
}

// TestLimit_CustomEpsilon verifies Options plumbing: a coarser starting
// step classifies the same pole.
func TestLimit_CustomEpsilon(t *testing.T) {
	e := expr.Div(1, expr.Sym("x"))
	opts := limits.Options{Epsilon: 1e-3}
	assert.Equal(t, limits.PositiveInfinity, limits.Limit(e, "x", 0, limits.Right, &opts))

	// non-positive epsilon falls back to the default
	bad := limits.Options{Epsilon: -1}
	assert.Equal(t, limits.PositiveInfinity, limits.Limit(e, "x", 0, limits.Right, &bad))
}

// TestDenominator verifies top-level division detection only.
func TestDenominator(t *testing.T) {
	x := expr.Sym("x")

	den, ok := limits.Denominator(expr.Div(1, x))
	require.True(t, ok)
	assert.True(t, expr.Equal(x, den))

	_, ok = limits.Denominator(expr.Add(expr.Div(1, x), 1))
	assert.False(t, ok, "division below the root does not count")
}

// TestFindSingularities verifies pre-order collection of denominator
// subtrees, including nested divisions.
func TestFindSingularities(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")

	assert.Empty(t, limits.FindSingularities(expr.Add(expr.Pow(x, 2), 1)))

	// (1/x)/y contributes the outer denominator y first, then x
	got := limits.FindSingularities(expr.Div(expr.Div(1, x), y))
	require.Len(t, got, 2)
	assert.True(t, expr.Equal(y, got[0]))
	assert.True(t, expr.Equal(x, got[1]))

	// denominators inside unary operands are found too
	got = limits.FindSingularities(expr.Abs(expr.Div(1, x)))
	require.Len(t, got, 1)
	assert.True(t, expr.Equal(x, got[0]))
}

// TestCheckDivisionLimits_NoDivision verifies the no-singularity case.
func TestCheckDivisionLimits_NoDivision(t *testing.T) {
	x := expr.Sym("x")
	report := limits.CheckDivisionLimits(expr.Add(expr.Pow(x, 2), 1), "x", nil)
	assert.False(t, report.HasSingularity)
	assert.Empty(t, report.Singularities)
}

// TestCheckDivisionLimits_Removable verifies that the integer probe
// finds the zero of x−1 and marks the point continuous, since both
// directional limits agree at Finite(2).
func TestCheckDivisionLimits_Removable(t *testing.T) {
	x := expr.Sym("x")
	e := expr.Div(expr.Sub(expr.Pow(x, 2), 1), expr.Sub(x, 1))

	report := limits.CheckDivisionLimits(e, "x", nil)
	require.True(t, report.HasSingularity)
	require.Len(t, report.Singularities, 1)

	s := report.Singularities[0]
	assert.Equal(t, 1.0, s.Point)
	assert.True(t, expr.Equal(expr.Sub(x, 1), s.Denominator))
	assert.True(t, limits.Finite(2).Equal(s.LeftLimit))
	assert.True(t, limits.Finite(2).Equal(s.RightLimit))
	assert.True(t, s.Continuous)
}

// TestCheckDivisionLimits_TwoPoles verifies 1/(x²−1): poles at −1 and
// 1, each with opposite-signed infinite one-sided limits.
func TestCheckDivisionLimits_TwoPoles(t *testing.T) {
	x := expr.Sym("x")
	e := expr.Div(1, expr.Sub(expr.Pow(x, 2), 1))

	report := limits.CheckDivisionLimits(e, "x", nil)
	require.True(t, report.HasSingularity)
	require.Len(t, report.Singularities, 2)

	byPoint := map[float64]limits.Singularity{}
	for _, s := range report.Singularities {
		byPoint[s.Point] = s
	}
	require.Contains(t, byPoint, -1.0)
	require.Contains(t, byPoint, 1.0)

	atMinus := byPoint[-1.0]
	assert.Equal(t, limits.PositiveInfinity, atMinus.LeftLimit)
	assert.Equal(t, limits.NegativeInfinity, atMinus.RightLimit)
	assert.False(t, atMinus.Continuous)

	atPlus := byPoint[1.0]
	assert.Equal(t, limits.NegativeInfinity, atPlus.LeftLimit)
	assert.Equal(t, limits.PositiveInfinity, atPlus.RightLimit)
	assert.False(t, atPlus.Continuous)
}

// TestCheckDivisionLimits_ConstantDenominator documents the known
// caveat: a constant zero denominator registers at every grid point,
// with Undefined limits on both sides.
func TestCheckDivisionLimits_ConstantDenominator(t *testing.T) {
	e := expr.Div(1, expr.Num(0))
	report := limits.CheckDivisionLimits(e, "x", nil)

	require.True(t, report.HasSingularity)
	assert.Len(t, report.Singularities, 21, "one record per grid point -10..10")
	for _, s := range report.Singularities {
		assert.Equal(t, limits.Undefined, s.LeftLimit)
		assert.Equal(t, limits.Undefined, s.RightLimit)
		assert.True(t, s.Continuous, "Undefined equals Undefined")
	}
}

// TestCheckDivisionLimits_NonIntegerZero documents the fixed-grid
// caveat: a zero at a non-integer point is never found.
func TestCheckDivisionLimits_NonIntegerZero(t *testing.T) {
	x := expr.Sym("x")
	e := expr.Div(1, expr.Sub(x, 0.5))
	report := limits.CheckDivisionLimits(e, "x", nil)
	assert.False(t, report.HasSingularity)
}

// TestDescribeDivisionBehavior pins the report wording for both the
// discontinuous and the empty case.
func TestDescribeDivisionBehavior(t *testing.T) {
	x := expr.Sym("x")

	got := limits.DescribeDivisionBehavior(expr.Div(1, x), "x")
	assert.Equal(t, "At x=0: Discontinuous - Left limit: -Inf, Right limit: +Inf", got)

	got = limits.DescribeDivisionBehavior(expr.Add(x, 1), "x")
	assert.Equal(t, "No division singularities found.", got)
}

// TestDescribeDivisionBehavior_Continuous pins the wording of the
// continuous line.
func TestDescribeDivisionBehavior_Continuous(t *testing.T) {
	x := expr.Sym("x")
	e := expr.Div(expr.Sub(expr.Pow(x, 2), 1), expr.Sub(x, 1))

	got := limits.DescribeDivisionBehavior(e, "x")
	assert.Equal(t, "At x=1: Continuous (limit 2 from both sides)", got)
}

// TestLimitValue_EqualAndString covers union equality and rendering.
func TestLimitValue_EqualAndString(t *testing.T) {
	assert.True(t, limits.Finite(2).Equal(limits.Finite(2)))
	assert.False(t, limits.Finite(2).Equal(limits.Finite(3)))
	assert.False(t, limits.Finite(2).Equal(limits.PositiveInfinity))
	assert.True(t, limits.Undefined.Equal(limits.Undefined))

	assert.Equal(t, "+Inf", limits.PositiveInfinity.String())
	assert.Equal(t, "-Inf", limits.NegativeInfinity.String())
	assert.Equal(t, "undefined", limits.Undefined.String())
	assert.Equal(t, "NaN", limits.NotANumber.String())
	assert.Equal(t, "2.5", limits.Finite(2.5).String())
}
