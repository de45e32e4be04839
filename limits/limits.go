package limits

import (
	"math"

	"github.com/drexhage/symexpr/eval"
	"github.com/drexhage/symexpr/expr"
)

const (
	// sampleCount bounds the geometric sampling loop.
	sampleCount = 50
	// divergenceThreshold is the magnitude beyond which the sample
	// tail is treated as a signed infinity.
	divergenceThreshold = 1e10
)

// Limit classifies the one-sided limit of e as variable approaches
// point from the given side. Sampling failures (evaluation errors,
// symbolic residuals) yield Undefined; Limit never returns an error.
func Limit(e expr.Expr, variable string, point float64, dir Direction, opts *Options) LimitValue {
	step := resolveEpsilon(opts)
	if dir == Left {
		step = -step
	}

	values := make([]float64, 0, sampleCount)
	for i := 1; i <= sampleCount; i++ {
		x := point + math.Ldexp(step, -i)
		if x == point {
			// The step has underflowed float64 resolution; further
			// samples would sit exactly on the target point.
			break
		}
		out, err := eval.Evaluate(e, variable, x)
		if err != nil {
			return Undefined
		}
		c, ok := out.(*expr.Constant)
		if !ok {
			return Undefined
		}
		values = append(values, c.Value)
	}
	return classify(values, step)
}

// BothLimits returns the left and right limits of e at point.
func BothLimits(e expr.Expr, variable string, point float64, opts *Options) (left, right LimitValue) {
	return Limit(e, variable, point, Left, opts),
		Limit(e, variable, point, Right, opts)
}

// classify inspects the tail pair of the collected samples. The
// geometric sequence converges rapidly, so the last two values are a
// cheap divergence/convergence proxy rather than a convergence proof.
func classify(values []float64, step float64) LimitValue {
	if len(values) < 2 {
		return Undefined
	}
	prev, last := values[len(values)-2], values[len(values)-1]
	switch {
	case prev > divergenceThreshold && last > divergenceThreshold:
		return PositiveInfinity
	case prev < -divergenceThreshold && last < -divergenceThreshold:
		return NegativeInfinity
	case math.IsInf(last, 0) || math.IsNaN(last):
		if last > 0 || (math.IsInf(last, 0) && step > 0) {
			return PositiveInfinity
		}
		return NegativeInfinity
	}
	return Finite(last)
}
