// Package limits performs numeric limit and singularity analysis for
// rational expressions, built on the evaluator.
//
// 🚀 How limits are sampled
//
//	Limit evaluates the expression along the geometric sequence
//	point + step/2^i for i = 1..50, where step is ±Epsilon depending
//	on the approach side. The sequence converges rapidly, so the last
//	two samples are used as a cheap divergence/convergence proxy:
//	both beyond ±1e10 classifies as a signed infinity, otherwise the
//	final sample is the finite limit. This is a heuristic, not a proof
//	of convergence. Any evaluation failure or symbolic residual inside
//	the loop short-circuits to Undefined — approximation errors are
//	values here, never propagated errors. When the step underflows
//	float64 resolution (point + step/2^i == point) sampling stops and
//	classification uses the samples collected so far.
//
// 🔎 Singularity probing
//
//	FindSingularities collects every division node's denominator
//	subtree. CheckDivisionLimits probes each denominator over the
//	fixed integer grid −10..10: a folded magnitude below 1e-10 records
//	a Singularity with both directional limits of the original
//	expression and a continuity flag; a probe that fails to evaluate
//	is skipped, neither recorded nor fatal.
//
// ⚠️ Caveats, by design:
//   - Zeros at non-integer or out-of-range points are never found;
//     the grid is deliberately fixed.
//   - A constant denominator (not involving the variable) is still
//     probed and registers at every grid point if it is numerically
//     near zero.
//
// ⚙️ Usage
//
//	e := expr.Div(1, expr.Sym("x")) // 1/x
//	left, right := limits.BothLimits(e, "x", 0, nil)
//	// left = -Inf, right = +Inf
//
//	fmt.Println(limits.DescribeDivisionBehavior(e, "x"))
//	// At x=0: Discontinuous - Left limit: -Inf, Right limit: +Inf
package limits
