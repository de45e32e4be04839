package limits

import (
	"fmt"
	"math"
	"strings"

	"github.com/drexhage/symexpr/eval"
	"github.com/drexhage/symexpr/expr"
)

const (
	// probeMin..probeMax is the fixed integer grid scanned for
	// denominator zeros.
	probeMin = -10
	probeMax = 10
	// zeroTolerance is the folded magnitude below which a probe point
	// counts as a denominator zero.
	zeroTolerance = 1e-10
)

// Denominator returns the right operand of e when e's top-level
// operator is division, and false otherwise.
func Denominator(e expr.Expr) (expr.Expr, bool) {
	if b, ok := e.(*expr.Binary); ok && b.Op == expr.OpDiv {
		return b.Right, true
	}
	return nil, false
}

// FindSingularities walks e and collects the denominator subtree of
// every division node, in pre-order. Whether a denominator can
// actually vanish is not checked here; nested divisions contribute
// duplicates.
func FindSingularities(e expr.Expr) []expr.Expr {
	var out []expr.Expr
	collectDenominators(e, &out)
	return out
}

func collectDenominators(e expr.Expr, out *[]expr.Expr) {
	switch n := e.(type) {
	case *expr.Unary:
		collectDenominators(n.Operand, out)
	case *expr.Binary:
		if n.Op == expr.OpDiv {
			*out = append(*out, n.Right)
		}
		collectDenominators(n.Left, out)
		collectDenominators(n.Right, out)
	}
}

// CheckDivisionLimits probes every denominator of e over the integer
// grid probeMin..probeMax. A probe whose folded magnitude falls below
// zeroTolerance records a Singularity carrying both directional limits
// of the original expression (not the denominator). A probe that fails
// to evaluate, or leaves a symbolic residual, is skipped — the skip is
// a visible branch, not an aborted scan.
func CheckDivisionLimits(e expr.Expr, variable string, opts *Options) Report {
	var report Report
	for _, den := range FindSingularities(e) {
		for p := probeMin; p <= probeMax; p++ {
			point := float64(p)
			out, err := eval.Evaluate(den, variable, point)
			if err != nil {
				continue
			}
			c, ok := out.(*expr.Constant)
			if !ok {
				continue
			}
			if math.Abs(c.Value) >= zeroTolerance {
				continue
			}
			left, right := BothLimits(e, variable, point, opts)
			report.Singularities = append(report.Singularities, Singularity{
				Point:       point,
				Denominator: den,
				LeftLimit:   left,
				RightLimit:  right,
				Continuous:  left.Equal(right),
			})
		}
	}
	report.HasSingularity = len(report.Singularities) > 0
	return report
}

// DescribeDivisionBehavior renders one line per singularity found by
// CheckDivisionLimits with default options, or a fixed sentence when
// there is none.
func DescribeDivisionBehavior(e expr.Expr, variable string) string {
	report := CheckDivisionLimits(e, variable, nil)
	if !report.HasSingularity {
		return "No division singularities found."
	}
	lines := make([]string, len(report.Singularities))
	for i, s := range report.Singularities {
		if s.Continuous {
			lines[i] = fmt.Sprintf("At %s=%g: Continuous (limit %s from both sides)",
				variable, s.Point, s.LeftLimit)
		} else {
			lines[i] = fmt.Sprintf("At %s=%g: Discontinuous - Left limit: %s, Right limit: %s",
				variable, s.Point, s.LeftLimit, s.RightLimit)
		}
	}
	return strings.Join(lines, "\n")
}
