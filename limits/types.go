package limits

import (
	"strconv"

	"github.com/drexhage/symexpr/expr"
)

// Kind discriminates the LimitValue union.
type Kind int

const (
	// KindFinite is a finite numeric limit; the value lives in
	// LimitValue.Value.
	KindFinite Kind = iota
	// KindPositiveInfinity marks divergence to +∞.
	KindPositiveInfinity
	// KindNegativeInfinity marks divergence to −∞.
	KindNegativeInfinity
	// KindUndefined marks a limit the sampler could not determine:
	// an evaluation failed or left a symbolic residual.
	KindUndefined
	// KindNaN marks a not-a-number outcome.
	KindNaN
)

// LimitValue is the closed set of possible limit outcomes.
type LimitValue struct {
	Kind  Kind
	Value float64 // meaningful only when Kind == KindFinite
}

// The non-finite LimitValue singletons.
var (
	PositiveInfinity = LimitValue{Kind: KindPositiveInfinity}
	NegativeInfinity = LimitValue{Kind: KindNegativeInfinity}
	Undefined        = LimitValue{Kind: KindUndefined}
	NotANumber       = LimitValue{Kind: KindNaN}
)

// Finite wraps a finite numeric limit.
func Finite(v float64) LimitValue { return LimitValue{Kind: KindFinite, Value: v} }

// Equal reports value equality over the union: kinds must match, and
// finite values compare numerically.
func (v LimitValue) Equal(o LimitValue) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind == KindFinite {
		return v.Value == o.Value
	}
	return true
}

// String renders the outcome for behavior reports.
func (v LimitValue) String() string {
	switch v.Kind {
	case KindPositiveInfinity:
		return "+Inf"
	case KindNegativeInfinity:
		return "-Inf"
	case KindUndefined:
		return "undefined"
	case KindNaN:
		return "NaN"
	}
	return strconv.FormatFloat(v.Value, 'g', -1, 64)
}

// Direction selects the approach side of a one-sided limit.
type Direction int

const (
	// Left approaches the point from strictly below.
	Left Direction = iota
	// Right approaches the point from strictly above.
	Right
)

// Singularity reports one candidate zero of a denominator: the probe
// point, the offending denominator subtree, both directional limits of
// the original expression, and whether they agree.
type Singularity struct {
	Point       float64
	Denominator expr.Expr
	LeftLimit   LimitValue
	RightLimit  LimitValue
	Continuous  bool
}

// Report is the outcome of CheckDivisionLimits.
type Report struct {
	HasSingularity bool
	Singularities  []Singularity
}
