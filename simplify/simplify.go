package simplify

import (
	"math"

	"github.com/drexhage/symexpr/expr"
)

// MaxRounds caps the fixed-point iteration. The rule set is expected
// to converge long before this; the cap is a termination guard, not a
// convergence proof.
const MaxRounds = 100

// Simplify rewrites e to a canonical reduced form by applying Once
// until the tree stops changing, capped at MaxRounds. On hitting the
// cap the last state is returned without error.
func Simplify(e expr.Expr) (expr.Expr, error) {
	curr := e
	for i := 0; i < MaxRounds; i++ {
		next, err := Once(curr)
		if err != nil {
			return nil, err
		}
		if expr.Equal(next, curr) {
			return next, nil
		}
		curr = next
	}
	return curr, nil
}

// Once applies a single bottom-up rewrite round to e and returns the
// rewritten tree. Leaves are fixed points; inner nodes rewrite their
// children first, then try their own rules in priority order.
func Once(e expr.Expr) (expr.Expr, error) {
	switch n := e.(type) {
	case *expr.Symbol, *expr.Constant:
		return e, nil
	case *expr.Unary:
		return onceUnary(n)
	case *expr.Binary:
		return onceBinary(n)
	}
	return e, nil
}

func onceUnary(u *expr.Unary) (expr.Expr, error) {
	operand, err := Once(u.Operand)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case expr.OpNeg:
		// -(-x) → x
		if inner, ok := operand.(*expr.Unary); ok && inner.Op == expr.OpNeg {
			return inner.Operand, nil
		}
		if c, ok := operand.(*expr.Constant); ok {
			return expr.Num(-c.Value), nil
		}
	case expr.OpSqrt:
		if c, ok := operand.(*expr.Constant); ok && c.Value >= 0 {
			return expr.Num(math.Sqrt(c.Value)), nil
		}
		// sqrt(x^2) → abs(x), literal exponent 2 only
		if p, ok := operand.(*expr.Binary); ok && p.Op == expr.OpPow && isConst(p.Right, 2) {
			return expr.NewUnary(expr.OpAbs, p.Left), nil
		}
	case expr.OpAbs:
		if c, ok := operand.(*expr.Constant); ok {
			return expr.Num(math.Abs(c.Value)), nil
		}
		// abs(-x) → abs(x)
		if inner, ok := operand.(*expr.Unary); ok && inner.Op == expr.OpNeg {
			return expr.NewUnary(expr.OpAbs, inner.Operand), nil
		}
	}
	return expr.NewUnary(u.Op, operand), nil
}

func onceBinary(b *expr.Binary) (expr.Expr, error) {
	// Distribution is matched against the raw operands: rewriting the
	// children first can collapse the sum the pattern needs to see.
	if b.Op == expr.OpMul {
		if sum, ok := b.Right.(*expr.Binary); ok && sum.Op == expr.OpAdd {
			return Once(expr.NewBinary(expr.OpAdd,
				expr.NewBinary(expr.OpMul, b.Left, sum.Left),
				expr.NewBinary(expr.OpMul, b.Left, sum.Right)))
		}
		if sum, ok := b.Left.(*expr.Binary); ok && sum.Op == expr.OpAdd {
			return Once(expr.NewBinary(expr.OpAdd,
				expr.NewBinary(expr.OpMul, sum.Left, b.Right),
				expr.NewBinary(expr.OpMul, sum.Right, b.Right)))
		}
	}

	left, err := Once(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := Once(b.Right)
	if err != nil {
		return nil, err
	}

	if lc, ok := left.(*expr.Constant); ok {
		if rc, ok := right.(*expr.Constant); ok {
			return foldConstants(b.Op, lc.Value, rc.Value)
		}
	}

	if b.Op == expr.OpMul {
		if out, ok := associateCoefficients(left, right); ok {
			return out, nil
		}
	}

	if out, ok := elideIdentity(b.Op, left, right); ok {
		return out, nil
	}

	rebuilt := expr.NewBinary(b.Op, left, right)
	if b.Op == expr.OpAdd {
		if out, changed := combineLikeTerms(rebuilt); changed {
			return out, nil
		}
		if out, ok := perfectSquare(rebuilt); ok {
			return out, nil
		}
	}
	return rebuilt, nil
}

// foldConstants computes op over two constant operands. Division by an
// exact zero is the one arithmetic condition that escapes as an error.
func foldConstants(op expr.BinaryOp, a, b float64) (expr.Expr, error) {
	switch op {
	case expr.OpAdd:
		return expr.Num(a + b), nil
	case expr.OpSub:
		return expr.Num(a - b), nil
	case expr.OpMul:
		return expr.Num(a * b), nil
	case expr.OpDiv:
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		return expr.Num(a / b), nil
	case expr.OpPow:
		return expr.Num(math.Pow(a, b)), nil
	}
	return nil, ErrUnknownOperator
}

// associateCoefficients rewrites (k1*x)*k2 → (k1*k2)*x and the
// mirrored k2*(k1*x) form, keeping the numeric coefficient adjacent to
// its symbolic term for later like-term combination.
func associateCoefficients(left, right expr.Expr) (expr.Expr, bool) {
	if k2, ok := right.(*expr.Constant); ok {
		if m, ok := left.(*expr.Binary); ok && m.Op == expr.OpMul {
			if k1, ok := m.Left.(*expr.Constant); ok {
				return expr.NewBinary(expr.OpMul, expr.Num(k1.Value*k2.Value), m.Right), true
			}
		}
	}
	if k2, ok := left.(*expr.Constant); ok {
		if m, ok := right.(*expr.Binary); ok && m.Op == expr.OpMul {
			if k1, ok := m.Left.(*expr.Constant); ok {
				return expr.NewBinary(expr.OpMul, expr.Num(k1.Value*k2.Value), m.Right), true
			}
		}
	}
	return nil, false
}

// elideIdentity removes arithmetic identities: x+0, 0+x, x*0, 0*x,
// x*1, 1*x, x-0, x/1, x^0, x^1.
func elideIdentity(op expr.BinaryOp, left, right expr.Expr) (expr.Expr, bool) {
	switch op {
	case expr.OpAdd:
		if isConst(left, 0) {
			return right, true
		}
		if isConst(right, 0) {
			return left, true
		}
	case expr.OpSub:
		if isConst(right, 0) {
			return left, true
		}
	case expr.OpMul:
		if isConst(left, 0) || isConst(right, 0) {
			return expr.Num(0), true
		}
		if isConst(left, 1) {
			return right, true
		}
		if isConst(right, 1) {
			return left, true
		}
	case expr.OpDiv:
		if isConst(right, 1) {
			return left, true
		}
	case expr.OpPow:
		if isConst(right, 0) {
			return expr.Num(1), true
		}
		if isConst(right, 1) {
			return left, true
		}
	}
	return nil, false
}

// combineLikeTerms flattens an addition chain into its terms, groups
// the terms by structural equality of their symbolic base, sums the
// numeric coefficients per group, and folds the survivors back into a
// left-associated chain. Reports whether anything changed.
func combineLikeTerms(sum *expr.Binary) (expr.Expr, bool) {
	terms := flattenAdd(sum)

	type group struct {
		coeff float64
		base  expr.Expr
	}
	groups := make([]group, 0, len(terms))
	for _, t := range terms {
		coeff, base := splitTerm(t)
		merged := false
		for i := range groups {
			if expr.Equal(groups[i].base, base) {
				groups[i].coeff += coeff
				merged = true
				break
			}
		}
		if !merged {
			groups = append(groups, group{coeff: coeff, base: base})
		}
	}

	out := make([]expr.Expr, 0, len(groups))
	for _, g := range groups {
		switch {
		case g.coeff == 0:
			// zero-coefficient groups vanish
		case g.coeff == 1:
			out = append(out, g.base)
		default:
			out = append(out, expr.NewBinary(expr.OpMul, expr.Num(g.coeff), g.base))
		}
	}

	combined := chainAdd(out)
	if expr.Equal(combined, sum) {
		return sum, false
	}
	return combined, true
}

// splitTerm extracts the (coefficient, base) view of one addition
// term: Constant*base yields that coefficient, anything else counts
// as coefficient 1 over the whole term.
func splitTerm(t expr.Expr) (float64, expr.Expr) {
	if m, ok := t.(*expr.Binary); ok && m.Op == expr.OpMul {
		if c, ok := m.Left.(*expr.Constant); ok {
			return c.Value, m.Right
		}
	}
	return 1, t
}

// chainAdd folds terms into a left-associated addition chain; an empty
// list is Constant 0, a single term stands alone.
func chainAdd(terms []expr.Expr) expr.Expr {
	if len(terms) == 0 {
		return expr.Num(0)
	}
	out := terms[0]
	for _, t := range terms[1:] {
		out = expr.NewBinary(expr.OpAdd, out, t)
	}
	return out
}

// perfectSquare rewrites a three-term sum matching a^2 + 2*a*b + b^2,
// in any order of the terms, into (a+b)^2. The emitted (a, b) order is
// taken from the double product's own factors, so term permutations of
// the same trinomial all canonicalize to one tree.
func perfectSquare(sum *expr.Binary) (expr.Expr, bool) {
	terms := flattenAdd(sum)
	if len(terms) != 3 {
		return nil, false
	}
	for mid := 0; mid < 3; mid++ {
		a, b, ok := doubleProductFactors(terms[mid])
		if !ok {
			continue
		}
		s1, ok := squaredBase(terms[(mid+1)%3])
		if !ok {
			continue
		}
		s2, ok := squaredBase(terms[(mid+2)%3])
		if !ok {
			continue
		}
		// the two square bases must be {a, b} as an unordered pair
		if (expr.Equal(s1, a) && expr.Equal(s2, b)) ||
			(expr.Equal(s1, b) && expr.Equal(s2, a)) {
			return expr.NewBinary(expr.OpPow,
				expr.NewBinary(expr.OpAdd, a, b), expr.Num(2)), true
		}
	}
	return nil, false
}

// squaredBase matches base^2 with a literal exponent of exactly 2.
func squaredBase(t expr.Expr) (expr.Expr, bool) {
	p, ok := t.(*expr.Binary)
	if !ok || p.Op != expr.OpPow || !isConst(p.Right, 2) {
		return nil, false
	}
	return p.Left, true
}

// doubleProductFactors matches 2*a*b: the flattened factors must
// contain exactly one Constant 2 and exactly two further factors,
// returned in tree order.
func doubleProductFactors(t expr.Expr) (a, b expr.Expr, ok bool) {
	var twos int
	var rest []expr.Expr
	for _, f := range flattenMul(t) {
		if isConst(f, 2) {
			twos++
			continue
		}
		rest = append(rest, f)
	}
	if twos != 1 || len(rest) != 2 {
		return nil, nil, false
	}
	return rest[0], rest[1], true
}

// flattenAdd returns the terms of a (possibly nested) addition chain
// in left-to-right order.
func flattenAdd(e expr.Expr) []expr.Expr {
	if b, ok := e.(*expr.Binary); ok && b.Op == expr.OpAdd {
		return append(flattenAdd(b.Left), flattenAdd(b.Right)...)
	}
	return []expr.Expr{e}
}

// flattenMul returns the factors of a (possibly nested) multiplication
// chain in left-to-right order.
func flattenMul(e expr.Expr) []expr.Expr {
	if b, ok := e.(*expr.Binary); ok && b.Op == expr.OpMul {
		return append(flattenMul(b.Left), flattenMul(b.Right)...)
	}
	return []expr.Expr{e}
}

func isConst(e expr.Expr, v float64) bool {
	c, ok := e.(*expr.Constant)
	return ok && c.Value == v
}
