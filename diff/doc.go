// Package diff computes symbolic derivatives of expression trees by
// structural recursion, returning a fully simplified result.
//
// 🚀 Rules
//
//	d(c)/dx        = 0                      (any Constant)
//	d(x)/dx        = 1, d(y)/dx = 0         (Symbol name match)
//	d(f ± g)       = f' ± g'
//	d(f · g)       = f'·g + f·g'            (product rule)
//	d(f / g)       = (f'·g − f·g') / g²     (quotient rule)
//	d(f ^ n)       = n · f^(n−1) · f'       (power rule)
//	d(−f)          = −f'
//	d(sqrt(f))     = f' / (2·sqrt(f))
//	d(abs(f))      = f'·f / abs(f)
//
// The raw derivative tree is always passed through simplify.Simplify
// before being returned.
//
// ⚠️ Known limitation: the power rule treats the exponent subtree as a
// constant and does not verify that it is free of the differentiation
// variable. For exponents that depend on the variable (x^x and
// friends) the result is silently wrong. This mirrors the engine's
// documented design intent and is deliberately not "fixed" here.
package diff
