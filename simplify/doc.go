// Package simplify rewrites expression trees to a canonical reduced
// form via a fixed set of term-rewriting rules run to a fixed point.
//
// 🚀 How it works
//
//	Once applies a single rewrite round, bottom-up: children are
//	rewritten before their parent's rule fires. Within one round the
//	rules are tried in a fixed priority order, first match wins:
//
//	  1. Symbol and Constant leaves are fixed points.
//	  2. Unary rules: double negation, constant folding for neg/sqrt/abs,
//	     sqrt(x^2) → abs(x), abs(-x) → abs(x).
//	  3. Distribution over addition: a*(b+c) → a*b + a*c and the
//	     mirrored form. Matched against the RAW operands before they
//	     are rewritten — rewriting first can collapse the very sum the
//	     pattern needs to see. The distributed result is rewritten
//	     recursively within the same round.
//	  4. Constant folding for + - * / ^ when both operands reduce to
//	     Constants. Division by an exact zero is ErrDivisionByZero,
//	     never a silent Inf.
//	  5. Coefficient association: (k1*x)*k2 → (k1*k2)*x, keeping
//	     numeric coefficients adjacent to their symbolic term.
//	  6. Identity elimination: x+0, x*1, x*0, x-0, x/1, x^0, x^1.
//	  7. Like-term combination over flattened addition chains, grouping
//	     terms by structural equality of their symbolic base.
//	  8. Perfect-square recognition: a^2 + 2*a*b + b^2 → (a+b)^2 for
//	     any ordering of the three terms.
//
//	Simplify iterates Once until the tree stops changing (structural
//	equality between rounds), capped at MaxRounds as a termination
//	guard; if the cap is hit the last state is returned.
//
// ⚙️ Usage
//
//	x := expr.Sym("x")
//	out, err := simplify.Simplify(expr.Add(expr.Mul(2, x), expr.Mul(3, x)))
//	// out = 5*x, err = nil
//
// Simplify is idempotent on its own output: feeding a result back in
// returns it unchanged.
package simplify
