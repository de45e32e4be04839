// Package eval substitutes numeric values for named symbols and folds
// the result.
//
// Evaluate replaces every occurrence of one variable with a Constant
// and runs a single bottom-up folding round (the simplifier's
// one-round rule) over the substituted tree — deliberately not a full
// fixed point. When the expression is fully determined the result is a
// single Constant; when other free symbols remain the result is a
// residual symbolic tree.
//
// HasVariable is the matching structural predicate: it reports whether
// a variable name occurs in any Symbol leaf of a tree, without
// evaluating anything.
//
// ⚙️ Usage
//
//	x := expr.Sym("x")
//	e := expr.Add(expr.Pow(x, 2), expr.Mul(3, x)) // x^2 + 3x
//	out, err := eval.Evaluate(e, "x", 2)          // Constant 10
//
// Division by an exact zero during folding propagates as
// simplify.ErrDivisionByZero; callers that want a soft answer (the
// limit analyzer, for one) must map it themselves.
package eval
