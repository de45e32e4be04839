// Package symexpr is a small symbolic-expression engine: immutable
// expression trees, a fixed-point term-rewriting simplifier, symbolic
// differentiation, and numeric limit & singularity analysis for
// rational expressions.
//
// 🚀 What is symexpr?
//
//	A compact, purely functional toolkit that brings together:
//		• Expression model: Symbol / Constant / Unary / Binary tree nodes
//		• Construction layer: arithmetic constructors with raw-number promotion
//		• Simplifier: bottom-up rewrite rules iterated to a fixed point
//		• Differentiator: structural derivatives, always fully simplified
//		• Evaluator: substitution plus one-round constant folding
//		• Limit analyzer: directional limits & discontinuity classification
//
// ✨ Why choose symexpr?
//
//   - Immutable trees – every pass returns a new tree, nothing mutates,
//     so concurrent analyses over one tree need no locks
//   - Total analysis API – numeric probing failures become values
//     (Undefined / skipped probes), never panics
//   - Bounded everything – fixed-point iteration and limit sampling
//     both carry hard iteration caps
//
// Under the hood, everything is organized under five subpackages:
//
//	expr/     — expression model, operators, structural equality, constructors
//	simplify/ — one-round rewrite rule & fixed-point driver
//	diff/     — symbolic differentiation
//	eval/     — numeric substitution & variable detection
//	limits/   — directional limits, singularity probing, behavior reports
//
// Quick sketch:
//
//	    e := expr.Div(1, expr.Sym("x"))        // 1/x
//	    limits.Limit(e, "x", 0, limits.Right, nil)
//	                                            // → +Inf
//
//	go get github.com/drexhage/symexpr
package symexpr
