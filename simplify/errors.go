package simplify

import "errors"

// Sentinel errors for simplification.
var (
	// ErrDivisionByZero indicates constant folding met a division whose
	// denominator folded to exactly zero.
	ErrDivisionByZero = errors.New("simplify: division by zero")

	// ErrUnknownOperator indicates an operator tag outside the closed
	// enumeration reached the rewriter; an internal-consistency
	// violation, not a recoverable user error.
	ErrUnknownOperator = errors.New("simplify: unknown operator")
)
