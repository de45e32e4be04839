package expr

import "fmt"

// Sym returns a new Symbol leaf with the given name.
func Sym(name string) *Symbol { return &Symbol{Name: name} }

// Num returns a new Constant leaf holding v.
func Num(v float64) *Constant { return &Constant{Value: v} }

// NewBinary builds a Binary node from already-constructed operands.
func NewBinary(op BinaryOp, left, right Expr) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

// NewUnary builds a Unary node from an already-constructed operand.
func NewUnary(op UnaryOp, operand Expr) *Unary {
	return &Unary{Op: op, Operand: operand}
}

// Lift promotes a raw Go number to a Constant node; an Expr passes
// through unchanged. Any other type is construction misuse and panics.
func Lift(v any) Expr {
	switch n := v.(type) {
	case Expr:
		return n
	case float64:
		return Num(n)
	case float32:
		return Num(float64(n))
	case int:
		return Num(float64(n))
	case int64:
		return Num(float64(n))
	}
	panic(fmt.Sprintf("expr: unsupported operand type %T", v))
}

// Add builds left + right, promoting raw numbers to Constants.
func Add(left, right any) *Binary { return NewBinary(OpAdd, Lift(left), Lift(right)) }

// Sub builds left - right, promoting raw numbers to Constants.
func Sub(left, right any) *Binary { return NewBinary(OpSub, Lift(left), Lift(right)) }

// Mul builds left * right, promoting raw numbers to Constants.
func Mul(left, right any) *Binary { return NewBinary(OpMul, Lift(left), Lift(right)) }

// Div builds left / right, promoting raw numbers to Constants.
// Division by a symbolic zero is not rejected here; it surfaces during
// simplification or evaluation.
func Div(left, right any) *Binary { return NewBinary(OpDiv, Lift(left), Lift(right)) }

// Pow builds left ^ right, promoting raw numbers to Constants.
func Pow(left, right any) *Binary { return NewBinary(OpPow, Lift(left), Lift(right)) }

// Neg builds the arithmetic negation of operand.
func Neg(operand any) *Unary { return NewUnary(OpNeg, Lift(operand)) }

// Sqrt builds the square root of operand.
func Sqrt(operand any) *Unary { return NewUnary(OpSqrt, Lift(operand)) }

// Abs builds the absolute value of operand.
func Abs(operand any) *Unary { return NewUnary(OpAbs, Lift(operand)) }
