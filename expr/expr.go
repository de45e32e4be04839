package expr

// BinaryOp enumerates the closed set of binary operators.
type BinaryOp int

const (
	// OpAdd is addition.
	OpAdd BinaryOp = iota
	// OpSub is subtraction.
	OpSub
	// OpMul is multiplication.
	OpMul
	// OpDiv is division.
	OpDiv
	// OpPow is exponentiation.
	OpPow
)

// String returns the conventional glyph for the operator.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return "?"
}

// UnaryOp enumerates the closed set of unary operators.
type UnaryOp int

const (
	// OpNeg is arithmetic negation.
	OpNeg UnaryOp = iota
	// OpSqrt is the square root.
	OpSqrt
	// OpAbs is the absolute value.
	OpAbs
)

// String returns the conventional name of the operator.
func (op UnaryOp) String() string {
	switch op {
	case OpNeg:
		return "neg"
	case OpSqrt:
		return "sqrt"
	case OpAbs:
		return "abs"
	}
	return "?"
}

// Expr is a node of an immutable expression tree. The interface is
// sealed: only Symbol, Constant, Unary and Binary implement it, so
// type switches over Expr are exhaustive.
type Expr interface {
	isExpr()
}

// Symbol is a named variable. Two Symbols are equal iff their names
// match exactly.
type Symbol struct {
	Name string
}

// Constant is a numeric leaf. The value may be ±Inf or NaN.
type Constant struct {
	Value float64
}

// Unary applies a UnaryOp to a single operand.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Binary applies a BinaryOp to a left and right operand.
type Binary struct {
	Op          BinaryOp
	Left, Right Expr
}

func (*Symbol) isExpr()   {}
func (*Constant) isExpr() {}
func (*Unary) isExpr()    {}
func (*Binary) isExpr()   {}

// Equal reports recursive structural equality: identical variants,
// identical operator tags, equal symbol names and equal constant
// values throughout both trees. Constants compare by numeric ==, so a
// NaN constant is not equal to anything, itself included.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x.Name == y.Name
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.Value == y.Value
	case *Unary:
		y, ok := b.(*Unary)
		return ok && x.Op == y.Op && Equal(x.Operand, y.Operand)
	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return a == nil && b == nil
}
