package scalar

// Unary applies a unary operator to a single operand.
type Unary struct {
	Operator UnaryOperator
	Operand  Expression
}

func (*Unary) ExprKind() Kind { return KindUnary }
