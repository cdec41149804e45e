package variable

// Negation is the logical complement of Operand.
type Negation struct {
	Operand Predicate
}

func (*Negation) PredicateKind() PredicateKind { return PredicateNegation }
