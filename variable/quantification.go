package variable

import "github.com/project-tsurugi/yugawara/scalar"

// Quantification conjoins or disjoins Operands, reusing scalar's
// And/Or quantifier vocabulary rather than declaring a parallel one.
type Quantification struct {
	Operator scalar.QuantifierKind
	Operands []Predicate
}

func (*Quantification) PredicateKind() PredicateKind { return PredicateQuantification }
