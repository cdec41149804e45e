package variable

import (
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/value"
)

// Comparison is a predicate that compares the target variable with a
// constant Value using Operator (the variable is always the left hand
// side).
type Comparison struct {
	Operator scalar.ComparisonOperator
	Value    value.Value
}

func (*Comparison) PredicateKind() PredicateKind { return PredicateComparison }
