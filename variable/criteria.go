package variable

import "github.com/project-tsurugi/yugawara/value"

// Criteria records what the analyzer knows about a variable beyond its
// type: its nullity, an optional structured invariant Predicate, and
// (when the variable has been proven constant-folded) its Constant
// value. No rewrite pass in this module reads Criteria.
type Criteria struct {
	Nullity   Nullity
	Predicate Predicate   // nil if no structured invariant is known
	Constant  value.Value // nil if the variable is not known to be constant
}

// NewNullableCriteria returns the default criteria: nullable, with no
// recorded invariant.
func NewNullableCriteria() Criteria {
	return Criteria{Nullity: NewNullity(true)}
}

// NewConstantCriteria returns criteria for a variable proven to always
// hold constant.
func NewConstantCriteria(constant value.Value) Criteria {
	_, isNull := constant.(value.Null)
	return Criteria{Nullity: NewNullity(isNull), Constant: constant}
}

// IsConstant reports whether c pins the variable to a single value.
func (c Criteria) IsConstant() bool { return c.Constant != nil }
