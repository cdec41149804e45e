// Package details holds the analyzer's internal rewrite-pass helpers:
// range hints for disjunction decomposition, the push-down traversal,
// and exchange-step collection. Package analyzer does not call into
// them; callers run the exported passes (PushDownFilters,
// DecomposeDisjunctionRange, CollectExchangeSteps) directly.
package details

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/typesys"
	"github.com/project-tsurugi/yugawara/value"
)

// RangeHintType distinguishes an infinite bound from a finite one and,
// for finite bounds, whether the boundary value itself is included.
type RangeHintType int

const (
	Infinity RangeHintType = iota
	Inclusive
	Exclusive
)

// RangeHintValue is either an immediate literal or a reference to a
// host variable; the zero value means "no value" (paired with
// Infinity). Immediate carries both a value.Value and the typesys.Type
// it was declared with, mirroring scalar.Immediate.
type RangeHintValue struct {
	Immediate     value.Value
	ImmediateType typesys.Type
	Variable      descriptor.Variable
	HasVariable   bool
}

func (v RangeHintValue) isZero() bool {
	return v.Immediate == nil && !v.HasVariable
}

func immediateValue(v value.Value, t typesys.Type) RangeHintValue {
	return RangeHintValue{Immediate: v, ImmediateType: t}
}

func variableValue(v descriptor.Variable) RangeHintValue {
	return RangeHintValue{Variable: v, HasVariable: true}
}

func compareImmediate(left value.Value, leftType typesys.Type, right value.Value, rightType typesys.Type, repo *typesys.Repository) value.Result {
	unified := typesys.UnifyingConversion(leftType, rightType, repo)
	if typesys.IsError(unified) {
		return value.Undefined
	}
	return value.Compare(left, right)
}

// RangeHintEntry accumulates the tightest known lower/upper bound on a
// single column across a chain of decomposed comparison predicates.
type RangeHintEntry struct {
	lowerType  RangeHintType
	lowerValue RangeHintValue
	upperType  RangeHintType
	upperValue RangeHintValue
}

// Empty reports whether both bounds are still unconstrained.
func (e *RangeHintEntry) Empty() bool {
	return e.lowerType == Infinity && e.upperType == Infinity
}

func (e *RangeHintEntry) LowerType() RangeHintType   { return e.lowerType }
func (e *RangeHintEntry) UpperType() RangeHintType   { return e.upperType }
func (e *RangeHintEntry) LowerValue() RangeHintValue { return e.lowerValue }
func (e *RangeHintEntry) UpperValue() RangeHintValue { return e.upperValue }

// IntersectLowerImmediate narrows the lower bound to the tighter of the
// current bound and value (an AND of two predicates).
func (e *RangeHintEntry) IntersectLowerImmediate(v value.Value, t typesys.Type, inclusive bool, repo *typesys.Repository) {
	if e.lowerType == Infinity {
		e.setLower(inclusive, immediateValue(v, t))
		return
	}
	if e.lowerValue.Immediate == nil {
		return
	}
	switch compareImmediate(e.lowerValue.Immediate, e.lowerValue.ImmediateType, v, t, repo) {
	case value.Undefined:
		return
	case value.Equal:
		if e.lowerType == Inclusive && !inclusive {
			e.setLower(false, immediateValue(v, t))
		}
	case value.Less:
		e.setLower(inclusive, immediateValue(v, t))
	}
}

// IntersectLowerVariable is IntersectLowerImmediate's host-variable form.
func (e *RangeHintEntry) IntersectLowerVariable(v descriptor.Variable, inclusive bool) {
	if e.lowerType == Infinity || !e.lowerValue.HasVariable {
		e.setLower(inclusive, variableValue(v))
		return
	}
	if e.lowerValue.Variable != v {
		return
	}
	if e.lowerType == Inclusive && !inclusive {
		e.lowerType = Exclusive
	}
}

// IntersectUpperImmediate is IntersectLowerImmediate's upper-bound mirror.
func (e *RangeHintEntry) IntersectUpperImmediate(v value.Value, t typesys.Type, inclusive bool, repo *typesys.Repository) {
	if e.upperType == Infinity {
		e.setUpper(inclusive, immediateValue(v, t))
		return
	}
	if e.upperValue.Immediate == nil {
		return
	}
	switch compareImmediate(e.upperValue.Immediate, e.upperValue.ImmediateType, v, t, repo) {
	case value.Undefined:
		return
	case value.Equal:
		if e.upperType == Inclusive && !inclusive {
			e.setUpper(false, immediateValue(v, t))
		}
	case value.Greater:
		e.setUpper(inclusive, immediateValue(v, t))
	}
}

// IntersectUpperVariable is IntersectUpperImmediate's host-variable form.
func (e *RangeHintEntry) IntersectUpperVariable(v descriptor.Variable, inclusive bool) {
	if e.upperType == Infinity || !e.upperValue.HasVariable {
		e.setUpper(inclusive, variableValue(v))
		return
	}
	if e.upperValue.Variable != v {
		return
	}
	if e.upperType == Inclusive && !inclusive {
		e.upperType = Exclusive
	}
}

// UnionLowerImmediate widens the lower bound to cover both the current
// bound and value (an OR of two predicates).
func (e *RangeHintEntry) UnionLowerImmediate(v value.Value, t typesys.Type, inclusive bool, repo *typesys.Repository) {
	if e.lowerType == Infinity {
		return
	}
	if e.lowerValue.Immediate == nil {
		e.clearLower()
		return
	}
	switch compareImmediate(e.lowerValue.Immediate, e.lowerValue.ImmediateType, v, t, repo) {
	case value.Undefined:
		e.clearLower()
	case value.Equal:
		if e.lowerType == Exclusive && inclusive {
			e.setLower(true, immediateValue(v, t))
		}
	case value.Greater:
		e.setLower(inclusive, immediateValue(v, t))
	}
}

// UnionLowerVariable is UnionLowerImmediate's host-variable form.
func (e *RangeHintEntry) UnionLowerVariable(v descriptor.Variable, inclusive bool) {
	if e.lowerType == Infinity {
		return
	}
	if !e.lowerValue.HasVariable || e.lowerValue.Variable != v {
		e.clearLower()
		return
	}
	if e.lowerType == Exclusive && inclusive {
		e.lowerType = Inclusive
	}
}

// UnionUpperImmediate is UnionLowerImmediate's upper-bound mirror.
func (e *RangeHintEntry) UnionUpperImmediate(v value.Value, t typesys.Type, inclusive bool, repo *typesys.Repository) {
	if e.upperType == Infinity {
		return
	}
	if e.upperValue.Immediate == nil {
		e.clearUpper()
		return
	}
	switch compareImmediate(e.upperValue.Immediate, e.upperValue.ImmediateType, v, t, repo) {
	case value.Undefined:
		e.clearUpper()
	case value.Equal:
		if e.upperType == Exclusive && inclusive {
			e.setUpper(true, immediateValue(v, t))
		}
	case value.Less:
		e.setUpper(inclusive, immediateValue(v, t))
	}
}

// UnionUpperVariable is UnionUpperImmediate's host-variable form.
func (e *RangeHintEntry) UnionUpperVariable(v descriptor.Variable, inclusive bool) {
	if e.upperType == Infinity {
		return
	}
	if !e.upperValue.HasVariable || e.upperValue.Variable != v {
		e.clearUpper()
		return
	}
	if e.upperType == Exclusive && inclusive {
		e.upperType = Inclusive
	}
}

// IntersectMerge folds other into e as if both entries' predicates were
// ANDed together, then consumes other.
func (e *RangeHintEntry) IntersectMerge(other *RangeHintEntry, repo *typesys.Repository) {
	e.mergeLower(other.lowerType, other.lowerValue, true, repo)
	e.mergeUpper(other.upperType, other.upperValue, true, repo)
}

// UnionMerge folds other into e as if both entries' predicates were
// ORed together, then consumes other.
func (e *RangeHintEntry) UnionMerge(other *RangeHintEntry, repo *typesys.Repository) {
	e.mergeLower(other.lowerType, other.lowerValue, false, repo)
	e.mergeUpper(other.upperType, other.upperValue, false, repo)
}

func (e *RangeHintEntry) mergeLower(t RangeHintType, v RangeHintValue, intersect bool, repo *typesys.Repository) {
	if t == Infinity {
		if !intersect {
			e.clearLower()
		}
		return
	}
	inclusive := t == Inclusive
	if v.HasVariable {
		if intersect {
			e.IntersectLowerVariable(v.Variable, inclusive)
		} else {
			e.UnionLowerVariable(v.Variable, inclusive)
		}
		return
	}
	if intersect {
		e.IntersectLowerImmediate(v.Immediate, v.ImmediateType, inclusive, repo)
	} else {
		e.UnionLowerImmediate(v.Immediate, v.ImmediateType, inclusive, repo)
	}
}

func (e *RangeHintEntry) mergeUpper(t RangeHintType, v RangeHintValue, intersect bool, repo *typesys.Repository) {
	if t == Infinity {
		if !intersect {
			e.clearUpper()
		}
		return
	}
	inclusive := t == Inclusive
	if v.HasVariable {
		if intersect {
			e.IntersectUpperVariable(v.Variable, inclusive)
		} else {
			e.UnionUpperVariable(v.Variable, inclusive)
		}
		return
	}
	if intersect {
		e.IntersectUpperImmediate(v.Immediate, v.ImmediateType, inclusive, repo)
	} else {
		e.UnionUpperImmediate(v.Immediate, v.ImmediateType, inclusive, repo)
	}
}

func (e *RangeHintEntry) setLower(inclusive bool, v RangeHintValue) {
	if inclusive {
		e.lowerType = Inclusive
	} else {
		e.lowerType = Exclusive
	}
	e.lowerValue = v
}

func (e *RangeHintEntry) setUpper(inclusive bool, v RangeHintValue) {
	if inclusive {
		e.upperType = Inclusive
	} else {
		e.upperType = Exclusive
	}
	e.upperValue = v
}

func (e *RangeHintEntry) clearLower() {
	e.lowerType = Infinity
	e.lowerValue = RangeHintValue{}
}

func (e *RangeHintEntry) clearUpper() {
	e.upperType = Infinity
	e.upperValue = RangeHintValue{}
}

// RangeHintMap accumulates one RangeHintEntry per column encountered
// while decomposing a disjunction of range predicates.
type RangeHintMap struct {
	entries map[descriptor.Variable]*RangeHintEntry
}

func NewRangeHintMap() *RangeHintMap {
	return &RangeHintMap{entries: map[descriptor.Variable]*RangeHintEntry{}}
}

// Contains reports whether key has a non-empty entry.
func (m *RangeHintMap) Contains(key descriptor.Variable) bool {
	e, ok := m.entries[key]
	return ok && !e.Empty()
}

// Get returns key's entry, creating an empty one on first access.
func (m *RangeHintMap) Get(key descriptor.Variable) *RangeHintEntry {
	if e, ok := m.entries[key]; ok {
		return e
	}
	e := &RangeHintEntry{}
	m.entries[key] = e
	return e
}

// Consume passes every non-empty entry to consumer and empties the map.
func (m *RangeHintMap) Consume(consumer func(descriptor.Variable, *RangeHintEntry)) {
	for k, v := range m.entries {
		if !v.Empty() {
			consumer(k, v)
		}
	}
	m.entries = map[descriptor.Variable]*RangeHintEntry{}
}

// IntersectMerge folds other's entries into m as an AND, consuming other.
func (m *RangeHintMap) IntersectMerge(other *RangeHintMap, repo *typesys.Repository) {
	other.Consume(func(k descriptor.Variable, v *RangeHintEntry) {
		m.Get(k).IntersectMerge(v, repo)
	})
}

// UnionMerge folds other's entries into m as an OR, consuming other. Any
// column present in m but absent from other becomes unconstrained,
// since the OR no longer guarantees that column is bounded.
func (m *RangeHintMap) UnionMerge(other *RangeHintMap, repo *typesys.Repository) {
	for k, v := range m.entries {
		if !other.Contains(k) {
			*v = RangeHintEntry{}
		}
	}
	other.Consume(func(k descriptor.Variable, v *RangeHintEntry) {
		m.Get(k).UnionMerge(v, repo)
	})
}

// ImmediateExpression materializes the bound value as a scalar.Immediate
// for use when the disjunction decomposition rebuilds a predicate from
// a hint.
func (v RangeHintValue) ImmediateExpression() *scalar.Immediate {
	if v.Immediate == nil {
		return nil
	}
	return &scalar.Immediate{Value: v.Immediate, Type: v.ImmediateType}
}

// VariableExpression materializes a host-variable bound as a
// scalar.VariableReference.
func (v RangeHintValue) VariableExpression() *scalar.VariableReference {
	if !v.HasVariable {
		return nil
	}
	return &scalar.VariableReference{Variable: v.Variable}
}
