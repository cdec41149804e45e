package analyzer

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/typesys"
)

// ExpressionTable maps a scalar expression's own identity (Go's native
// interface/pointer identity, standing in for the original's address
// identity) to its resolved type. Binding is monotonic: rebinding an
// already-bound expression to a different type is a programming error,
// not a diagnosable user mistake.
type ExpressionTable struct {
	entries map[scalar.Expression]typesys.Type
}

// NewExpressionTable returns an empty table.
func NewExpressionTable() *ExpressionTable {
	return &ExpressionTable{entries: map[scalar.Expression]typesys.Type{}}
}

// Bind records t as e's resolved type. Re-binding e to an Equal type is
// a no-op; re-binding to a different type panics.
func (t *ExpressionTable) Bind(e scalar.Expression, resolved typesys.Type) {
	if existing, ok := t.entries[e]; ok {
		if existing.Equal(resolved) {
			return
		}
		panic("analyzer: expression already bound to a different type")
	}
	t.entries[e] = resolved
}

// Lookup returns e's resolved type, if any.
func (t *ExpressionTable) Lookup(e scalar.Expression) (typesys.Type, bool) {
	v, ok := t.entries[e]
	return v, ok
}

// VariableTable maps a variable descriptor to its resolution. Binding
// is monotonic within one run: re-binding to a different, non-equal
// resolution fails unless overwrite is requested.
type VariableTable struct {
	entries map[descriptor.Variable]Resolution
}

// NewVariableTable returns an empty table.
func NewVariableTable() *VariableTable {
	return &VariableTable{entries: map[descriptor.Variable]Resolution{}}
}

// Bind records resolution as v's binding. It reports false, leaving
// the table unchanged, when v is already bound to a different
// resolution and overwrite is false.
func (t *VariableTable) Bind(v descriptor.Variable, resolution Resolution, overwrite bool) bool {
	if existing, ok := t.entries[v]; ok && existing != resolution && !overwrite {
		return false
	}
	t.entries[v] = resolution
	return true
}

// Lookup returns v's resolution, if any.
func (t *VariableTable) Lookup(v descriptor.Variable) (Resolution, bool) {
	r, ok := t.entries[v]
	return r, ok
}
