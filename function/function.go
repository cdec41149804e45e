// Package function models scalar and aggregate function declarations,
// the external collaborators spec §6 calls "catalog providers ... for
// functions."
package function

import "github.com/project-tsurugi/yugawara/typesys"

// Declaration is a scalar function signature: fixed parameter types and
// a declared return type, used by function_call resolution.
type Declaration struct {
	Name       string
	Parameters []typesys.Type
	Returns    typesys.Type
}

// AggregateDeclaration is an aggregate function signature. Incremental
// marks whether the function permits incremental combination (partial
// aggregation across an exchange), consulted by collect_exchange_steps
// when deciding between the aggregate-exchange and group-exchange
// strategies.
type AggregateDeclaration struct {
	Name        string
	Parameters  []typesys.Type
	Returns     typesys.Type
	Incremental bool
}
