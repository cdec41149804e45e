package function

import "github.com/project-tsurugi/yugawara/catalog"

// Registry is the scalar-function catalog contract.
type Registry = catalog.Provider[*Declaration]

func NewRegistry(parent *Registry) *Registry { return catalog.New[*Declaration](parent) }

// AggregateRegistry is the aggregate-function catalog contract.
type AggregateRegistry = catalog.Provider[*AggregateDeclaration]

func NewAggregateRegistry(parent *AggregateRegistry) *AggregateRegistry {
	return catalog.New[*AggregateDeclaration](parent)
}
