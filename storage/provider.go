package storage

import "github.com/project-tsurugi/yugawara/catalog"

// Provider is the table catalog contract consumed by the analyzer
// (spec §6): each/find/add/remove over table declarations.
type Provider = catalog.Provider[*Table]

// NewProvider builds a single-threaded table catalog.
func NewProvider(parent *Provider) *Provider { return catalog.New[*Table](parent) }

// NewLockedProvider builds a table catalog safe for concurrent readers
// with serialized writers.
func NewLockedProvider(parent *Provider) *Provider { return catalog.NewLocked[*Table](parent) }

// IndexProvider is the index catalog contract, keyed by index name.
type IndexProvider = catalog.Provider[*Index]

func NewIndexProvider(parent *IndexProvider) *IndexProvider { return catalog.New[*Index](parent) }

// SequenceProvider is the sequence catalog contract.
type SequenceProvider = catalog.Provider[*Sequence]

func NewSequenceProvider(parent *SequenceProvider) *SequenceProvider {
	return catalog.New[*Sequence](parent)
}
