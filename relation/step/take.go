package step

import (
	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/relation"
)

// TakeFlat reads every row offered to Source (a binding.Handle of kind
// binding.Relation, extracting to a *plan exchange) in arrival order.
type TakeFlat struct {
	Source  binding.Handle
	Columns []descriptor.Variable
}

func (*TakeFlat) Kind() Kind         { return KindTakeFlat }
func (*TakeFlat) Inputs() []Operator { return nil }

// TakeGroup reads Source group-by-group; within a group, rows arrive
// in the exchange's configured sort order if any.
type TakeGroup struct {
	Source  binding.Handle
	Columns []descriptor.Variable
}

func (*TakeGroup) Kind() Kind         { return KindTakeGroup }
func (*TakeGroup) Inputs() []Operator { return nil }

// CogroupSource is one input group exchange fanned into a TakeCogroup.
type CogroupSource struct {
	Source  binding.Handle
	Columns []descriptor.Variable
}

// TakeCogroup fans in multiple group exchanges sharing the same key
// shape and presents them aligned by key, one output row-set per key
// per source.
type TakeCogroup struct {
	Keys    []relation.SortKey
	Sources []CogroupSource
}

func (*TakeCogroup) Kind() Kind         { return KindTakeCogroup }
func (*TakeCogroup) Inputs() []Operator { return nil }

// Offer writes Input's rows into Destination (a binding.Handle of kind
// binding.Relation extracting to a *plan exchange).
type Offer struct {
	Input       Operator
	Destination binding.Handle
	Columns     []relation.ColumnOffer
}

func (*Offer) Kind() Kind           { return KindOffer }
func (o *Offer) Inputs() []Operator { return []Operator{o.Input} }
