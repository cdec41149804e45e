// Package plan models the step-plan graph produced by
// collect_exchange_steps: processes holding physical relational
// sub-graphs (package relation/step), linked by exchange nodes that
// route rows between them.
package plan

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/relation"
)

// Kind enumerates the step-plan node shapes.
type Kind int

const (
	KindProcess Kind = iota
	KindForward
	KindGroup
	KindBroadcast
	KindAggregate
	KindDiscard
)

func (k Kind) String() string {
	switch k {
	case KindProcess:
		return "process"
	case KindForward:
		return "forward"
	case KindGroup:
		return "group"
	case KindBroadcast:
		return "broadcast"
	case KindAggregate:
		return "aggregate"
	case KindDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

// Node is one step-plan graph node: a Process or one of the five
// exchange kinds.
type Node interface {
	Kind() Kind
}

// Exchange is the common shape of every non-process node: it names the
// Columns flowing through it, bound on first offer and unified on
// later ones by the analyzer's step::offer rule.
type Exchange interface {
	Node
	ExchangeColumns() []descriptor.Variable
}

// Forward is an unordered, unpartitioned pipe between processes.
type Forward struct {
	Columns []descriptor.Variable
	Limit   *uint64 // nil means unbounded
}

func (*Forward) Kind() Kind                               { return KindForward }
func (f *Forward) ExchangeColumns() []descriptor.Variable { return f.Columns }

// Group partitions rows by Keys, optionally sorting within a partition
// by SortKeys, optionally capping each partition at Limit rows.
type Group struct {
	Columns  []descriptor.Variable
	Keys     []descriptor.Variable
	SortKeys []relation.SortKey
	Limit    *uint64
}

func (*Group) Kind() Kind                               { return KindGroup }
func (g *Group) ExchangeColumns() []descriptor.Variable { return g.Columns }

// Broadcast replicates every row of its single producer to every
// consuming process (used for small-side hash joins).
type Broadcast struct {
	Columns []descriptor.Variable
}

func (*Broadcast) Kind() Kind                               { return KindBroadcast }
func (b *Broadcast) ExchangeColumns() []descriptor.Variable { return b.Columns }

// Aggregate pre-aggregates rows by Keys using incremental-combinable
// aggregate functions before the result reaches a downstream flatten.
type Aggregate struct {
	Columns      []descriptor.Variable
	Keys         []descriptor.Variable
	Aggregations []relation.Aggregation
}

func (*Aggregate) Kind() Kind                               { return KindAggregate }
func (a *Aggregate) ExchangeColumns() []descriptor.Variable { return a.Columns }

// Discard is a sink exchange: every row offered to it is dropped,
// terminating a branch of the step-plan graph that produces no output
// (e.g. a write statement's tail).
type Discard struct{}

func (*Discard) Kind() Kind                             { return KindDiscard }
func (*Discard) ExchangeColumns() []descriptor.Variable { return nil }
