// Package step models the physical relational operators that remain
// inside a process after collect_exchange_steps has lowered every
// exchange-spanning intermediate operator away. Unlike intermediate
// operators, several of these (take_flat, take_group, take_cogroup,
// offer) exist solely to read from or write to an exchange.
package step

// Kind enumerates the physical relational operator shapes.
type Kind int

const (
	KindTakeFlat Kind = iota
	KindTakeGroup
	KindTakeCogroup
	KindOffer
	KindJoin
	KindJoinFind
	KindJoinScan
	KindAggregate
	KindIntersection
	KindDifference
	KindFlatten
	KindScan
	KindFind
	KindValues
	KindProject
	KindFilter
	KindIdentify
	KindBuffer
	KindEmit
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindTakeFlat:
		return "take_flat"
	case KindTakeGroup:
		return "take_group"
	case KindTakeCogroup:
		return "take_cogroup"
	case KindOffer:
		return "offer"
	case KindJoin:
		return "join"
	case KindJoinFind:
		return "join_find"
	case KindJoinScan:
		return "join_scan"
	case KindAggregate:
		return "aggregate"
	case KindIntersection:
		return "intersection"
	case KindDifference:
		return "difference"
	case KindFlatten:
		return "flatten"
	case KindScan:
		return "scan"
	case KindFind:
		return "find"
	case KindValues:
		return "values"
	case KindProject:
		return "project"
	case KindFilter:
		return "filter"
	case KindIdentify:
		return "identify"
	case KindBuffer:
		return "buffer"
	case KindEmit:
		return "emit"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Operator is one node of a process's physical relational sub-graph.
type Operator interface {
	Kind() Kind
	Inputs() []Operator
}
