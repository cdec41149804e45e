// Package relation holds the vocabulary shared by the intermediate
// (logical) and step (physical) relational operator packages: column
// mappings, sort/group key descriptions, scan boundary keys, and the
// set-operator quantifier. Splitting these out avoids intermediate and
// step each redeclaring the same small structs.
package relation

import (
	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/storage"
)

// ColumnMapping binds a source table column to a destination variable,
// used by scan/find/write to describe projected columns.
type ColumnMapping struct {
	Source      *storage.Column
	Destination descriptor.Variable
}

// ColumnOffer binds a process-local Source variable to the Destination
// column of an exchange, used by step::offer.
type ColumnOffer struct {
	Source      descriptor.Variable
	Destination descriptor.Variable
}

// WriteMapping binds a process-local Source variable to the
// Destination table column it is written into, used by the write
// operator (the reverse direction of ColumnMapping, which reads a
// table column into a variable).
type WriteMapping struct {
	Source      descriptor.Variable
	Destination *storage.Column
}

// KeyPiece is one column/value pair of a scan or find key.
type KeyPiece struct {
	Column *storage.Column
	Value  scalar.Expression
}

// Endpoint is one boundary of a scan's key range.
type Endpoint struct {
	Keys      []KeyPiece
	Inclusive bool
}

// SortDirection orders a limit or group exchange's sort keys.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// SortKey pairs a variable with the direction it is sorted in.
type SortKey struct {
	Variable  descriptor.Variable
	Direction SortDirection
}

// SetQuantifier distinguishes ALL from DISTINCT for union, intersection
// and difference.
type SetQuantifier int

const (
	All SetQuantifier = iota
	Distinct
)

func (q SetQuantifier) String() string {
	if q == Distinct {
		return "distinct"
	}
	return "all"
}

// SetMapping binds one output column of a union/intersection/difference
// to its contributing variable on each side; a nil side means that
// side does not define this column (the "one side present" case).
type SetMapping struct {
	Left        *descriptor.Variable
	Right       *descriptor.Variable
	Destination descriptor.Variable
}

// JoinKind distinguishes the three join flavors the analyzer treats
// differently during push-down.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftOuterJoin
	FullOuterJoin
)

func (k JoinKind) String() string {
	switch k {
	case LeftOuterJoin:
		return "left_outer"
	case FullOuterJoin:
		return "full_outer"
	default:
		return "inner"
	}
}

// Aggregation computes one destination column from an aggregate
// function applied to Arguments.
type Aggregation struct {
	Function    binding.Handle // kind binding.AggregateFunction
	Arguments   []descriptor.Variable
	Destination descriptor.Variable
}
