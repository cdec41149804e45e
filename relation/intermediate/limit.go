package intermediate

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/relation"
)

// Limit caps the number of rows passed through, per GroupKeys group if
// any are given (an empty GroupKeys means a single, global group).
// SortKeys, if present, determine which rows within a group survive.
type Limit struct {
	Input     Operator
	GroupKeys []descriptor.Variable
	SortKeys  []relation.SortKey
	Count     uint64
}

func (*Limit) Kind() Kind           { return KindLimit }
func (l *Limit) Inputs() []Operator { return []Operator{l.Input} }
