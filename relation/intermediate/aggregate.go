package intermediate

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/relation"
)

// Aggregate groups Input by GroupKeys and computes Aggregations per
// group.
type Aggregate struct {
	Input        Operator
	GroupKeys    []descriptor.Variable
	Aggregations []relation.Aggregation
}

func (*Aggregate) Kind() Kind           { return KindAggregate }
func (a *Aggregate) Inputs() []Operator { return []Operator{a.Input} }
