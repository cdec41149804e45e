package step

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/relation"
)

// Aggregate performs full per-group aggregation over rows already
// grouped by a preceding TakeGroup (used for aggregate functions that
// cannot be pre-aggregated incrementally by an exchange).
type Aggregate struct {
	Input        Operator
	GroupKeys    []descriptor.Variable
	Aggregations []relation.Aggregation
}

func (*Aggregate) Kind() Kind           { return KindAggregate }
func (a *Aggregate) Inputs() []Operator { return []Operator{a.Input} }
