package plan

import "github.com/project-tsurugi/yugawara/relation/step"

// Process is a maximal connected subgraph of step operators containing
// no exchange: it runs independently of every other process, reading
// from and writing to exchanges only at its take_*/offer leaves.
// Operators lists every node in the sub-graph; Sinks names the
// downstream-most ones (offer, or any operator whose output nothing
// else in the process consumes) so a resolver can walk upstream from
// them via each operator's Inputs().
type Process struct {
	Operators []step.Operator
	Sinks     []step.Operator
}

func (*Process) Kind() Kind { return KindProcess }
