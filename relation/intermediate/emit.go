package intermediate

import "github.com/project-tsurugi/yugawara/descriptor"

// Emit is a terminal operator: it names, in order, the Columns of
// Input exposed as the plan's (or subquery's) result.
type Emit struct {
	Input   Operator
	Columns []descriptor.Variable
}

func (*Emit) Kind() Kind           { return KindEmit }
func (e *Emit) Inputs() []Operator { return []Operator{e.Input} }
