package intermediate

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/scalar"
)

// Column computes Destination from Value, in the scope of Project's
// input plus every earlier Column in the same Project (columns are
// evaluated left to right, so later columns may reference earlier
// ones).
type Column struct {
	Destination descriptor.Variable
	Value       scalar.Expression
}

// Project adds computed Columns to its Input's output, leaving the
// input's own columns untouched.
type Project struct {
	Input   Operator
	Columns []Column
}

func (*Project) Kind() Kind           { return KindProject }
func (p *Project) Inputs() []Operator { return []Operator{p.Input} }
