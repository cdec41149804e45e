package intermediate

import (
	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/scalar"
)

// Apply invokes a table-valued Function once per Input row, passing
// Arguments (evaluated against Input's own columns), and exposes the
// function's result columns as Columns alongside Input's — a lateral
// join between Input and the function's output rows.
type Apply struct {
	Input     Operator
	Function  binding.Handle // kind binding.Function
	Arguments []scalar.Expression
	Columns   []descriptor.Variable
}

func (*Apply) Kind() Kind           { return KindApply }
func (a *Apply) Inputs() []Operator { return []Operator{a.Input} }
