package intermediate

import "github.com/project-tsurugi/yugawara/scalar"

// Filter keeps only the Input rows for which Condition is true.
type Filter struct {
	Input     Operator
	Condition scalar.Expression
}

func (*Filter) Kind() Kind           { return KindFilter }
func (f *Filter) Inputs() []Operator { return []Operator{f.Input} }
