package intermediate

import "github.com/project-tsurugi/yugawara/descriptor"

// Identify appends a synthetic, row-unique Destination column to its
// Input's output (e.g. to give otherwise indistinguishable rows a
// join key).
type Identify struct {
	Input       Operator
	Destination descriptor.Variable
}

func (*Identify) Kind() Kind           { return KindIdentify }
func (i *Identify) Inputs() []Operator { return []Operator{i.Input} }
