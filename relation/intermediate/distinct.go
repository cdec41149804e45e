package intermediate

import "github.com/project-tsurugi/yugawara/descriptor"

// Distinct removes rows that duplicate an earlier row across Keys.
type Distinct struct {
	Input Operator
	Keys  []descriptor.Variable
}

func (*Distinct) Kind() Kind           { return KindDistinct }
func (d *Distinct) Inputs() []Operator { return []Operator{d.Input} }
