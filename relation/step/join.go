package step

import (
	"github.com/project-tsurugi/yugawara/relation"
	"github.com/project-tsurugi/yugawara/scalar"
)

// Join combines two already-cogrouped inputs; unlike
// intermediate.Join, its inputs are rows delivered by a preceding
// TakeCogroup rather than arbitrary sub-plans, so it carries no
// Left/Right operator fields of its own.
type Join struct {
	Input     Operator
	JoinKind  relation.JoinKind
	Condition scalar.Expression // nil if absent
}

func (*Join) Kind() Kind           { return KindJoin }
func (j *Join) Inputs() []Operator { return []Operator{j.Input} }
