package intermediate

import (
	"github.com/project-tsurugi/yugawara/relation"
	"github.com/project-tsurugi/yugawara/scalar"
)

// Join combines Left and Right rows. Condition is nil for a cross
// join.
type Join struct {
	JoinKind  relation.JoinKind
	Left      Operator
	Right     Operator
	Condition scalar.Expression // nil if absent
}

func (*Join) Kind() Kind           { return KindJoin }
func (j *Join) Inputs() []Operator { return []Operator{j.Left, j.Right} }
