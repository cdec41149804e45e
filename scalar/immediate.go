package scalar

import (
	"github.com/project-tsurugi/yugawara/typesys"
	"github.com/project-tsurugi/yugawara/value"
)

// Immediate is a constant literal carrying both its value and its
// declared type (the type the surrounding context expects it to have).
type Immediate struct {
	Value value.Value
	Type  typesys.Type
}

func (*Immediate) ExprKind() Kind { return KindImmediate }
