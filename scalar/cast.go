package scalar

import "github.com/project-tsurugi/yugawara/typesys"

// Cast explicitly converts Operand's value to Type.
type Cast struct {
	Operand Expression
	Type    typesys.Type
}

func (*Cast) ExprKind() Kind { return KindCast }
