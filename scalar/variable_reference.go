package scalar

import "github.com/project-tsurugi/yugawara/descriptor"

// VariableReference refers to a previously bound variable by descriptor.
type VariableReference struct {
	Variable descriptor.Variable
}

func (*VariableReference) ExprKind() Kind { return KindVariableReference }
