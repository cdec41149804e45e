package scalar

import "github.com/project-tsurugi/yugawara/descriptor"

// Declarator binds Variable to the resolved type of Initializer within
// the scope of the enclosing Let's Body.
type Declarator struct {
	Variable    descriptor.Variable
	Initializer Expression
}

// Let binds zero or more local declarators, then evaluates Body in that
// scope.
type Let struct {
	Declarators []Declarator
	Body        Expression
}

func (*Let) ExprKind() Kind { return KindLet }
