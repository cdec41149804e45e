package scalar

import "github.com/project-tsurugi/yugawara/descriptor"

// Children returns the immediate sub-expressions of e, in evaluation
// order, skipping nil optional children (e.g. Match.Escape,
// Conditional.Default).
func Children(e Expression) []Expression {
	switch n := e.(type) {
	case *Immediate, *VariableReference:
		return nil
	case *Unary:
		return []Expression{n.Operand}
	case *Binary:
		return []Expression{n.Left, n.Right}
	case *Compare:
		return []Expression{n.Left, n.Right}
	case *Match:
		children := []Expression{n.Input, n.Pattern}
		if n.Escape != nil {
			children = append(children, n.Escape)
		}
		return children
	case *Conditional:
		var children []Expression
		for _, alt := range n.Alternatives {
			children = append(children, alt.Condition, alt.Body)
		}
		if n.Default != nil {
			children = append(children, n.Default)
		}
		return children
	case *Coalesce:
		return append([]Expression(nil), n.Alternatives...)
	case *Let:
		var children []Expression
		for _, d := range n.Declarators {
			children = append(children, d.Initializer)
		}
		return append(children, n.Body)
	case *FunctionCall:
		return append([]Expression(nil), n.Arguments...)
	case *AggregateFunctionCall:
		return append([]Expression(nil), n.Arguments...)
	case *Cast:
		return []Expression{n.Operand}
	default:
		return nil
	}
}

// Walk calls visit for e and, recursively, every sub-expression it
// contains (post-order is not guaranteed; visit order is pre-order).
func Walk(e Expression, visit func(Expression)) {
	if e == nil {
		return
	}
	visit(e)
	for _, c := range Children(e) {
		Walk(c, visit)
	}
}

// CollectVariables returns every descriptor referenced anywhere within
// e, in first-seen order, used by push-down to decide whether an
// operator's output still defines everything a filter term needs.
func CollectVariables(e Expression) []descriptor.Variable {
	var result []descriptor.Variable
	seen := map[descriptor.Variable]bool{}
	Walk(e, func(n Expression) {
		if vr, ok := n.(*VariableReference); ok {
			if !seen[vr.Variable] {
				seen[vr.Variable] = true
				result = append(result, vr.Variable)
			}
		}
	})
	return result
}

// ReferencesAny reports whether e refers to at least one variable in
// vars.
func ReferencesAny(e Expression, vars map[descriptor.Variable]bool) bool {
	found := false
	Walk(e, func(n Expression) {
		if found {
			return
		}
		if vr, ok := n.(*VariableReference); ok && vars[vr.Variable] {
			found = true
		}
	})
	return found
}

// ReferencesOnly reports whether every variable e refers to is present
// in vars (true for an expression that references nothing).
func ReferencesOnly(e Expression, vars map[descriptor.Variable]bool) bool {
	ok := true
	Walk(e, func(n Expression) {
		if !ok {
			return
		}
		if vr, isVar := n.(*VariableReference); isVar && !vars[vr.Variable] {
			ok = false
		}
	})
	return ok
}
