package scalar

import "github.com/project-tsurugi/yugawara/descriptor"

// Substitute returns a copy of e with every VariableReference rewritten
// through mapping (a variable absent from mapping is left unchanged).
// Used by push-down when a term crosses a union/intersection/difference
// mapping from its destination column to one side's source column.
func Substitute(e Expression, mapping map[descriptor.Variable]descriptor.Variable) Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *Immediate:
		copy := *n
		return &copy
	case *VariableReference:
		if to, ok := mapping[n.Variable]; ok {
			return &VariableReference{Variable: to}
		}
		copy := *n
		return &copy
	case *Unary:
		return &Unary{Operator: n.Operator, Operand: Substitute(n.Operand, mapping)}
	case *Binary:
		return &Binary{Operator: n.Operator, Left: Substitute(n.Left, mapping), Right: Substitute(n.Right, mapping)}
	case *Compare:
		return &Compare{Operator: n.Operator, Left: Substitute(n.Left, mapping), Right: Substitute(n.Right, mapping)}
	case *Match:
		m := &Match{Input: Substitute(n.Input, mapping), Pattern: Substitute(n.Pattern, mapping)}
		if n.Escape != nil {
			m.Escape = Substitute(n.Escape, mapping)
		}
		return m
	case *Conditional:
		c := &Conditional{Alternatives: make([]Alternative, len(n.Alternatives))}
		for i, alt := range n.Alternatives {
			c.Alternatives[i] = Alternative{Condition: Substitute(alt.Condition, mapping), Body: Substitute(alt.Body, mapping)}
		}
		if n.Default != nil {
			c.Default = Substitute(n.Default, mapping)
		}
		return c
	case *Coalesce:
		alts := make([]Expression, len(n.Alternatives))
		for i, a := range n.Alternatives {
			alts[i] = Substitute(a, mapping)
		}
		return &Coalesce{Alternatives: alts}
	case *Let:
		decls := make([]Declarator, len(n.Declarators))
		for i, d := range n.Declarators {
			decls[i] = Declarator{Variable: d.Variable, Initializer: Substitute(d.Initializer, mapping)}
		}
		return &Let{Declarators: decls, Body: Substitute(n.Body, mapping)}
	case *FunctionCall:
		args := make([]Expression, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = Substitute(a, mapping)
		}
		return &FunctionCall{Function: n.Function, Arguments: args}
	case *AggregateFunctionCall:
		args := make([]Expression, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = Substitute(a, mapping)
		}
		return &AggregateFunctionCall{Function: n.Function, Arguments: args}
	case *Cast:
		return &Cast{Operand: Substitute(n.Operand, mapping), Type: n.Type}
	default:
		return e
	}
}
