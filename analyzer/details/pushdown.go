package details

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/relation"
	"github.com/project-tsurugi/yugawara/relation/intermediate"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/typesys"
	"github.com/project-tsurugi/yugawara/value"
)

// PushDownFilters rewrites g in place, moving each filter's condition
// as close to its data sources as the per-operator policy allows.
// Traversal is downstream-to-upstream: g's sinks are visited first so
// that an upstream filter is pushed with the full benefit of whatever
// its own downstream filters already merged into it.
func PushDownFilters(g *intermediate.Graph) {
	visited := map[intermediate.Operator]bool{}
	var rewrite func(op intermediate.Operator) intermediate.Operator
	rewrite = func(op intermediate.Operator) intermediate.Operator {
		if op == nil || visited[op] {
			return op
		}
		visited[op] = true
		if f, ok := op.(*intermediate.Filter); ok {
			terms := decomposeAnd(f.Condition)
			return push(f.Input, terms, rewrite)
		}
		rewriteInputsInPlace(op, rewrite)
		return op
	}
	for i, sink := range g.Sinks {
		g.Sinks[i] = rewrite(sink)
	}
}

// rewriteInputsInPlace recurses rewrite over op's own inputs and splices
// the (possibly replaced) results back into op's fields.
func rewriteInputsInPlace(op intermediate.Operator, rewrite func(intermediate.Operator) intermediate.Operator) {
	switch n := op.(type) {
	case *intermediate.Project:
		n.Input = rewrite(n.Input)
	case *intermediate.Apply:
		n.Input = rewrite(n.Input)
	case *intermediate.Filter:
		n.Input = rewrite(n.Input)
	case *intermediate.Identify:
		n.Input = rewrite(n.Input)
	case *intermediate.Buffer:
		n.Input = rewrite(n.Input)
	case *intermediate.Join:
		n.Left = rewrite(n.Left)
		n.Right = rewrite(n.Right)
	case *intermediate.Aggregate:
		n.Input = rewrite(n.Input)
	case *intermediate.Distinct:
		n.Input = rewrite(n.Input)
	case *intermediate.Limit:
		n.Input = rewrite(n.Input)
	case *intermediate.Union:
		n.Left, n.Right = rewrite(n.Left), rewrite(n.Right)
	case *intermediate.Intersection:
		n.Left, n.Right = rewrite(n.Left), rewrite(n.Right)
	case *intermediate.Difference:
		n.Left, n.Right = rewrite(n.Left), rewrite(n.Right)
	case *intermediate.Emit:
		n.Input = rewrite(n.Input)
	case *intermediate.Write:
		n.Input = rewrite(n.Input)
	}
}

// push applies terms as a filter immediately above op, after recursing
// into op to move as many of terms past it as the operator's pushdown
// policy allows. It also rewrites every input of op not touched by that
// policy via rewrite, so unrelated upstream filters still get pushed.
func push(op intermediate.Operator, terms []scalar.Expression, rewrite func(intermediate.Operator) intermediate.Operator) intermediate.Operator {
	switch n := op.(type) {
	case *intermediate.Scan, *intermediate.Find, *intermediate.Values, *intermediate.Identify, *intermediate.Buffer:
		rewriteInputsInPlace(op, rewrite)
		return wrapFilter(op, terms)

	case *intermediate.Project:
		introduced := map[descriptor.Variable]bool{}
		for _, c := range n.Columns {
			introduced[c.Destination] = true
		}
		staying, movable := partition(terms, func(t scalar.Expression) bool {
			return !scalar.ReferencesAny(t, introduced)
		})
		n.Input = push(n.Input, movable, rewrite)
		return wrapFilter(n, staying)

	case *intermediate.Apply:
		introduced := toSet(n.Columns)
		staying, movable := partition(terms, func(t scalar.Expression) bool {
			return !scalar.ReferencesAny(t, introduced)
		})
		n.Input = push(n.Input, movable, rewrite)
		return wrapFilter(n, staying)

	case *intermediate.Filter:
		return push(n.Input, append(decomposeAnd(n.Condition), terms...), rewrite)

	case *intermediate.Join:
		return pushJoin(n, terms, rewrite)

	case *intermediate.Aggregate:
		groupKeys := toSet(n.GroupKeys)
		staying, movable := partition(terms, func(t scalar.Expression) bool {
			return scalar.ReferencesOnly(t, groupKeys)
		})
		n.Input = push(n.Input, movable, rewrite)
		return wrapFilter(n, staying)

	case *intermediate.Distinct:
		keys := toSet(n.Keys)
		staying, duplicated := partition(terms, func(t scalar.Expression) bool {
			return scalar.ReferencesOnly(t, keys)
		})
		n.Input = push(n.Input, duplicated, rewrite)
		return wrapFilter(n, append(staying, duplicated...))

	case *intermediate.Limit:
		keys := toSet(n.GroupKeys)
		staying, duplicated := partition(terms, func(t scalar.Expression) bool {
			return len(n.GroupKeys) > 0 && scalar.ReferencesOnly(t, keys)
		})
		n.Input = push(n.Input, duplicated, rewrite)
		return wrapFilter(n, append(staying, duplicated...))

	case *intermediate.Union:
		if len(terms) == 0 {
			n.Left, n.Right = rewrite(n.Left), rewrite(n.Right)
			return n
		}
		leftTerms := substituteSetMapping(terms, n.Mappings, true)
		rightTerms := substituteSetMapping(terms, n.Mappings, false)
		n.Left = push(n.Left, leftTerms, rewrite)
		n.Right = push(n.Right, rightTerms, rewrite)
		return n

	case *intermediate.Intersection:
		leftVars := toSet(leftSetVariables(n.Mappings))
		staying, movable := partition(terms, func(t scalar.Expression) bool {
			return scalar.ReferencesOnly(t, leftVars)
		})
		translated := substituteSetMapping(movable, n.Mappings, true)
		n.Left = push(n.Left, translated, rewrite)
		n.Right = rewrite(n.Right)
		return wrapFilter(n, staying)

	case *intermediate.Difference:
		leftVars := toSet(leftSetVariables(n.Mappings))
		staying, movable := partition(terms, func(t scalar.Expression) bool {
			return scalar.ReferencesOnly(t, leftVars)
		})
		translated := substituteSetMapping(movable, n.Mappings, true)
		n.Left = push(n.Left, translated, rewrite)
		n.Right = rewrite(n.Right)
		return wrapFilter(n, staying)

	default:
		rewriteInputsInPlace(op, rewrite)
		return wrapFilter(op, terms)
	}
}

func pushJoin(n *intermediate.Join, terms []scalar.Expression, rewrite func(intermediate.Operator) intermediate.Operator) intermediate.Operator {
	leftVars := toSet(definedVariables(n.Left))
	rightVars := toSet(definedVariables(n.Right))

	switch n.JoinKind {
	case relation.InnerJoin:
		var leftOnly, rightOnly, mixed []scalar.Expression
		for _, t := range terms {
			switch {
			case scalar.ReferencesOnly(t, leftVars):
				leftOnly = append(leftOnly, t)
			case scalar.ReferencesOnly(t, rightVars):
				rightOnly = append(rightOnly, t)
			default:
				mixed = append(mixed, t)
			}
		}
		n.Left = push(n.Left, leftOnly, rewrite)
		n.Right = push(n.Right, rightOnly, rewrite)
		for _, t := range mixed {
			n.Condition = andMerge(n.Condition, t)
		}
		return n

	case relation.LeftOuterJoin:
		var leftOnly, rest []scalar.Expression
		for _, t := range terms {
			if scalar.ReferencesOnly(t, leftVars) {
				leftOnly = append(leftOnly, t)
			} else {
				rest = append(rest, t)
			}
		}
		n.Left = push(n.Left, leftOnly, rewrite)
		n.Right = rewrite(n.Right)
		return wrapFilter(n, rest)

	default: // FullOuterJoin: all terms stay downstream.
		n.Left = rewrite(n.Left)
		n.Right = rewrite(n.Right)
		return wrapFilter(n, terms)
	}
}

func wrapFilter(op intermediate.Operator, terms []scalar.Expression) intermediate.Operator {
	if len(terms) == 0 {
		return op
	}
	return &intermediate.Filter{Input: op, Condition: mergeAnd(terms)}
}

// decomposeAnd flattens a chain of top-level conditional-AND binaries
// into its leaf conjuncts.
func decomposeAnd(expr scalar.Expression) []scalar.Expression {
	if bin, ok := expr.(*scalar.Binary); ok && bin.Operator == scalar.ConditionalAnd {
		return append(decomposeAnd(bin.Left), decomposeAnd(bin.Right)...)
	}
	return []scalar.Expression{expr}
}

func mergeAnd(terms []scalar.Expression) scalar.Expression {
	if len(terms) == 0 {
		return &scalar.Immediate{Value: value.Boolean(true), Type: typesys.Boolean}
	}
	result := terms[0]
	for _, t := range terms[1:] {
		result = andMerge(result, t)
	}
	return result
}

func andMerge(base scalar.Expression, term scalar.Expression) scalar.Expression {
	if base == nil {
		return term
	}
	return &scalar.Binary{Operator: scalar.ConditionalAnd, Left: base, Right: term}
}

func partition(terms []scalar.Expression, movable func(scalar.Expression) bool) (staying, moved []scalar.Expression) {
	for _, t := range terms {
		if movable(t) {
			moved = append(moved, t)
		} else {
			staying = append(staying, t)
		}
	}
	return staying, moved
}

func toSet(vars []descriptor.Variable) map[descriptor.Variable]bool {
	set := make(map[descriptor.Variable]bool, len(vars))
	for _, v := range vars {
		set[v] = true
	}
	return set
}

func leftSetVariables(mappings []relation.SetMapping) []descriptor.Variable {
	var vars []descriptor.Variable
	for _, m := range mappings {
		if m.Left != nil {
			vars = append(vars, *m.Left)
		}
	}
	return vars
}

func substituteSetMapping(terms []scalar.Expression, mappings []relation.SetMapping, left bool) []scalar.Expression {
	translate := map[descriptor.Variable]descriptor.Variable{}
	for _, m := range mappings {
		side := m.Left
		if !left {
			side = m.Right
		}
		if side != nil {
			translate[m.Destination] = *side
		}
	}
	result := make([]scalar.Expression, 0, len(terms))
	for _, t := range terms {
		result = append(result, scalar.Substitute(t, translate))
	}
	return result
}

// definedVariables collects every variable an operator subgraph binds,
// used to decide which side of a join/set operator a term belongs to.
func definedVariables(op intermediate.Operator) []descriptor.Variable {
	var out []descriptor.Variable
	switch n := op.(type) {
	case *intermediate.Scan:
		for _, c := range n.Columns {
			out = append(out, c.Destination)
		}
	case *intermediate.Find:
		for _, c := range n.Columns {
			out = append(out, c.Destination)
		}
	case *intermediate.Values:
		out = append(out, n.Columns...)
	case *intermediate.Project:
		out = append(out, definedVariables(n.Input)...)
		for _, c := range n.Columns {
			out = append(out, c.Destination)
		}
	case *intermediate.Apply:
		out = append(out, definedVariables(n.Input)...)
		out = append(out, n.Columns...)
	case *intermediate.Filter:
		out = append(out, definedVariables(n.Input)...)
	case *intermediate.Identify:
		out = append(out, definedVariables(n.Input)...)
		out = append(out, n.Destination)
	case *intermediate.Buffer:
		out = append(out, definedVariables(n.Input)...)
	case *intermediate.Join:
		out = append(out, definedVariables(n.Left)...)
		out = append(out, definedVariables(n.Right)...)
	case *intermediate.Aggregate:
		out = append(out, n.GroupKeys...)
		for _, agg := range n.Aggregations {
			out = append(out, agg.Destination)
		}
	case *intermediate.Distinct:
		out = append(out, definedVariables(n.Input)...)
	case *intermediate.Limit:
		out = append(out, definedVariables(n.Input)...)
	case *intermediate.Union:
		for _, m := range n.Mappings {
			out = append(out, m.Destination)
		}
	case *intermediate.Intersection:
		for _, m := range n.Mappings {
			out = append(out, m.Destination)
		}
	case *intermediate.Difference:
		for _, m := range n.Mappings {
			out = append(out, m.Destination)
		}
	}
	return out
}
