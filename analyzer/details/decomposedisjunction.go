package details

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/relation/intermediate"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/typesys"
)

// DecomposeDisjunctionRange rewrites every filter in g whose top-level
// condition is a disjunction of range comparisons on the same column
// (e.g. "x < 1 OR x > 10") by ANDing in the widest range the
// disjunction is known to admit. The rewrite is conservative: it adds
// terms rather than replacing the original condition, so it can only
// narrow a scan's bounds, never change the filter's result.
func DecomposeDisjunctionRange(g *intermediate.Graph, repo *typesys.Repository) {
	g.Walk(func(op intermediate.Operator) {
		f, ok := op.(*intermediate.Filter)
		if !ok {
			return
		}
		hints := CollectDisjunctionRange(f.Condition, repo)
		if len(hints) == 0 {
			return
		}
		current := f.Condition
		for _, term := range hints {
			current = &scalar.Binary{Operator: scalar.ConditionalAnd, Left: current, Right: term}
		}
		f.Condition = current
	})
}

// CollectDisjunctionRange extracts, as standalone comparison
// expressions, the tightest range hint implied by expr when expr's
// top-level operator is a conditional OR. It requires AND to already
// be decomposed at the top level by the caller; nested ANDs are still
// read correctly by the recursive dispatch, only the entry check is
// OR-only.
func CollectDisjunctionRange(expr scalar.Expression, repo *typesys.Repository) []scalar.Expression {
	bin, ok := expr.(*scalar.Binary)
	if !ok || bin.Operator != scalar.ConditionalOr {
		return nil
	}
	hints := dispatchRangeHint(expr, repo)
	return toExpressions(hints)
}

func dispatchRangeHint(expr scalar.Expression, repo *typesys.Repository) *RangeHintMap {
	switch n := expr.(type) {
	case *scalar.Binary:
		switch n.Operator {
		case scalar.ConditionalOr:
			left := dispatchRangeHint(n.Left, repo)
			right := dispatchRangeHint(n.Right, repo)
			left.UnionMerge(right, repo)
			return left
		case scalar.ConditionalAnd:
			left := dispatchRangeHint(n.Left, repo)
			right := dispatchRangeHint(n.Right, repo)
			left.IntersectMerge(right, repo)
			return left
		}
		return NewRangeHintMap()
	case *scalar.Compare:
		return extractComparisonHint(n, repo)
	default:
		return NewRangeHintMap()
	}
}

func isStreamColumn(expr scalar.Expression) (descriptor.Variable, bool) {
	ref, ok := expr.(*scalar.VariableReference)
	if !ok || ref.Variable.Kind() != descriptor.StreamVariable {
		return descriptor.Variable{}, false
	}
	return ref.Variable, true
}

func extractComparisonHint(expr *scalar.Compare, repo *typesys.Repository) *RangeHintMap {
	if expr.Operator == scalar.NotEqual {
		return NewRangeHintMap()
	}
	if col, ok := isStreamColumn(expr.Left); ok {
		return extractBound(col, expr.Right, expr.Operator, repo)
	}
	if col, ok := isStreamColumn(expr.Right); ok {
		return extractBound(col, expr.Left, expr.Operator.Transpose(), repo)
	}
	return NewRangeHintMap()
}

func extractBound(column descriptor.Variable, operand scalar.Expression, cmp scalar.ComparisonOperator, repo *typesys.Repository) *RangeHintMap {
	result := NewRangeHintMap()
	switch o := operand.(type) {
	case *scalar.Immediate:
		entry := result.Get(column)
		applyBound(entry, func(inclusive bool) { entry.IntersectLowerImmediate(o.Value, o.Type, inclusive, repo) },
			func(inclusive bool) { entry.IntersectUpperImmediate(o.Value, o.Type, inclusive, repo) }, cmp)
		return result
	case *scalar.VariableReference:
		if o.Variable.Kind() != descriptor.ExternalVariable {
			return result
		}
		entry := result.Get(column)
		applyBound(entry, func(inclusive bool) { entry.IntersectLowerVariable(o.Variable, inclusive) },
			func(inclusive bool) { entry.IntersectUpperVariable(o.Variable, inclusive) }, cmp)
		return result
	default:
		return result
	}
}

func applyBound(entry *RangeHintEntry, lower, upper func(inclusive bool), cmp scalar.ComparisonOperator) {
	_ = entry
	switch cmp {
	case scalar.Equal:
		lower(true)
		upper(true)
	case scalar.Less:
		upper(false)
	case scalar.Greater:
		lower(false)
	case scalar.LessEqual:
		upper(true)
	case scalar.GreaterEqual:
		lower(true)
	}
}

func toExpressions(m *RangeHintMap) []scalar.Expression {
	var results []scalar.Expression
	m.Consume(func(key descriptor.Variable, entry *RangeHintEntry) {
		if entry.LowerType() != Infinity {
			op := scalar.Less
			if entry.LowerType() == Inclusive {
				op = scalar.LessEqual
			}
			results = append(results, &scalar.Compare{
				Operator: op,
				Left:     boundExpression(entry.LowerValue()),
				Right:    &scalar.VariableReference{Variable: key},
			})
		}
		if entry.UpperType() != Infinity {
			op := scalar.Less
			if entry.UpperType() == Inclusive {
				op = scalar.LessEqual
			}
			results = append(results, &scalar.Compare{
				Operator: op,
				Left:     &scalar.VariableReference{Variable: key},
				Right:    boundExpression(entry.UpperValue()),
			})
		}
	})
	return results
}

func boundExpression(v RangeHintValue) scalar.Expression {
	if v.HasVariable {
		return v.VariableExpression()
	}
	return v.ImmediateExpression()
}
