package analyzer

import (
	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/diagnostic"
	"github.com/project-tsurugi/yugawara/function"
	"github.com/project-tsurugi/yugawara/relation"
	"github.com/project-tsurugi/yugawara/relation/intermediate"
	"github.com/project-tsurugi/yugawara/typesys"
)

// ResolveOperator resolves op: when recursive is set, every upstream
// operator is resolved first. It returns false only on a structural
// violation (a required input port is missing); user-facing typing
// mistakes go to Diagnostics instead.
func (a *Analyzer) ResolveOperator(op intermediate.Operator, validate, recursive bool) bool {
	if recursive {
		for _, in := range op.Inputs() {
			if in == nil {
				return false
			}
			if !a.ResolveOperator(in, validate, true) {
				return false
			}
		}
	}
	for _, in := range op.Inputs() {
		if in == nil {
			return false
		}
	}
	switch n := op.(type) {
	case *intermediate.Scan:
		a.resolveScan(n, validate)
	case *intermediate.Find:
		a.resolveFind(n, validate)
	case *intermediate.Values:
		a.resolveValues(n, validate)
	case *intermediate.Project:
		a.resolveProject(n, validate)
	case *intermediate.Filter:
		a.resolveFilterOp(n, validate)
	case *intermediate.Identify:
		a.bindVariable(n.Destination, UnknownType{Type: typesys.Int8})
	case *intermediate.Buffer:
		// pass-through: no new bindings.
	case *intermediate.Join:
		a.resolveJoinOp(n, validate)
	case *intermediate.Aggregate:
		a.resolveAggregateOp(n, validate)
	case *intermediate.Distinct:
		a.resolveDistinctOp(n, validate)
	case *intermediate.Limit:
		a.resolveLimitOp(n, validate)
	case *intermediate.Union:
		a.resolveSetOp(n.Mappings, n.Quantifier, validate)
	case *intermediate.Intersection:
		a.resolveSetOp(n.Mappings, n.Quantifier, validate)
	case *intermediate.Difference:
		a.resolveSetOp(n.Mappings, n.Quantifier, validate)
	case *intermediate.Emit:
		// emit binds nothing new; its columns must already resolve.
		for _, c := range n.Columns {
			if _, ok := a.InspectVariable(c); !ok && validate && !a.opts.AllowUnresolved {
				a.diagnose(diagnostic.CodeUnresolvedVariable, "", "emit column is unresolved")
			}
		}
	case *intermediate.Write:
		a.resolveWriteOp(n, validate)
	}
	return true
}

// ResolveGraph resolves every operator reachable from g's sinks,
// upstream to downstream.
func (a *Analyzer) ResolveGraph(g *intermediate.Graph, validate bool) bool {
	ok := true
	g.Walk(func(op intermediate.Operator) {
		if !a.ResolveOperator(op, validate, false) {
			ok = false
		}
	})
	return ok
}

func (a *Analyzer) resolveScan(n *intermediate.Scan, validate bool) {
	checkEndpoint := func(ep *relation.Endpoint, isLast bool) {
		if ep == nil {
			return
		}
		for i, k := range ep.Keys {
			t := a.ResolveExpression(k.Value, validate)
			if typesys.IsConversionStop(t) || !validate {
				continue
			}
			if !typesys.IsAssignmentConvertible(t, k.Column.Type).IsYes() {
				a.diagnose(diagnostic.CodeUnsupportedType, "", "scan key is not assignment-convertible to its column type")
			}
			if i == len(ep.Keys)-1 && isLast && !typesys.IsOrderComparable(k.Column.Type) {
				a.diagnose(diagnostic.CodeUnsupportedType, "", "scan boundary key column must be order-comparable")
			}
		}
	}
	checkEndpoint(n.Lower, true)
	checkEndpoint(n.Upper, true)
	for _, c := range n.Columns {
		a.bindVariable(c.Destination, TableColumnResolution{Column: c.Source})
	}
}

func (a *Analyzer) resolveFind(n *intermediate.Find, validate bool) {
	for _, k := range n.Keys {
		t := a.ResolveExpression(k.Value, validate)
		if validate && !typesys.IsConversionStop(t) && !typesys.IsAssignmentConvertible(t, k.Column.Type).IsYes() {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "find key is not assignment-convertible to its column type")
		}
	}
	for _, c := range n.Columns {
		a.bindVariable(c.Destination, TableColumnResolution{Column: c.Source})
	}
}

func (a *Analyzer) resolveValues(n *intermediate.Values, validate bool) {
	for i, col := range n.Columns {
		result := typesys.Unknown
		for _, row := range n.Rows {
			if i >= len(row) {
				continue
			}
			t := a.ResolveExpression(row[i], validate)
			if typesys.IsConversionStop(t) {
				result = typesys.PendingExt
				continue
			}
			result = typesys.UnifyingConversion(result, t, a.repository())
		}
		a.bindVariable(col, UnknownType{Type: result})
	}
}

func (a *Analyzer) resolveProject(n *intermediate.Project, validate bool) {
	for _, c := range n.Columns {
		a.ResolveExpression(c.Value, validate)
		a.bindVariable(c.Destination, ScalarExpressionResolution{Expression: c.Value})
	}
}

func (a *Analyzer) resolveFilterOp(n *intermediate.Filter, validate bool) {
	t := a.ResolveExpression(n.Condition, validate)
	if validate && !typesys.IsConversionStop(t) && typesys.CategoryOf(t) != typesys.CategoryBoolean && typesys.CategoryOf(t) != typesys.CategoryUnknown {
		a.diagnose(diagnostic.CodeInconsistentType, "", "filter condition must be boolean")
	}
}

func (a *Analyzer) resolveJoinOp(n *intermediate.Join, validate bool) {
	if n.Condition == nil {
		return
	}
	t := a.ResolveExpression(n.Condition, validate)
	if validate && !typesys.IsConversionStop(t) && typesys.CategoryOf(t) != typesys.CategoryBoolean && typesys.CategoryOf(t) != typesys.CategoryUnknown {
		a.diagnose(diagnostic.CodeInconsistentType, "", "join condition must be boolean")
	}
}

func (a *Analyzer) checkEqualityComparableKeys(keys []descriptor.Variable, validate bool) {
	if !validate {
		return
	}
	for _, k := range keys {
		t, ok := a.InspectVariable(k)
		if !ok || typesys.IsConversionStop(t) {
			continue
		}
		if !typesys.IsEqualityComparable(t) {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "group/distinct key is not equality-comparable")
		}
	}
}

func (a *Analyzer) resolveAggregateOp(n *intermediate.Aggregate, validate bool) {
	a.checkEqualityComparableKeys(n.GroupKeys, validate)
	for _, agg := range n.Aggregations {
		decl := binding.Extract[*function.AggregateDeclaration](agg.Function)
		if validate && len(agg.Arguments) != len(decl.Parameters) {
			a.diagnose(diagnostic.CodeInconsistentElements, "", "aggregation argument count does not match declaration")
		} else if validate {
			for i, arg := range agg.Arguments {
				t, ok := a.InspectVariable(arg)
				if !ok || typesys.IsConversionStop(t) {
					continue
				}
				if !typesys.IsAssignmentConvertible(t, decl.Parameters[i]).IsYes() {
					a.diagnose(diagnostic.CodeUnsupportedType, "", "aggregation argument is not assignment-convertible to its parameter type")
				}
			}
		}
		a.bindVariable(agg.Destination, AggregationResolution{Declaration: decl})
	}
}

func (a *Analyzer) resolveDistinctOp(n *intermediate.Distinct, validate bool) {
	a.checkEqualityComparableKeys(n.Keys, validate)
}

func (a *Analyzer) resolveLimitOp(n *intermediate.Limit, validate bool) {
	a.checkEqualityComparableKeys(n.GroupKeys, validate)
	if !validate {
		return
	}
	for _, s := range n.SortKeys {
		t, ok := a.InspectVariable(s.Variable)
		if !ok || typesys.IsConversionStop(t) {
			continue
		}
		if !typesys.IsOrderComparable(t) {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "limit sort key is not order-comparable")
		}
	}
}

func (a *Analyzer) resolveSetOp(mappings []relation.SetMapping, quantifier relation.SetQuantifier, validate bool) {
	for _, m := range mappings {
		var leftType, rightType typesys.Type
		leftOk, rightOk := false, false
		if m.Left != nil {
			leftType, leftOk = a.InspectVariable(*m.Left)
		}
		if m.Right != nil {
			rightType, rightOk = a.InspectVariable(*m.Right)
		}
		var dest typesys.Type
		switch {
		case leftOk && rightOk:
			dest = typesys.UnifyingConversion(leftType, rightType, a.repository())
			if typesys.IsError(dest) && validate {
				a.diagnose(diagnostic.CodeInconsistentType, "", "set operator column has no common type across sides")
			}
		case leftOk:
			dest = leftType
		case rightOk:
			dest = rightType
		default:
			dest = typesys.PendingExt
		}
		if quantifier == relation.Distinct && validate && !typesys.IsConversionStop(dest) && !typesys.IsEqualityComparable(dest) {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "distinct set operator column is not equality-comparable")
		}
		a.bindVariable(m.Destination, UnknownType{Type: dest})
	}
}

func (a *Analyzer) resolveWriteOp(n *intermediate.Write, validate bool) {
	if !validate {
		return
	}
	for _, c := range n.Columns {
		t, ok := a.InspectVariable(c.Source)
		if !ok || typesys.IsConversionStop(t) {
			continue
		}
		if !typesys.IsAssignmentConvertible(t, c.Destination.Type).IsYes() {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "write source is not assignment-convertible to its destination column")
		}
	}
}
