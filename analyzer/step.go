package analyzer

import (
	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/diagnostic"
	"github.com/project-tsurugi/yugawara/function"
	"github.com/project-tsurugi/yugawara/plan"
	"github.com/project-tsurugi/yugawara/relation"
	"github.com/project-tsurugi/yugawara/relation/step"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/typesys"
)

// ResolveStep resolves op, recursing into its Inputs() first when
// recursive is set. It returns false only on a missing required input.
func (a *Analyzer) ResolveStep(op step.Operator, validate, recursive bool) bool {
	if recursive {
		for _, in := range op.Inputs() {
			if in == nil {
				return false
			}
			if !a.ResolveStep(in, validate, true) {
				return false
			}
		}
	}
	switch n := op.(type) {
	case *step.TakeFlat:
		a.resolveTake(n.Source, n.Columns, validate)
	case *step.TakeGroup:
		a.resolveTake(n.Source, n.Columns, validate)
	case *step.TakeCogroup:
		a.resolveTakeCogroup(n, validate)
	case *step.Offer:
		a.resolveOffer(n, validate)
	case *step.Join:
		a.resolveStepCondition(n.Condition, validate)
	case *step.JoinFind:
		a.resolveKeys(n.Keys, validate)
		a.resolveStepCondition(n.Condition, validate)
	case *step.JoinScan:
		a.resolveEndpoint(n.Lower, validate)
		a.resolveEndpoint(n.Upper, validate)
		a.resolveStepCondition(n.Condition, validate)
	case *step.Aggregate:
		a.checkEqualityComparableKeys(n.GroupKeys, validate)
		a.resolveAggregations(n.Aggregations, validate)
	case *step.Intersection, *step.Difference, *step.Flatten:
		// pass-through: no new bindings or checks of their own.
	case *step.Scan:
		a.resolveStepScan(n, validate)
	case *step.Find:
		a.resolveStepFind(n, validate)
	case *step.Values:
		a.resolveStepValues(n, validate)
	case *step.Project:
		a.resolveStepProject(n, validate)
	case *step.Filter:
		a.resolveStepCondition(n.Condition, validate)
	case *step.Identify:
		a.Variables.Bind(n.Destination, UnknownType{Type: typesys.Int8}, true)
	case *step.Buffer:
		// pass-through: no new bindings.
	case *step.Emit:
		for _, c := range n.Columns {
			if _, ok := a.InspectVariable(c); !ok && validate && !a.opts.AllowUnresolved {
				a.diagnose(diagnostic.CodeUnresolvedVariable, "", "emit column is unresolved")
			}
		}
	case *step.Write:
		a.resolveStepWrite(n, validate)
	}
	return true
}

func (a *Analyzer) resolveStepScan(n *step.Scan, validate bool) {
	a.resolveEndpoint(n.Lower, validate)
	a.resolveEndpoint(n.Upper, validate)
	for _, c := range n.Columns {
		a.Variables.Bind(c.Destination, TableColumnResolution{Column: c.Source}, true)
	}
}

func (a *Analyzer) resolveStepFind(n *step.Find, validate bool) {
	a.resolveKeys(n.Keys, validate)
	for _, c := range n.Columns {
		a.Variables.Bind(c.Destination, TableColumnResolution{Column: c.Source}, true)
	}
}

func (a *Analyzer) resolveStepValues(n *step.Values, validate bool) {
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
		a.Variables.Bind(col, UnknownType{Type: result}, true)
	}
}

func (a *Analyzer) resolveStepProject(n *step.Project, validate bool) {
	for _, c := range n.Columns {
		a.ResolveExpression(c.Value, validate)
		a.Variables.Bind(c.Destination, ScalarExpressionResolution{Expression: c.Value}, true)
	}
}

func (a *Analyzer) resolveStepWrite(n *step.Write, validate bool) {
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

// ResolveStepGraph resolves every exchange and every process's step
// operators reachable from its declared Sinks.
func (a *Analyzer) ResolveStepGraph(g *plan.Graph, validate bool) bool {
	ok := true
	// Processes first: every offer/take column an exchange reports
	// through ExchangeColumns is bound only once the process that
	// produces it has actually resolved.
	for _, p := range g.Processes() {
		for _, sink := range p.Sinks {
			if !a.ResolveStep(sink, validate, true) {
				ok = false
			}
		}
	}
	for _, ex := range g.Exchanges() {
		a.resolveExchange(ex, validate)
	}
	return ok
}

func (a *Analyzer) resolveExchange(ex plan.Exchange, validate bool) {
	if validate && !a.opts.AllowUnresolved {
		for _, c := range ex.ExchangeColumns() {
			if _, ok := a.InspectVariable(c); !ok {
				a.diagnose(diagnostic.CodeUnresolvedVariable, "", "exchange column was never offered a value")
			}
		}
	}
	if agg, ok := ex.(*plan.Aggregate); ok {
		a.checkEqualityComparableKeys(agg.Keys, validate)
		a.resolveAggregations(agg.Aggregations, validate)
	}
}

func (a *Analyzer) resolveAggregations(aggregations []relation.Aggregation, validate bool) {
	for _, agg := range aggregations {
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
		a.Variables.Bind(agg.Destination, AggregationResolution{Declaration: decl}, true)
	}
}

// resolveTake binds each of columns to the type flowing out of the
// corresponding position of source's exchange.
func (a *Analyzer) resolveTake(source binding.Handle, columns []descriptor.Variable, validate bool) {
	ex, ok := binding.ExtractIf[plan.Exchange](source)
	if !ok {
		if validate {
			a.diagnose(diagnostic.CodeUnresolvedVariable, "", "take operator's source does not reference an exchange")
		}
		return
	}
	src := ex.ExchangeColumns()
	for i, dest := range columns {
		t := typesys.Type(typesys.PendingExt)
		if i < len(src) {
			if resolved, ok := a.InspectVariable(src[i]); ok {
				t = resolved
			}
		}
		a.Variables.Bind(dest, UnknownType{Type: t}, true)
	}
}

func (a *Analyzer) resolveTakeCogroup(n *step.TakeCogroup, validate bool) {
	for _, src := range n.Sources {
		ex, ok := binding.ExtractIf[plan.Exchange](src.Source)
		if !ok {
			if validate {
				a.diagnose(diagnostic.CodeUnresolvedVariable, "", "cogroup source does not reference an exchange")
			}
			continue
		}
		group, isGroup := ex.(*plan.Group)
		if validate && !isGroup {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "cogroup source is not a group exchange")
		} else if validate && isGroup && len(group.Keys) != len(n.Keys) {
			a.diagnose(diagnostic.CodeInconsistentElements, "", "cogroup sources have differing key counts")
		}
	}
	for i, key := range n.Keys {
		result := typesys.Type(typesys.Unknown)
		for _, src := range n.Sources {
			if i >= len(src.Columns) {
				continue
			}
			if t, ok := a.InspectVariable(src.Columns[i]); ok {
				result = typesys.UnifyingConversion(result, t, a.repository())
			}
		}
		a.Variables.Bind(key.Variable, UnknownType{Type: result}, true)
	}
	for _, src := range n.Sources {
		for _, c := range src.Columns {
			if _, ok := a.InspectVariable(c); !ok && validate && !a.opts.AllowUnresolved {
				a.diagnose(diagnostic.CodeUnresolvedVariable, "", "cogroup source column is unresolved")
			}
		}
	}
}

func (a *Analyzer) resolveOffer(n *step.Offer, validate bool) {
	if _, ok := binding.ExtractIf[plan.Exchange](n.Destination); !ok && validate {
		a.diagnose(diagnostic.CodeUnresolvedVariable, "", "offer operator's destination does not reference an exchange")
	}
	for _, c := range n.Columns {
		t, ok := a.InspectVariable(c.Source)
		if !ok {
			t = typesys.PendingExt
		}
		if existing, bound := a.InspectVariable(c.Destination); bound {
			unified := typesys.UnifyingConversion(existing, t, a.repository())
			if typesys.IsError(unified) && validate {
				a.diagnose(diagnostic.CodeInconsistentType, "", "offer column conflicts with an earlier offer to the same exchange column")
			}
			a.Variables.Bind(c.Destination, UnknownType{Type: unified}, true)
		} else {
			a.Variables.Bind(c.Destination, UnknownType{Type: t}, true)
		}
	}
}

func (a *Analyzer) resolveStepCondition(cond scalar.Expression, validate bool) {
	if cond == nil {
		return
	}
	t := a.ResolveExpression(cond, validate)
	if validate && !typesys.IsConversionStop(t) && typesys.CategoryOf(t) != typesys.CategoryBoolean && typesys.CategoryOf(t) != typesys.CategoryUnknown {
		a.diagnose(diagnostic.CodeInconsistentType, "", "join condition must be boolean")
	}
}

// resolveKeys validates each key's value expression. A nil Column (a
// broadcast-exchange probe key has no backing storage column, unlike a
// scan/find key against a real table) skips the column-type check and
// only resolves the value expression.
func (a *Analyzer) resolveKeys(keys []relation.KeyPiece, validate bool) {
	for _, k := range keys {
		t := a.ResolveExpression(k.Value, validate)
		if k.Column == nil || !validate || typesys.IsConversionStop(t) {
			continue
		}
		if !typesys.IsAssignmentConvertible(t, k.Column.Type).IsYes() {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "probe key is not assignment-convertible to its column type")
		}
	}
}

func (a *Analyzer) resolveEndpoint(ep *relation.Endpoint, validate bool) {
	if ep == nil {
		return
	}
	a.resolveKeys(ep.Keys, validate)
}
