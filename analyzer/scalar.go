package analyzer

import (
	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/diagnostic"
	"github.com/project-tsurugi/yugawara/function"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/ternary"
	"github.com/project-tsurugi/yugawara/typesys"
	"github.com/project-tsurugi/yugawara/value"
)

// ResolveExpression resolves e bottom-up, binding its type into the
// expression table and, when validate is set, accumulating diagnostics
// for any rule violation. It returns the resolved type, which is
// typesys.ErrorExt once a diagnosable mistake has already been found
// for e (so upstream operations over it propagate pending rather than
// compounding diagnostics).
func (a *Analyzer) ResolveExpression(e scalar.Expression, validate bool) typesys.Type {
	if t, ok := a.Expressions.Lookup(e); ok {
		return t
	}
	t := a.resolveExpression(e, validate)
	a.Expressions.Bind(e, t)
	return t
}

func (a *Analyzer) resolveExpression(e scalar.Expression, validate bool) typesys.Type {
	switch n := e.(type) {
	case *scalar.Immediate:
		return a.resolveImmediate(n, validate)
	case *scalar.VariableReference:
		return a.resolveVariableReference(n, validate)
	case *scalar.Unary:
		return a.resolveUnary(n, validate)
	case *scalar.Binary:
		return a.resolveBinary(n, validate)
	case *scalar.Compare:
		return a.resolveCompare(n, validate)
	case *scalar.Match:
		return a.resolveMatch(n, validate)
	case *scalar.Conditional:
		return a.resolveConditional(n, validate)
	case *scalar.Coalesce:
		return a.resolveCoalesce(n, validate)
	case *scalar.Let:
		return a.resolveLet(n, validate)
	case *scalar.FunctionCall:
		return a.resolveFunctionCall(n, validate)
	case *scalar.AggregateFunctionCall:
		return a.resolveAggregateFunctionCall(n, validate)
	case *scalar.Cast:
		return a.resolveCast(n, validate)
	default:
		return typesys.Unknown
	}
}

func (a *Analyzer) resolveImmediate(n *scalar.Immediate, validate bool) typesys.Type {
	if validate {
		if n.Type.Kind() == typesys.KindUnknown && !a.opts.AllowUnresolved {
			a.diagnose(diagnostic.CodeUnresolvedVariable, "", "immediate value has no resolved type")
		}
		natural := value.NaturalType(n.Value)
		if typesys.IsConversionStop(natural) || typesys.IsConversionStop(n.Type) {
			return typesys.PendingExt
		}
		if !typesys.IsAssignmentConvertible(natural, n.Type).IsYes() {
			a.diagnose(diagnostic.CodeInconsistentType, "", "immediate value is not assignment-convertible to its declared type")
			return typesys.ErrorExt
		}
	}
	return n.Type
}

func (a *Analyzer) resolveVariableReference(n *scalar.VariableReference, validate bool) typesys.Type {
	t, ok := a.InspectVariable(n.Variable)
	if !ok {
		if validate && !a.opts.AllowUnresolved {
			a.diagnose(diagnostic.CodeUnresolvedVariable, "", "reference to an unbound variable: "+n.Variable.String())
		}
		return typesys.PendingExt
	}
	if validate && !typesys.IsConversionStop(t) {
		if res, bound := a.Variables.Lookup(n.Variable); bound {
			if _, external := res.(ExternalResolution); external && a.CheckDeclaredType(t) == ternary.No {
				a.diagnose(diagnostic.CodeUnsupportedType, "", "externally declared variable type "+typesys.Format(t)+" is not upperbound-compatible")
			}
		}
	}
	return t
}

func (a *Analyzer) resolveUnary(n *scalar.Unary, validate bool) typesys.Type {
	operandType := a.ResolveExpression(n.Operand, validate)
	if typesys.IsConversionStop(operandType) {
		return typesys.PendingExt
	}
	switch n.Operator {
	case scalar.Length:
		return typesys.Int4
	case scalar.ConditionalNot, scalar.IsNull, scalar.IsTrue, scalar.IsFalse, scalar.IsUnknown:
		return typesys.Boolean
	case scalar.Plus, scalar.Sign:
		result := typesys.UnifyingConversionUnary(operandType, a.repository())
		if typesys.IsError(result) && validate {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "unary operator not defined for this type")
		}
		return result
	default:
		return typesys.ErrorExt
	}
}

func (a *Analyzer) resolveBinary(n *scalar.Binary, validate bool) typesys.Type {
	left := a.ResolveExpression(n.Left, validate)
	right := a.ResolveExpression(n.Right, validate)
	if typesys.IsConversionStop(left) || typesys.IsConversionStop(right) {
		return typesys.PendingExt
	}
	leftCat := typesys.CategoryOf(left)
	rightCat := typesys.CategoryOf(right)
	var result typesys.Type
	switch n.Operator {
	case scalar.Add, scalar.Subtract:
		switch {
		case leftCat == typesys.CategoryNumber && rightCat == typesys.CategoryNumber:
			result = typesys.AdditiveNumeric(left, right, a.repository())
		case leftCat == typesys.CategoryTemporal && rightCat == typesys.CategoryDatetimeInterval:
			result = left
		case leftCat == typesys.CategoryDatetimeInterval && rightCat == typesys.CategoryTemporal && n.Operator == scalar.Add:
			result = right
		case leftCat == typesys.CategoryDatetimeInterval && rightCat == typesys.CategoryDatetimeInterval:
			result = typesys.DatetimeInterval
		default:
			result = typesys.ErrorExt
		}
	case scalar.Multiply, scalar.Divide, scalar.Remainder:
		switch {
		case leftCat == typesys.CategoryNumber && rightCat == typesys.CategoryNumber:
			result = typesys.MultiplicativeNumeric(left, right, a.repository())
		case leftCat == typesys.CategoryNumber && rightCat == typesys.CategoryDatetimeInterval:
			result = right
		case leftCat == typesys.CategoryDatetimeInterval && rightCat == typesys.CategoryNumber:
			result = left
		default:
			result = typesys.ErrorExt
		}
	case scalar.Concat:
		if leftCat == rightCat && (leftCat == typesys.CategoryCharacterString || leftCat == typesys.CategoryOctetString || leftCat == typesys.CategoryBitString) {
			result = typesys.ConcatStringLike(left, right, a.repository())
		} else {
			result = typesys.ErrorExt
		}
	case scalar.ConditionalAnd, scalar.ConditionalOr:
		if leftCat != typesys.CategoryBoolean || rightCat != typesys.CategoryBoolean {
			if validate {
				a.diagnose(diagnostic.CodeInconsistentType, "", "conditional_and/or requires boolean operands")
			}
		}
		result = typesys.Boolean
	default:
		result = typesys.ErrorExt
	}
	if typesys.IsError(result) && validate {
		a.diagnose(diagnostic.CodeUnsupportedType, "", "binary operator not defined for these operand types")
	}
	return result
}

func (a *Analyzer) resolveCompare(n *scalar.Compare, validate bool) typesys.Type {
	left := a.ResolveExpression(n.Left, validate)
	right := a.ResolveExpression(n.Right, validate)
	if typesys.IsConversionStop(left) || typesys.IsConversionStop(right) {
		return typesys.Boolean
	}
	unified := typesys.UnifyingConversion(left, right, a.repository())
	if typesys.IsError(unified) {
		if validate {
			a.diagnose(diagnostic.CodeInconsistentType, "", "comparison operands have no common type")
		}
		return typesys.Boolean
	}
	ordered := n.Operator == scalar.Less || n.Operator == scalar.LessEqual ||
		n.Operator == scalar.Greater || n.Operator == scalar.GreaterEqual
	if ordered && !typesys.IsOrderComparable(unified) {
		if validate {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "type is not order-comparable")
		}
	} else if !ordered && !typesys.IsEqualityComparable(unified) {
		if validate {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "type is not equality-comparable")
		}
	}
	return typesys.Boolean
}

func (a *Analyzer) resolveMatch(n *scalar.Match, validate bool) typesys.Type {
	check := func(x scalar.Expression) {
		t := a.ResolveExpression(x, validate)
		if typesys.IsConversionStop(t) {
			return
		}
		cat := typesys.CategoryOf(t)
		if cat != typesys.CategoryCharacterString && cat != typesys.CategoryUnknown && validate {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "match operand must be a character string")
		}
	}
	check(n.Input)
	check(n.Pattern)
	if n.Escape != nil {
		check(n.Escape)
	}
	return typesys.Boolean
}

func (a *Analyzer) foldUnifying(types []typesys.Type) typesys.Type {
	var result typesys.Type = typesys.Unknown
	for _, t := range types {
		if typesys.IsConversionStop(t) {
			return typesys.PendingExt
		}
		result = typesys.UnifyingConversion(result, t, a.repository())
	}
	return result
}

func (a *Analyzer) resolveConditional(n *scalar.Conditional, validate bool) typesys.Type {
	var bodies []typesys.Type
	for _, alt := range n.Alternatives {
		cond := a.ResolveExpression(alt.Condition, validate)
		if validate && !typesys.IsConversionStop(cond) && typesys.CategoryOf(cond) != typesys.CategoryBoolean && typesys.CategoryOf(cond) != typesys.CategoryUnknown {
			a.diagnose(diagnostic.CodeInconsistentType, "", "conditional branch condition must be boolean")
		}
		bodies = append(bodies, a.ResolveExpression(alt.Body, validate))
	}
	if n.Default != nil {
		bodies = append(bodies, a.ResolveExpression(n.Default, validate))
	}
	result := a.foldUnifying(bodies)
	if typesys.IsError(result) && validate {
		a.diagnose(diagnostic.CodeInconsistentType, "", "conditional branches have no common type")
	}
	return result
}

func (a *Analyzer) resolveCoalesce(n *scalar.Coalesce, validate bool) typesys.Type {
	var alts []typesys.Type
	for _, alt := range n.Alternatives {
		alts = append(alts, a.ResolveExpression(alt, validate))
	}
	result := a.foldUnifying(alts)
	if typesys.IsError(result) && validate {
		a.diagnose(diagnostic.CodeInconsistentType, "", "coalesce alternatives have no common type")
	}
	return result
}

func (a *Analyzer) resolveLet(n *scalar.Let, validate bool) typesys.Type {
	for _, d := range n.Declarators {
		t := a.ResolveExpression(d.Initializer, validate)
		a.bindVariable(d.Variable, ScalarExpressionResolution{Expression: d.Initializer})
		_ = t
	}
	return a.ResolveExpression(n.Body, validate)
}

func (a *Analyzer) resolveFunctionCall(n *scalar.FunctionCall, validate bool) typesys.Type {
	decl := binding.Extract[*function.Declaration](n.Function)
	if validate {
		if len(n.Arguments) != len(decl.Parameters) {
			a.diagnose(diagnostic.CodeInconsistentElements, "", "function call argument count does not match declaration")
		} else {
			for i, arg := range n.Arguments {
				argType := a.ResolveExpression(arg, validate)
				if typesys.IsConversionStop(argType) {
					continue
				}
				if !typesys.IsAssignmentConvertible(argType, decl.Parameters[i]).IsYes() {
					a.diagnose(diagnostic.CodeUnsupportedType, "", "function call argument is not assignment-convertible to its parameter type (want "+typesys.Format(decl.Parameters[i])+", got "+typesys.Format(argType)+")")
				}
			}
		}
	} else {
		for _, arg := range n.Arguments {
			a.ResolveExpression(arg, validate)
		}
	}
	return decl.Returns
}

func (a *Analyzer) resolveAggregateFunctionCall(n *scalar.AggregateFunctionCall, validate bool) typesys.Type {
	decl := binding.Extract[*function.AggregateDeclaration](n.Function)
	if validate {
		if len(n.Arguments) != len(decl.Parameters) {
			a.diagnose(diagnostic.CodeInconsistentElements, "", "aggregate function call argument count does not match declaration")
		} else {
			for i, arg := range n.Arguments {
				argType := a.ResolveExpression(arg, validate)
				if typesys.IsConversionStop(argType) {
					continue
				}
				if !typesys.IsAssignmentConvertible(argType, decl.Parameters[i]).IsYes() {
					a.diagnose(diagnostic.CodeUnsupportedType, "", "aggregate argument is not assignment-convertible to its parameter type (want "+typesys.Format(decl.Parameters[i])+", got "+typesys.Format(argType)+")")
				}
			}
		}
	} else {
		for _, arg := range n.Arguments {
			a.ResolveExpression(arg, validate)
		}
	}
	return decl.Returns
}

func (a *Analyzer) resolveCast(n *scalar.Cast, validate bool) typesys.Type {
	operand := a.ResolveExpression(n.Operand, validate)
	if typesys.IsConversionStop(operand) {
		return n.Type
	}
	if validate && !typesys.IsCastConvertible(operand, n.Type).IsYes() {
		a.diagnose(diagnostic.CodeUnsupportedType, "", "operand type is not cast-convertible to the target type")
	}
	return n.Type
}
