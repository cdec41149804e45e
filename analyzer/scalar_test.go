package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-tsurugi/yugawara/analyzer"
	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/diagnostic"
	"github.com/project-tsurugi/yugawara/function"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/ternary"
	"github.com/project-tsurugi/yugawara/typesys"
	"github.com/project-tsurugi/yugawara/value"
	"github.com/project-tsurugi/yugawara/variable"
)

func newAnalyzer() *analyzer.Analyzer {
	return analyzer.New(analyzer.Options{})
}

func TestResolveExpression_ImmediateMatchesItsDeclaredType(t *testing.T) {
	a := newAnalyzer()
	expr := &scalar.Immediate{Value: value.Int4(3), Type: typesys.Int4}
	typ := a.ResolveExpression(expr, true)
	assert.True(t, typesys.Int4.Equal(typ))
	assert.False(t, a.Diagnostics.HasDiagnostics())
}

func TestResolveExpression_ImmediateMismatchedValueRaisesDiagnostic(t *testing.T) {
	a := newAnalyzer()
	expr := &scalar.Immediate{Value: value.Character("x"), Type: typesys.Int4}
	typ := a.ResolveExpression(expr, true)
	assert.True(t, typesys.IsError(typ))
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeInconsistentType, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveExpression_IsMemoizedAcrossCalls(t *testing.T) {
	a := newAnalyzer()
	expr := &scalar.Immediate{Value: value.Int4(1), Type: typesys.Int4}
	first := a.ResolveExpression(expr, true)
	second := a.ResolveExpression(expr, true)
	assert.True(t, first.Equal(second))
	// a second validate pass over the same node must not duplicate diagnostics.
	assert.Len(t, a.Diagnostics.Diagnostics(), 0)
}

func TestResolveExpression_VariableReferenceUnboundRaisesDiagnostic(t *testing.T) {
	a := newAnalyzer()
	v := descriptor.New(descriptor.StreamVariable, "v")
	typ := a.ResolveExpression(&scalar.VariableReference{Variable: v}, true)
	assert.True(t, typesys.IsPending(typ))
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeUnresolvedVariable, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveExpression_VariableReferenceUnboundAllowedWhenConfigured(t *testing.T) {
	a := newAnalyzer()
	a.AllowUnresolved(true)
	v := descriptor.New(descriptor.StreamVariable, "v")
	a.ResolveExpression(&scalar.VariableReference{Variable: v}, true)
	assert.False(t, a.Diagnostics.HasDiagnostics())
}

func TestResolveExpression_ExternallyDeclaredVariableOfNarrowTypeIsDiagnosed(t *testing.T) {
	a := newAnalyzer()
	v := descriptor.New(descriptor.StreamVariable, "v")
	decl := &variable.Declaration{Name: "v", Type: typesys.Int1}
	require.True(t, a.Variables.Bind(v, analyzer.ExternalResolution{Declaration: decl}, false))

	typ := a.ResolveExpression(&scalar.VariableReference{Variable: v}, true)

	assert.True(t, typesys.Int1.Equal(typ))
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeUnsupportedType, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveExpression_ExternallyDeclaredVariableOfUpperboundTypeRaisesNoDiagnostic(t *testing.T) {
	a := newAnalyzer()
	v := descriptor.New(descriptor.StreamVariable, "v")
	decl := &variable.Declaration{Name: "v", Type: typesys.Int4}
	require.True(t, a.Variables.Bind(v, analyzer.ExternalResolution{Declaration: decl}, false))

	typ := a.ResolveExpression(&scalar.VariableReference{Variable: v}, true)

	assert.True(t, typesys.Int4.Equal(typ))
	assert.False(t, a.Diagnostics.HasDiagnostics())
}

func TestAnalyzer_CheckDeclaredTypeMatchesUpperboundCompatibility(t *testing.T) {
	a := newAnalyzer()
	assert.Equal(t, ternary.No, a.CheckDeclaredType(typesys.Int1))
	assert.Equal(t, ternary.Yes, a.CheckDeclaredType(typesys.Int4))
	assert.Equal(t, ternary.Unknown, a.CheckDeclaredType(nil))
}

func TestResolveExpression_BinaryAddPromotesNumericOperands(t *testing.T) {
	a := newAnalyzer()
	expr := &scalar.Binary{
		Operator: scalar.Add,
		Left:     &scalar.Immediate{Value: value.Int4(1), Type: typesys.Int4},
		Right:    &scalar.Immediate{Value: value.Int8(2), Type: typesys.Int8},
	}
	typ := a.ResolveExpression(expr, true)
	assert.True(t, typesys.Int8.Equal(typ), "int4 + int8 promotes to the wider int8")
}

func TestResolveExpression_BinaryConditionalAndRequiresBooleanOperands(t *testing.T) {
	a := newAnalyzer()
	expr := &scalar.Binary{
		Operator: scalar.ConditionalAnd,
		Left:     &scalar.Immediate{Value: value.Int4(1), Type: typesys.Int4},
		Right:    &scalar.Immediate{Value: value.Boolean(true), Type: typesys.Boolean},
	}
	typ := a.ResolveExpression(expr, true)
	assert.True(t, typesys.Boolean.Equal(typ))
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeInconsistentType, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveExpression_CompareAlwaysResolvesToBoolean(t *testing.T) {
	a := newAnalyzer()
	expr := &scalar.Compare{
		Operator: scalar.Equal,
		Left:     &scalar.Immediate{Value: value.Int4(1), Type: typesys.Int4},
		Right:    &scalar.Immediate{Value: value.Int4(2), Type: typesys.Int4},
	}
	typ := a.ResolveExpression(expr, true)
	assert.True(t, typesys.Boolean.Equal(typ))
	assert.False(t, a.Diagnostics.HasDiagnostics())
}

func TestResolveExpression_CompareMismatchedKindsIsDiagnosedButStillBoolean(t *testing.T) {
	a := newAnalyzer()
	expr := &scalar.Compare{
		Operator: scalar.Equal,
		Left:     &scalar.Immediate{Value: value.Int4(1), Type: typesys.Int4},
		Right:    &scalar.Immediate{Value: value.Boolean(true), Type: typesys.Boolean},
	}
	typ := a.ResolveExpression(expr, true)
	assert.True(t, typesys.Boolean.Equal(typ))
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeInconsistentType, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveExpression_ConditionalFoldsBranchesToTheirCommonType(t *testing.T) {
	a := newAnalyzer()
	v := descriptor.New(descriptor.StreamVariable, "v")
	a.Variables.Bind(v, analyzer.UnknownType{Type: typesys.Boolean}, false)
	expr := &scalar.Conditional{
		Alternatives: []scalar.Alternative{
			{Condition: &scalar.VariableReference{Variable: v}, Body: &scalar.Immediate{Value: value.Int4(1), Type: typesys.Int4}},
		},
		Default: &scalar.Immediate{Value: value.Int8(2), Type: typesys.Int8},
	}
	typ := a.ResolveExpression(expr, true)
	assert.True(t, typesys.Int8.Equal(typ))
}

func TestResolveExpression_LetBindsDeclaredVariablesForLaterReference(t *testing.T) {
	a := newAnalyzer()
	x := descriptor.New(descriptor.LocalVariable, "x")
	init := &scalar.Immediate{Value: value.Int4(7), Type: typesys.Int4}
	expr := &scalar.Let{
		Declarators: []scalar.Declarator{{Variable: x, Initializer: init}},
		Body:        &scalar.VariableReference{Variable: x},
	}
	typ := a.ResolveExpression(expr, true)
	assert.True(t, typesys.Int4.Equal(typ))
}

func TestResolveExpression_FunctionCallChecksArityAndArgumentTypes(t *testing.T) {
	a := newAnalyzer()
	decl := &function.Declaration{Name: "f", Parameters: []typesys.Type{typesys.Int4}, Returns: typesys.Boolean}
	h := binding.NewHandle(binding.Function, decl)

	ok := &scalar.FunctionCall{Function: h, Arguments: []scalar.Expression{&scalar.Immediate{Value: value.Int4(1), Type: typesys.Int4}}}
	typ := a.ResolveExpression(ok, true)
	assert.True(t, typesys.Boolean.Equal(typ))
	assert.False(t, a.Diagnostics.HasDiagnostics())

	a2 := newAnalyzer()
	badArity := &scalar.FunctionCall{Function: h, Arguments: nil}
	a2.ResolveExpression(badArity, true)
	require.True(t, a2.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeInconsistentElements, a2.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveExpression_CastUsesDeclaredTargetTypeRegardlessOfValidity(t *testing.T) {
	a := newAnalyzer()
	expr := &scalar.Cast{Operand: &scalar.Immediate{Value: nil, Type: typesys.Blob}, Type: typesys.Character(false, nil)}
	typ := a.ResolveExpression(expr, true)
	assert.True(t, typesys.Character(false, nil).Equal(typ))
	require.True(t, a.Diagnostics.HasDiagnostics(), "blob is explicitly excluded from casting to character")
}
