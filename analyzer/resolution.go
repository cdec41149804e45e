package analyzer

import (
	"github.com/project-tsurugi/yugawara/function"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/storage"
	"github.com/project-tsurugi/yugawara/typesys"
	"github.com/project-tsurugi/yugawara/variable"
)

// ResolutionKind tags the variant of a variable's binding.
type ResolutionKind int

const (
	ResolutionUnresolved ResolutionKind = iota
	ResolutionUnknown
	ResolutionScalarExpression
	ResolutionTableColumn
	ResolutionExternal
	ResolutionFunctionCall
	ResolutionAggregation
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolutionUnresolved:
		return "unresolved"
	case ResolutionUnknown:
		return "unknown"
	case ResolutionScalarExpression:
		return "scalar_expression"
	case ResolutionTableColumn:
		return "table_column"
	case ResolutionExternal:
		return "external"
	case ResolutionFunctionCall:
		return "function_call"
	case ResolutionAggregation:
		return "aggregation"
	default:
		return "unknown"
	}
}

// Resolution is what a variable descriptor is bound to in the variable
// table.
type Resolution interface {
	ResolutionKind() ResolutionKind
}

// Unresolved marks a variable with no known binding at all.
type Unresolved struct{}

func (Unresolved) ResolutionKind() ResolutionKind { return ResolutionUnresolved }

// UnknownType pins a variable to a type without tying it to any
// expression or declaration (used when allow_unresolved defers a
// lookup that would otherwise fail).
type UnknownType struct {
	Type typesys.Type
}

func (UnknownType) ResolutionKind() ResolutionKind { return ResolutionUnknown }

// ScalarExpressionResolution binds a variable to the type of Expression,
// looked up from the expression table at inspection time.
type ScalarExpressionResolution struct {
	Expression scalar.Expression
}

func (ScalarExpressionResolution) ResolutionKind() ResolutionKind { return ResolutionScalarExpression }

// TableColumnResolution binds a variable to a catalog table column.
type TableColumnResolution struct {
	Column *storage.Column
}

func (TableColumnResolution) ResolutionKind() ResolutionKind { return ResolutionTableColumn }

// ExternalResolution binds a variable to an external variable
// declaration (host parameter, session variable).
type ExternalResolution struct {
	Declaration *variable.Declaration
}

func (ExternalResolution) ResolutionKind() ResolutionKind { return ResolutionExternal }

// FunctionCallResolution binds a variable to a scalar function
// declaration.
type FunctionCallResolution struct {
	Declaration *function.Declaration
}

func (FunctionCallResolution) ResolutionKind() ResolutionKind { return ResolutionFunctionCall }

// AggregationResolution binds a variable to an aggregate function
// declaration.
type AggregationResolution struct {
	Declaration *function.AggregateDeclaration
}

func (AggregationResolution) ResolutionKind() ResolutionKind { return ResolutionAggregation }
