package scalar

import "github.com/project-tsurugi/yugawara/binding"

// FunctionCall invokes a scalar function declaration (extracted from
// Function, a binding.Handle of kind binding.Function) with Arguments.
type FunctionCall struct {
	Function  binding.Handle
	Arguments []Expression
}

func (*FunctionCall) ExprKind() Kind { return KindFunctionCall }

// AggregateFunctionCall invokes an aggregate function declaration
// (binding.Handle of kind binding.AggregateFunction). It exists as a
// distinct scalar expression kind, used inside aggregate relational
// operators' destination mappings.
type AggregateFunctionCall struct {
	Function  binding.Handle
	Arguments []Expression
}

func (*AggregateFunctionCall) ExprKind() Kind { return KindAggregateFunctionCall }
