// Package scalar models the scalar expression algebra the analyzer
// type-checks: immediates, variable references, unary/binary operators,
// comparisons, pattern matches, conditionals, coalesce, let-bindings,
// function calls, and casts. Spec §1 treats this AST as "assumed given
// by an upstream layer" (the parser/binder); this package is that
// upstream layer's minimal concrete shape.
package scalar

import (
	"github.com/project-tsurugi/yugawara/descriptor"
)

// Kind enumerates the closed set of scalar expression shapes.
type Kind int

const (
	KindImmediate Kind = iota
	KindVariableReference
	KindUnary
	KindBinary
	KindCompare
	KindMatch
	KindConditional
	KindCoalesce
	KindLet
	KindFunctionCall
	KindAggregateFunctionCall
	KindCast
)

// Expression is any scalar expression node. Every concrete node type is
// used behind a pointer, so Go's native interface-value identity already
// gives the "address identity of the AST node" memoization key that
// spec §9 calls for — no separate stamped id is needed.
type Expression interface {
	ExprKind() Kind
}
