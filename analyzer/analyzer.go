// Package analyzer is the bottom-up type-inference and validation
// driver: given scalar expressions, relational operators, step
// operators, plan graphs and statements built by an upstream layer, it
// populates the expression and variable tables with resolutions and,
// when asked to validate, accumulates diagnostics for every rule
// violation it finds without aborting the pass.
package analyzer

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/diagnostic"
	"github.com/project-tsurugi/yugawara/ternary"
	"github.com/project-tsurugi/yugawara/typesys"
	"github.com/sirupsen/logrus"
)

// Options configures an Analyzer.
type Options struct {
	// Repository interns resolved types so equal types share storage.
	Repository *typesys.Repository
	// AllowUnresolved, when true, makes a missing binding resolve
	// silently to unresolved/pending rather than raising a diagnostic.
	AllowUnresolved bool
	// Logger is kept for internal tracing; no code in this module
	// writes to it, and diagnostics are never routed through it (those
	// are user-visible and belong in Diagnostics).
	Logger *logrus.Logger
}

// Analyzer resolves expressions, relational operators, step operators,
// plan graphs and statements, in any order dependencies allow, into
// the Expressions/Variables tables, threading instruction through
// Options. An Analyzer is not safe for concurrent use by multiple
// goroutines.
type Analyzer struct {
	opts        Options
	Expressions *ExpressionTable
	Variables   *VariableTable
	Diagnostics *diagnostic.Accumulator
}

// New returns an Analyzer configured by opts. A nil Repository or
// Logger is replaced with a fresh default.
func New(opts Options) *Analyzer {
	if opts.Repository == nil {
		opts.Repository = typesys.NewRepository()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetLevel(logrus.WarnLevel)
	}
	return &Analyzer{
		opts:        opts,
		Expressions: NewExpressionTable(),
		Variables:   NewVariableTable(),
		Diagnostics: &diagnostic.Accumulator{},
	}
}

// AllowUnresolved toggles whether a missing binding is a silent defer
// or a diagnosable mistake.
func (a *Analyzer) AllowUnresolved(allow bool) { a.opts.AllowUnresolved = allow }

func (a *Analyzer) repository() *typesys.Repository { return a.opts.Repository }

func (a *Analyzer) diagnose(code diagnostic.Code, location, message string) {
	a.Diagnostics.Add(code, location, message)
}

// Inspect looks up r's type: direct for every resolution kind except
// ScalarExpressionResolution, which defers to the expression table.
func (a *Analyzer) Inspect(r Resolution) (typesys.Type, bool) {
	switch res := r.(type) {
	case Unresolved:
		return nil, false
	case UnknownType:
		return res.Type, true
	case ScalarExpressionResolution:
		return a.Expressions.Lookup(res.Expression)
	case TableColumnResolution:
		return res.Column.Type, true
	case ExternalResolution:
		if res.Declaration.Type == nil {
			return nil, false
		}
		return res.Declaration.Type, true
	case FunctionCallResolution:
		return res.Declaration.Returns, true
	case AggregationResolution:
		return res.Declaration.Returns, true
	default:
		return nil, false
	}
}

// InspectVariable looks up v's resolution in the variable table and, if
// found, its type.
func (a *Analyzer) InspectVariable(v descriptor.Variable) (typesys.Type, bool) {
	r, ok := a.Variables.Lookup(v)
	if !ok {
		return nil, false
	}
	return a.Inspect(r)
}

// bindVariable looks up v; if unbound it records resolution and, on a
// genuine rebind conflict, reports the diagnostic the caller names.
func (a *Analyzer) bindVariable(v descriptor.Variable, resolution Resolution) {
	if !a.Variables.Bind(v, resolution, false) {
		a.diagnose(diagnostic.CodeInconsistentType, "", "variable already bound to a different resolution")
	}
}

// CheckDeclaredType reports whether t is fit to serve as a declared
// (not inferred) variable or parameter type: one with no
// precision/scale/length refinement of its own, so it doesn't silently
// narrow whatever gets bound to it. It is the same rule a function
// parameter type must satisfy, exposed so callers can apply it to any
// externally declared type: host parameters, session variables, frame
// variables bound from outside the expression being analyzed.
func (a *Analyzer) CheckDeclaredType(t typesys.Type) ternary.Value {
	return typesys.IsMostUpperboundCompatibleType(t)
}
