package analyzer

import "gopkg.in/src-d/go-errors.v1"

// These describe structural violations of the plan itself rather than
// user-facing typing mistakes. No function in this package returns
// them: the Resolve* entry points report a structural failure by
// returning false.
var (
	ErrMissingInput  = errors.NewKind("relational operator is missing a required input port")
	ErrMissingSource = errors.NewKind("take/offer operator's exchange descriptor does not resolve to an exchange")
	ErrCyclicGraph   = errors.NewKind("relational graph contains a cycle")
	ErrKindMismatch  = errors.NewKind("descriptor extraction kind mismatch: expected %s, got %s")
)
