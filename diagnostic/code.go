package diagnostic

// Code is the closed set of diagnostic codes the analyzer can emit.
type Code int

const (
	CodeUnknown Code = iota
	CodeUnresolvedVariable
	CodeInconsistentType
	CodeInconsistentElements
	CodeAmbiguousType
	CodeUnsupportedType
)

func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeUnresolvedVariable:
		return "unresolved_variable"
	case CodeInconsistentType:
		return "inconsistent_type"
	case CodeInconsistentElements:
		return "inconsistent_elements"
	case CodeAmbiguousType:
		return "ambiguous_type"
	case CodeUnsupportedType:
		return "unsupported_type"
	default:
		return "unknown"
	}
}
