package diagnostic

// Accumulator collects diagnostics across one analysis run so that a
// single pass can surface every independent problem it finds instead
// of aborting at the first one.
type Accumulator struct {
	entries []*Diagnostic
}

// Add appends a new diagnostic and returns it.
func (a *Accumulator) Add(code Code, location, message string) *Diagnostic {
	d := &Diagnostic{Code: code, Location: location, Message: message}
	a.entries = append(a.entries, d)
	return d
}

// HasDiagnostics reports whether any diagnostic has been recorded.
func (a *Accumulator) HasDiagnostics() bool { return len(a.entries) > 0 }

// Diagnostics returns every recorded diagnostic, in the order added.
func (a *Accumulator) Diagnostics() []*Diagnostic {
	return append([]*Diagnostic(nil), a.entries...)
}

// Clear discards every recorded diagnostic.
func (a *Accumulator) Clear() { a.entries = nil }
