package diagnostic

import "fmt"

// Diagnostic is one structured, user-visible typing problem the
// analyzer found. Location is the document region of the offending
// node in whatever form the upstream parser attached to it, or empty
// if none is available.
type Diagnostic struct {
	Code     Code
	Location string
	Message  string
}

// Error lets Diagnostic satisfy the error interface, so callers that
// prefer errors.As over walking an Accumulator's slice directly can.
func (d *Diagnostic) Error() string {
	if d.Location == "" {
		return fmt.Sprintf("%s: %s", d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s (at %s)", d.Code, d.Message, d.Location)
}
