package intermediate

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/scalar"
)

// Values is a literal row source: each entry of Rows must have the
// same width as Columns.
type Values struct {
	Columns []descriptor.Variable
	Rows    [][]scalar.Expression
}

func (*Values) Kind() Kind         { return KindValues }
func (*Values) Inputs() []Operator { return nil }
