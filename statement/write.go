package statement

import (
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/storage"
)

// WriteKind distinguishes the DML operation a standalone Write
// statement performs (as opposed to relation/intermediate's Write
// operator, which appears inside a plan graph).
type WriteKind int

const (
	WriteInsert WriteKind = iota
	WriteUpdate
	WriteDelete
)

// Write inserts literal Tuples into Destination's Columns, each tuple
// having exactly len(Columns) elements.
type Write struct {
	Operator    WriteKind
	Destination *storage.Table
	Columns     []*storage.Column
	Tuples      [][]scalar.Expression
}

func (*Write) StatementKind() Kind { return KindWrite }
