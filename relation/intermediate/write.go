package intermediate

import (
	"github.com/project-tsurugi/yugawara/relation"
	"github.com/project-tsurugi/yugawara/storage"
)

// WriteKind distinguishes the DML operation a Write performs.
type WriteKind int

const (
	WriteInsert WriteKind = iota
	WriteUpdate
	WriteDelete
)

// Write applies Input's rows to Destination according to Columns'
// source-to-destination mapping.
type Write struct {
	Operator    WriteKind
	Input       Operator
	Destination *storage.Table
	Columns     []relation.WriteMapping
}

func (*Write) Kind() Kind           { return KindWrite }
func (w *Write) Inputs() []Operator { return []Operator{w.Input} }
