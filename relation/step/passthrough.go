package step

import (
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/relation"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/storage"
)

// Scan, Find, Values, Project, Filter, Identify, Buffer, Emit and Write
// mirror their relation/intermediate counterparts exactly: collect_exchange_steps
// leaves them untouched because they neither span nor require an
// exchange, so they are simply re-expressed over step.Operator inputs
// to live inside a plan.Process's operator list.

type Scan struct {
	Source  *storage.Table
	Columns []relation.ColumnMapping
	Lower   *relation.Endpoint
	Upper   *relation.Endpoint
}

func (*Scan) Kind() Kind         { return KindScan }
func (*Scan) Inputs() []Operator { return nil }

type Find struct {
	Source  *storage.Table
	Columns []relation.ColumnMapping
	Keys    []relation.KeyPiece
}

func (*Find) Kind() Kind         { return KindFind }
func (*Find) Inputs() []Operator { return nil }

type Values struct {
	Columns []descriptor.Variable
	Rows    [][]scalar.Expression
}

func (*Values) Kind() Kind         { return KindValues }
func (*Values) Inputs() []Operator { return nil }

type ProjectColumn struct {
	Destination descriptor.Variable
	Value       scalar.Expression
}

type Project struct {
	Input   Operator
	Columns []ProjectColumn
}

func (*Project) Kind() Kind           { return KindProject }
func (p *Project) Inputs() []Operator { return []Operator{p.Input} }

type Filter struct {
	Input     Operator
	Condition scalar.Expression
}

func (*Filter) Kind() Kind           { return KindFilter }
func (f *Filter) Inputs() []Operator { return []Operator{f.Input} }

type Identify struct {
	Input       Operator
	Destination descriptor.Variable
}

func (*Identify) Kind() Kind           { return KindIdentify }
func (i *Identify) Inputs() []Operator { return []Operator{i.Input} }

type Buffer struct {
	Input Operator
	Size  int
}

func (*Buffer) Kind() Kind           { return KindBuffer }
func (b *Buffer) Inputs() []Operator { return []Operator{b.Input} }

type Emit struct {
	Input   Operator
	Columns []descriptor.Variable
}

func (*Emit) Kind() Kind           { return KindEmit }
func (e *Emit) Inputs() []Operator { return []Operator{e.Input} }

// WriteKind mirrors relation/intermediate.WriteKind for the physical form.
type WriteKind int

const (
	WriteInsert WriteKind = iota
	WriteUpdate
	WriteDelete
)

type Write struct {
	Operator    WriteKind
	Input       Operator
	Destination *storage.Table
	Columns     []relation.WriteMapping
}

func (*Write) Kind() Kind           { return KindWrite }
func (w *Write) Inputs() []Operator { return []Operator{w.Input} }
