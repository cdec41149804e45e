// Package storage models the catalog declarations the spec treats as
// external collaborators (§6): tables, columns, indices, and sequences.
// It ships one reference, in-memory Provider implementation so the
// analyzer and rewriters can be exercised without a real catalog service.
package storage

import (
	"github.com/google/uuid"

	"github.com/project-tsurugi/yugawara/typesys"
)

// Column is a table column declaration: the binding::table_column_info
// of the original, referenced by table_column resolutions.
type Column struct {
	Name string
	Type typesys.Type
}

// Table is a table declaration referenced by scan/find/write operators.
// ID is a stable synthetic identity independent of the Table's address,
// allocated once by NewTable; a Table built as a bare struct literal
// (common in tests that only need pointer identity) leaves it zero.
type Table struct {
	ID      uuid.UUID
	Name    string
	Columns []*Column
}

// NewTable returns a Table declaration with a freshly allocated ID.
func NewTable(name string, columns []*Column) *Table {
	return &Table{ID: uuid.New(), Name: name, Columns: columns}
}

// FindColumn looks up a column by name, returning nil if absent.
func (t *Table) FindColumn(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IndexKeyDirection is the sort direction of an index key column.
type IndexKeyDirection int

const (
	Ascending IndexKeyDirection = iota
	Descending
)

// IndexKey pairs a key column with its sort direction.
type IndexKey struct {
	Column    *Column
	Direction IndexKeyDirection
}

// Index is a primary-key or secondary index declaration.
type Index struct {
	ID      uuid.UUID
	Name    string
	Table   *Table
	Keys    []IndexKey
	Values  []*Column
	Unique  bool
	Primary bool
}

// NewIndex returns an Index declaration with a freshly allocated ID.
func NewIndex(name string, table *Table, keys []IndexKey, values []*Column) *Index {
	return &Index{ID: uuid.New(), Name: name, Table: table, Keys: keys, Values: values}
}

// Sequence is a 32- or 64-bit integer generator usable as a column
// default value.
type Sequence struct {
	ID   uuid.UUID
	Name string
	Type typesys.Type // must be int4 or int8
}

// NewSequence returns a Sequence declaration with a freshly allocated ID.
func NewSequence(name string, t typesys.Type) *Sequence {
	return &Sequence{ID: uuid.New(), Name: name, Type: t}
}
