package statement

import "github.com/project-tsurugi/yugawara/storage"

// PrimaryKeyAccess distinguishes the access pattern a table's primary
// key must support, which decides whether its key columns need only
// equality-comparability (find) or full order-comparability (scan).
type PrimaryKeyAccess int

const (
	PrimaryKeyFind PrimaryKeyAccess = iota
	PrimaryKeyScan
)

// ColumnDefinition is one column of a create_table, with its optional
// default-value clause.
type ColumnDefinition struct {
	Column  *storage.Column
	Default DefaultValue // nil if the column has no default
}

// PrimaryKey names the key columns of a table's primary index and the
// access pattern it must support.
type PrimaryKey struct {
	Keys   []storage.IndexKey
	Access PrimaryKeyAccess
}

// CreateTable declares a new table.
type CreateTable struct {
	Table      *storage.Table
	Columns    []ColumnDefinition
	PrimaryKey *PrimaryKey // nil if the table has no primary key
}

func (*CreateTable) StatementKind() Kind { return KindCreateTable }
