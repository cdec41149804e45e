package statement

import "github.com/project-tsurugi/yugawara/storage"

// CreateIndex declares a new secondary index, subject to the same
// key-type constraints as a table's primary key.
type CreateIndex struct {
	Index  *storage.Index
	Access PrimaryKeyAccess
}

func (*CreateIndex) StatementKind() Kind { return KindCreateIndex }
