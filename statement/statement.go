// Package statement models the top-level DDL/DML statement shapes the
// analyzer resolves after a relational plan or step plan underneath
// them has already been built.
package statement

// Kind enumerates the statement shapes.
type Kind int

const (
	KindExecute Kind = iota
	KindWrite
	KindCreateTable
	KindCreateIndex
	KindDropTable
	KindDropIndex
	KindGrantTable
	KindRevokeTable
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindExecute:
		return "execute"
	case KindWrite:
		return "write"
	case KindCreateTable:
		return "create_table"
	case KindCreateIndex:
		return "create_index"
	case KindDropTable:
		return "drop_table"
	case KindDropIndex:
		return "drop_index"
	case KindGrantTable:
		return "grant_table"
	case KindRevokeTable:
		return "revoke_table"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Statement is the top-level unit the analyzer resolves.
type Statement interface {
	StatementKind() Kind
}
