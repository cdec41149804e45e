package statement

import "github.com/project-tsurugi/yugawara/storage"

// DropTable removes a table declaration. It performs no type checking
// of its own.
type DropTable struct {
	Table *storage.Table
}

func (*DropTable) StatementKind() Kind { return KindDropTable }

// DropIndex removes an index declaration. No type checking.
type DropIndex struct {
	Index *storage.Index
}

func (*DropIndex) StatementKind() Kind { return KindDropIndex }

// GrantTable grants Privileges on Table to Grantee. No type checking.
type GrantTable struct {
	Table      *storage.Table
	Grantee    string
	Privileges []string
}

func (*GrantTable) StatementKind() Kind { return KindGrantTable }

// RevokeTable revokes Privileges on Table from Grantee. No type
// checking.
type RevokeTable struct {
	Table      *storage.Table
	Grantee    string
	Privileges []string
}

func (*RevokeTable) StatementKind() Kind { return KindRevokeTable }

// Empty performs no operation; it exists so a statement slot can be
// syntactically present without doing anything (e.g. an elided branch
// of conditional DDL).
type Empty struct{}

func (*Empty) StatementKind() Kind { return KindEmpty }
