package intermediate

import (
	"github.com/project-tsurugi/yugawara/relation"
	"github.com/project-tsurugi/yugawara/storage"
)

// Find reads the rows of Source matching every equality Key.
type Find struct {
	Source  *storage.Table
	Columns []relation.ColumnMapping
	Keys    []relation.KeyPiece
}

func (*Find) Kind() Kind         { return KindFind }
func (*Find) Inputs() []Operator { return nil }
