package intermediate

import (
	"github.com/project-tsurugi/yugawara/relation"
	"github.com/project-tsurugi/yugawara/storage"
)

// Scan reads every row of Source (optionally bounded by Lower/Upper)
// and binds Columns.
type Scan struct {
	Source  *storage.Table
	Columns []relation.ColumnMapping
	Lower   *relation.Endpoint // nil means unbounded
	Upper   *relation.Endpoint
}

func (*Scan) Kind() Kind         { return KindScan }
func (*Scan) Inputs() []Operator { return nil }
