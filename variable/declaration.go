package variable

import "github.com/project-tsurugi/yugawara/typesys"

// Declaration describes an external variable (e.g. a host parameter or
// session variable) known to the catalog.
type Declaration struct {
	DefinitionID *uint64
	Name         string
	Type         typesys.Type // nil until resolved
	Criteria     Criteria
	Description  string
}

// IsResolved reports whether Type has been determined.
func (d *Declaration) IsResolved() bool { return d.Type != nil }
