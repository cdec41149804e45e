package analyzer

import (
	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/diagnostic"
	"github.com/project-tsurugi/yugawara/function"
	"github.com/project-tsurugi/yugawara/statement"
	"github.com/project-tsurugi/yugawara/storage"
	"github.com/project-tsurugi/yugawara/typesys"
	"github.com/project-tsurugi/yugawara/value"
)

// ResolveStatement resolves a top-level statement. It returns false
// only on a structural violation in an embedded plan graph.
func (a *Analyzer) ResolveStatement(s statement.Statement, validate bool) bool {
	switch n := s.(type) {
	case *statement.Execute:
		return a.ResolveStepGraph(n.Graph, validate)
	case *statement.Write:
		a.resolveWriteStatement(n, validate)
	case *statement.CreateTable:
		a.resolveCreateTable(n, validate)
	case *statement.CreateIndex:
		a.resolveKeyAccess(n.Index.Keys, n.Access, validate)
	case *statement.DropTable, *statement.DropIndex,
		*statement.GrantTable, *statement.RevokeTable, *statement.Empty:
		// no-ops for typing.
	}
	return true
}

func (a *Analyzer) resolveWriteStatement(n *statement.Write, validate bool) {
	if !validate {
		return
	}
	for _, tuple := range n.Tuples {
		if len(tuple) != len(n.Columns) {
			a.diagnose(diagnostic.CodeInconsistentElements, "", "write tuple width does not match column count")
			continue
		}
		for i, elem := range tuple {
			t := a.ResolveExpression(elem, validate)
			if typesys.IsConversionStop(t) {
				continue
			}
			if !typesys.IsAssignmentConvertible(t, n.Columns[i].Type).IsYes() {
				a.diagnose(diagnostic.CodeUnsupportedType, "", "write tuple element is not assignment-convertible to its column type")
			}
		}
	}
}

func (a *Analyzer) resolveCreateTable(n *statement.CreateTable, validate bool) {
	if validate {
		for _, col := range n.Columns {
			a.resolveDefaultValue(col.Column, col.Default)
		}
	}
	if n.PrimaryKey != nil {
		a.resolveKeyAccess(n.PrimaryKey.Keys, n.PrimaryKey.Access, validate)
	}
}

func (a *Analyzer) resolveDefaultValue(col *storage.Column, def statement.DefaultValue) {
	if def == nil {
		return
	}
	switch d := def.(type) {
	case statement.ImmediateDefault:
		t := value.NaturalType(d.Value)
		if !typesys.IsConversionStop(t) && !typesys.IsAssignmentConvertible(t, col.Type).IsYes() {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "column default value is not assignment-convertible to its column type")
		}
	case statement.SequenceDefault:
		if col.Type != typesys.Int4 && col.Type != typesys.Int8 {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "sequence-default column must be a 32- or 64-bit integer")
		}
	case statement.FunctionDefault:
		decl := binding.Extract[*function.Declaration](d.Function)
		if len(decl.Parameters) != 0 {
			a.diagnose(diagnostic.CodeInconsistentElements, "", "function-default must take zero arguments")
		} else if !typesys.IsConversionStop(decl.Returns) && !typesys.IsAssignmentConvertible(decl.Returns, col.Type).IsYes() {
			a.diagnose(diagnostic.CodeUnsupportedType, "", "function-default return type is not assignment-convertible to its column type")
		}
	}
}

func (a *Analyzer) resolveKeyAccess(keys []storage.IndexKey, access statement.PrimaryKeyAccess, validate bool) {
	if !validate {
		return
	}
	for _, k := range keys {
		switch access {
		case statement.PrimaryKeyScan:
			if !typesys.IsOrderComparable(k.Column.Type) {
				a.diagnose(diagnostic.CodeUnsupportedType, "", "scan-accessed key column must be order-comparable")
			}
		case statement.PrimaryKeyFind:
			if !typesys.IsEqualityComparable(k.Column.Type) {
				a.diagnose(diagnostic.CodeUnsupportedType, "", "find-accessed key column must be equality-comparable")
			}
		}
	}
}
