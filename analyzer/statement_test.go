package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/diagnostic"
	"github.com/project-tsurugi/yugawara/function"
	"github.com/project-tsurugi/yugawara/plan"
	"github.com/project-tsurugi/yugawara/relation/step"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/statement"
	"github.com/project-tsurugi/yugawara/storage"
	"github.com/project-tsurugi/yugawara/typesys"
	"github.com/project-tsurugi/yugawara/value"
)

func TestResolveStatement_ExecuteDelegatesToStepGraph(t *testing.T) {
	a := newAnalyzer()
	dest := descriptor.New(descriptor.StreamVariable, "dest")
	values := &step.Values{Columns: []descriptor.Variable{dest}, Rows: [][]scalar.Expression{
		{&scalar.Immediate{Value: value.Int4(1), Type: typesys.Int4}},
	}}
	proc := &plan.Process{Operators: []step.Operator{values}, Sinks: []step.Operator{values}}
	g := plan.NewGraph()
	g.AddNode(proc)

	ok := a.ResolveStatement(&statement.Execute{Graph: g}, true)
	require.True(t, ok)
	typ, found := a.InspectVariable(dest)
	require.True(t, found)
	assert.True(t, typesys.Int4.Equal(typ))
}

func TestResolveStatement_WriteMismatchedTupleWidthIsDiagnosed(t *testing.T) {
	a := newAnalyzer()
	col := &storage.Column{Name: "id", Type: typesys.Int4}
	w := &statement.Write{
		Operator:    statement.WriteInsert,
		Destination: storage.NewTable("t", []*storage.Column{col}),
		Columns:     []*storage.Column{col},
		Tuples:      [][]scalar.Expression{{}},
	}
	ok := a.ResolveStatement(w, true)
	require.True(t, ok)
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeInconsistentElements, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveStatement_WriteElementNotAssignmentConvertibleIsDiagnosed(t *testing.T) {
	a := newAnalyzer()
	col := &storage.Column{Name: "id", Type: typesys.Int4}
	w := &statement.Write{
		Operator:    statement.WriteInsert,
		Destination: storage.NewTable("t", []*storage.Column{col}),
		Columns:     []*storage.Column{col},
		Tuples:      [][]scalar.Expression{{&scalar.Immediate{Value: value.Boolean(true), Type: typesys.Boolean}}},
	}
	ok := a.ResolveStatement(w, true)
	require.True(t, ok)
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeUnsupportedType, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveStatement_WriteWellTypedTupleRaisesNoDiagnostics(t *testing.T) {
	a := newAnalyzer()
	col := &storage.Column{Name: "id", Type: typesys.Int4}
	w := &statement.Write{
		Operator:    statement.WriteInsert,
		Destination: storage.NewTable("t", []*storage.Column{col}),
		Columns:     []*storage.Column{col},
		Tuples:      [][]scalar.Expression{{&scalar.Immediate{Value: value.Int4(1), Type: typesys.Int4}}},
	}
	ok := a.ResolveStatement(w, true)
	require.True(t, ok)
	assert.False(t, a.Diagnostics.HasDiagnostics())
}

func TestResolveStatement_CreateTableImmediateDefaultMismatchIsDiagnosed(t *testing.T) {
	a := newAnalyzer()
	col := &storage.Column{Name: "id", Type: typesys.Int4}
	tbl := storage.NewTable("t", []*storage.Column{col})
	ct := &statement.CreateTable{
		Table: tbl,
		Columns: []statement.ColumnDefinition{
			{Column: col, Default: statement.ImmediateDefault{Value: value.Boolean(true)}},
		},
	}
	ok := a.ResolveStatement(ct, true)
	require.True(t, ok)
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeUnsupportedType, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveStatement_CreateTableSequenceDefaultRequiresIntegerColumn(t *testing.T) {
	a := newAnalyzer()
	col := &storage.Column{Name: "id", Type: typesys.Boolean}
	tbl := storage.NewTable("t", []*storage.Column{col})
	seq := storage.NewSequence("seq", typesys.Int8)
	ct := &statement.CreateTable{
		Table: tbl,
		Columns: []statement.ColumnDefinition{
			{Column: col, Default: statement.SequenceDefault{Sequence: seq}},
		},
	}
	ok := a.ResolveStatement(ct, true)
	require.True(t, ok)
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeUnsupportedType, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveStatement_CreateTableSequenceDefaultOnIntegerColumnIsClean(t *testing.T) {
	a := newAnalyzer()
	col := &storage.Column{Name: "id", Type: typesys.Int8}
	tbl := storage.NewTable("t", []*storage.Column{col})
	seq := storage.NewSequence("seq", typesys.Int8)
	ct := &statement.CreateTable{
		Table: tbl,
		Columns: []statement.ColumnDefinition{
			{Column: col, Default: statement.SequenceDefault{Sequence: seq}},
		},
	}
	ok := a.ResolveStatement(ct, true)
	require.True(t, ok)
	assert.False(t, a.Diagnostics.HasDiagnostics())
}

func TestResolveStatement_CreateTableFunctionDefaultRejectsNonZeroArity(t *testing.T) {
	a := newAnalyzer()
	col := &storage.Column{Name: "id", Type: typesys.Int4}
	tbl := storage.NewTable("t", []*storage.Column{col})
	decl := &function.Declaration{Name: "f", Parameters: []typesys.Type{typesys.Int4}, Returns: typesys.Int4}
	h := binding.NewHandle(binding.Function, decl)
	ct := &statement.CreateTable{
		Table: tbl,
		Columns: []statement.ColumnDefinition{
			{Column: col, Default: statement.FunctionDefault{Function: h}},
		},
	}
	ok := a.ResolveStatement(ct, true)
	require.True(t, ok)
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeInconsistentElements, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveStatement_CreateTableFunctionDefaultReturnMismatchIsDiagnosed(t *testing.T) {
	a := newAnalyzer()
	col := &storage.Column{Name: "id", Type: typesys.Boolean}
	tbl := storage.NewTable("t", []*storage.Column{col})
	decl := &function.Declaration{Name: "f", Parameters: nil, Returns: typesys.Int4}
	h := binding.NewHandle(binding.Function, decl)
	ct := &statement.CreateTable{
		Table: tbl,
		Columns: []statement.ColumnDefinition{
			{Column: col, Default: statement.FunctionDefault{Function: h}},
		},
	}
	ok := a.ResolveStatement(ct, true)
	require.True(t, ok)
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeUnsupportedType, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveStatement_CreateTablePrimaryKeyScanRequiresOrderComparable(t *testing.T) {
	a := newAnalyzer()
	col := &storage.Column{Name: "blob_col", Type: typesys.Blob}
	tbl := storage.NewTable("t", []*storage.Column{col})
	ct := &statement.CreateTable{
		Table:   tbl,
		Columns: []statement.ColumnDefinition{{Column: col}},
		PrimaryKey: &statement.PrimaryKey{
			Keys:   []storage.IndexKey{{Column: col}},
			Access: statement.PrimaryKeyScan,
		},
	}
	ok := a.ResolveStatement(ct, true)
	require.True(t, ok)
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeUnsupportedType, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveStatement_CreateTablePrimaryKeyFindRequiresEqualityComparable(t *testing.T) {
	a := newAnalyzer()
	col := &storage.Column{Name: "id", Type: typesys.Int4}
	tbl := storage.NewTable("t", []*storage.Column{col})
	ct := &statement.CreateTable{
		Table:   tbl,
		Columns: []statement.ColumnDefinition{{Column: col}},
		PrimaryKey: &statement.PrimaryKey{
			Keys:   []storage.IndexKey{{Column: col}},
			Access: statement.PrimaryKeyFind,
		},
	}
	ok := a.ResolveStatement(ct, true)
	require.True(t, ok)
	assert.False(t, a.Diagnostics.HasDiagnostics())
}

func TestResolveStatement_CreateIndexKeyAccessChecksApply(t *testing.T) {
	a := newAnalyzer()
	col := &storage.Column{Name: "blob_col", Type: typesys.Blob}
	tbl := storage.NewTable("t", []*storage.Column{col})
	idx := storage.NewIndex("ix", tbl, []storage.IndexKey{{Column: col}}, nil)
	ci := &statement.CreateIndex{Index: idx, Access: statement.PrimaryKeyScan}

	ok := a.ResolveStatement(ci, true)
	require.True(t, ok)
	require.True(t, a.Diagnostics.HasDiagnostics())
	assert.Equal(t, diagnostic.CodeUnsupportedType, a.Diagnostics.Diagnostics()[0].Code)
}

func TestResolveStatement_NoOpStatementsAlwaysSucceed(t *testing.T) {
	tbl := storage.NewTable("t", nil)
	idx := storage.NewIndex("ix", tbl, nil, nil)

	cases := []statement.Statement{
		&statement.DropTable{Table: tbl},
		&statement.DropIndex{Index: idx},
		&statement.GrantTable{Table: tbl, Grantee: "u", Privileges: []string{"select"}},
		&statement.RevokeTable{Table: tbl, Grantee: "u", Privileges: []string{"select"}},
		&statement.Empty{},
	}
	for _, s := range cases {
		a := newAnalyzer()
		ok := a.ResolveStatement(s, true)
		assert.True(t, ok)
		assert.False(t, a.Diagnostics.HasDiagnostics())
	}
}
