package storage_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-tsurugi/yugawara/storage"
	"github.com/project-tsurugi/yugawara/typesys"
)

func TestNewTable_AllocatesAStableID(t *testing.T) {
	id := &storage.Column{Name: "id", Type: typesys.Int4}
	table := storage.NewTable("t", []*storage.Column{id})
	assert.NotEqual(t, uuid.Nil, table.ID)
	assert.Equal(t, "t", table.Name)
}

func TestNewTable_EachCallGetsADistinctID(t *testing.T) {
	a := storage.NewTable("a", nil)
	b := storage.NewTable("b", nil)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTable_BareLiteralLeavesIDZero(t *testing.T) {
	table := &storage.Table{Name: "t"}
	assert.Equal(t, uuid.Nil, table.ID)
}

func TestTable_FindColumn(t *testing.T) {
	id := &storage.Column{Name: "id", Type: typesys.Int4}
	name := &storage.Column{Name: "name", Type: typesys.Character(true, nil)}
	table := storage.NewTable("t", []*storage.Column{id, name})

	found := table.FindColumn("name")
	require.NotNil(t, found)
	assert.Same(t, name, found)

	assert.Nil(t, table.FindColumn("missing"))
}

func TestNewIndex_AllocatesAStableID(t *testing.T) {
	col := &storage.Column{Name: "id", Type: typesys.Int4}
	table := storage.NewTable("t", []*storage.Column{col})
	idx := storage.NewIndex("pk", table, []storage.IndexKey{{Column: col}}, nil)
	assert.NotEqual(t, uuid.Nil, idx.ID)
	assert.Same(t, table, idx.Table)
}

func TestNewSequence_AllocatesAStableID(t *testing.T) {
	seq := storage.NewSequence("seq", typesys.Int8)
	assert.NotEqual(t, uuid.Nil, seq.ID)
	assert.True(t, typesys.Int8.Equal(seq.Type))
}
