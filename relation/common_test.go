package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/project-tsurugi/yugawara/relation"
)

func TestSortDirection_String(t *testing.T) {
	assert.Equal(t, "ascending", relation.Ascending.String())
	assert.Equal(t, "descending", relation.Descending.String())
}

func TestSetQuantifier_String(t *testing.T) {
	assert.Equal(t, "all", relation.All.String())
	assert.Equal(t, "distinct", relation.Distinct.String())
}

func TestJoinKind_String(t *testing.T) {
	assert.Equal(t, "inner", relation.InnerJoin.String())
	assert.Equal(t, "left_outer", relation.LeftOuterJoin.String())
	assert.Equal(t, "full_outer", relation.FullOuterJoin.String())
}
