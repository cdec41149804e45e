package details

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/typesys"
	"github.com/project-tsurugi/yugawara/value"
)

func TestRangeHintEntry_EmptyInitially(t *testing.T) {
	e := &RangeHintEntry{}
	assert.True(t, e.Empty())
}

func TestRangeHintEntry_IntersectLowerImmediate_TightensToGreater(t *testing.T) {
	repo := typesys.NewRepository()
	e := &RangeHintEntry{}
	e.IntersectLowerImmediate(value.Int4(1), typesys.Int4, true, repo)
	assert.False(t, e.Empty())
	assert.Equal(t, Inclusive, e.LowerType())

	e.IntersectLowerImmediate(value.Int4(5), typesys.Int4, true, repo)
	assert.Equal(t, value.Int4(5), e.LowerValue().Immediate)

	e.IntersectLowerImmediate(value.Int4(2), typesys.Int4, true, repo)
	assert.Equal(t, value.Int4(5), e.LowerValue().Immediate, "a looser bound must not widen an already-tight one")
}

func TestRangeHintEntry_IntersectLowerImmediate_EqualBoundPrefersExclusive(t *testing.T) {
	repo := typesys.NewRepository()
	e := &RangeHintEntry{}
	e.IntersectLowerImmediate(value.Int4(3), typesys.Int4, true, repo)
	e.IntersectLowerImmediate(value.Int4(3), typesys.Int4, false, repo)
	assert.Equal(t, Exclusive, e.LowerType(), "x > 3 AND x >= 3 narrows to x > 3")
}

func TestRangeHintEntry_IntersectUpperImmediate_TightensToLesser(t *testing.T) {
	repo := typesys.NewRepository()
	e := &RangeHintEntry{}
	e.IntersectUpperImmediate(value.Int4(10), typesys.Int4, true, repo)
	e.IntersectUpperImmediate(value.Int4(4), typesys.Int4, true, repo)
	assert.Equal(t, value.Int4(4), e.UpperValue().Immediate)
}

func TestRangeHintEntry_UnionLowerImmediate_WidensToLesser(t *testing.T) {
	repo := typesys.NewRepository()
	e := &RangeHintEntry{}
	e.IntersectLowerImmediate(value.Int4(5), typesys.Int4, true, repo)
	e.UnionLowerImmediate(value.Int4(2), typesys.Int4, true, repo)
	assert.Equal(t, value.Int4(2), e.LowerValue().Immediate, "x >= 5 OR x >= 2 widens to x >= 2")
}

func TestRangeHintEntry_UnionLowerImmediate_InfinityStaysInfinite(t *testing.T) {
	repo := typesys.NewRepository()
	e := &RangeHintEntry{}
	e.UnionLowerImmediate(value.Int4(2), typesys.Int4, true, repo)
	assert.Equal(t, Infinity, e.LowerType(), "one unbounded side OR'd with anything is still unbounded")
}

func TestRangeHintEntry_VariableBounds_IntersectAndUnion(t *testing.T) {
	x := descriptor.New(descriptor.StreamVariable, "x")
	y := descriptor.New(descriptor.StreamVariable, "y")

	e := &RangeHintEntry{}
	e.IntersectLowerVariable(x, true)
	assert.Equal(t, Inclusive, e.LowerType())
	assert.True(t, e.LowerValue().HasVariable)
	assert.Equal(t, x, e.LowerValue().Variable)

	e.IntersectLowerVariable(x, false)
	assert.Equal(t, Exclusive, e.LowerType(), "the same variable bound with a stricter inclusiveness narrows")

	e.IntersectLowerVariable(y, true)
	assert.Equal(t, Exclusive, e.LowerType(), "a different variable cannot be compared, so the bound is unaffected")
}

func TestRangeHintEntry_UnionVariable_DifferentVariableClears(t *testing.T) {
	x := descriptor.New(descriptor.StreamVariable, "x")
	y := descriptor.New(descriptor.StreamVariable, "y")

	e := &RangeHintEntry{}
	e.IntersectLowerVariable(x, true)
	e.UnionLowerVariable(y, true)
	assert.Equal(t, Infinity, e.LowerType(), "OR across unrelated bound variables cannot stay constrained")
}

func TestRangeHintMap_GetCreatesEmptyEntryOnFirstAccess(t *testing.T) {
	m := NewRangeHintMap()
	k := descriptor.New(descriptor.StreamVariable, "k")
	assert.False(t, m.Contains(k))
	e := m.Get(k)
	assert.True(t, e.Empty())
	assert.False(t, m.Contains(k), "an empty entry does not count as contained")
}

func TestRangeHintMap_IntersectMerge_CombinesBothMapsBounds(t *testing.T) {
	repo := typesys.NewRepository()
	k := descriptor.New(descriptor.StreamVariable, "k")

	a := NewRangeHintMap()
	a.Get(k).IntersectLowerImmediate(value.Int4(1), typesys.Int4, true, repo)

	b := NewRangeHintMap()
	b.Get(k).IntersectUpperImmediate(value.Int4(9), typesys.Int4, true, repo)

	a.IntersectMerge(b, repo)

	var seen *RangeHintEntry
	a.Consume(func(key descriptor.Variable, e *RangeHintEntry) {
		if key == k {
			seen = e
		}
	})
	assert.NotNil(t, seen)
	assert.Equal(t, Inclusive, seen.LowerType())
	assert.Equal(t, Inclusive, seen.UpperType())
}

func TestRangeHintMap_UnionMerge_DropsColumnsAbsentFromOther(t *testing.T) {
	repo := typesys.NewRepository()
	k := descriptor.New(descriptor.StreamVariable, "k")
	other := descriptor.New(descriptor.StreamVariable, "other")

	m := NewRangeHintMap()
	m.Get(k).IntersectLowerImmediate(value.Int4(1), typesys.Int4, true, repo)
	m.Get(other).IntersectLowerImmediate(value.Int4(1), typesys.Int4, true, repo)

	rhs := NewRangeHintMap()
	rhs.Get(k).IntersectLowerImmediate(value.Int4(1), typesys.Int4, true, repo)

	m.UnionMerge(rhs, repo)

	assert.True(t, m.Contains(k))
	assert.False(t, m.Contains(other), "a column missing from the OR'd side is no longer guaranteed bounded")
}

func TestRangeHintMap_ConsumeEmptiesTheMap(t *testing.T) {
	repo := typesys.NewRepository()
	m := NewRangeHintMap()
	k := descriptor.New(descriptor.StreamVariable, "k")
	m.Get(k).IntersectLowerImmediate(value.Int4(1), typesys.Int4, true, repo)

	count := 0
	m.Consume(func(descriptor.Variable, *RangeHintEntry) { count++ })
	assert.Equal(t, 1, count)

	count = 0
	m.Consume(func(descriptor.Variable, *RangeHintEntry) { count++ })
	assert.Equal(t, 0, count)
}

func TestRangeHintValue_ImmediateAndVariableExpression(t *testing.T) {
	iv := immediateValue(value.Int4(3), typesys.Int4)
	expr := iv.ImmediateExpression()
	assert.NotNil(t, expr)
	assert.Equal(t, value.Int4(3), expr.Value)
	assert.Nil(t, iv.VariableExpression())

	v := descriptor.New(descriptor.StreamVariable, "v")
	vv := variableValue(v)
	assert.Nil(t, vv.ImmediateExpression())
	ref := vv.VariableExpression()
	assert.NotNil(t, ref)
	assert.Equal(t, v, ref.Variable)
}
