package ternary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/project-tsurugi/yugawara/ternary"
)

func TestOf(t *testing.T) {
	assert.Equal(t, ternary.Yes, ternary.Of(true))
	assert.Equal(t, ternary.No, ternary.Of(false))
}

func TestAnd(t *testing.T) {
	cases := []struct {
		a, b, want ternary.Value
	}{
		{ternary.Yes, ternary.Yes, ternary.Yes},
		{ternary.Yes, ternary.No, ternary.No},
		{ternary.No, ternary.Unknown, ternary.No},
		{ternary.Yes, ternary.Unknown, ternary.Unknown},
		{ternary.Unknown, ternary.Unknown, ternary.Unknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ternary.And(c.a, c.b))
		assert.Equal(t, c.want, ternary.And(c.b, c.a), "conjunction is commutative")
	}
}

func TestOr(t *testing.T) {
	cases := []struct {
		a, b, want ternary.Value
	}{
		{ternary.Yes, ternary.No, ternary.Yes},
		{ternary.No, ternary.No, ternary.No},
		{ternary.No, ternary.Unknown, ternary.Unknown},
		{ternary.Yes, ternary.Unknown, ternary.Yes},
		{ternary.Unknown, ternary.Unknown, ternary.Unknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ternary.Or(c.a, c.b))
		assert.Equal(t, c.want, ternary.Or(c.b, c.a), "disjunction is commutative")
	}
}

func TestNot(t *testing.T) {
	assert.Equal(t, ternary.No, ternary.Not(ternary.Yes))
	assert.Equal(t, ternary.Yes, ternary.Not(ternary.No))
	assert.Equal(t, ternary.Unknown, ternary.Not(ternary.Unknown))
}

func TestIsYesIsNo(t *testing.T) {
	assert.True(t, ternary.Yes.IsYes())
	assert.False(t, ternary.No.IsYes())
	assert.False(t, ternary.Unknown.IsYes())

	assert.True(t, ternary.No.IsNo())
	assert.False(t, ternary.Yes.IsNo())
	assert.False(t, ternary.Unknown.IsNo())
}

func TestString(t *testing.T) {
	assert.Equal(t, "yes", ternary.Yes.String())
	assert.Equal(t, "no", ternary.No.String())
	assert.Equal(t, "unknown", ternary.Unknown.String())
}
