package value_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/project-tsurugi/yugawara/typesys"
	"github.com/project-tsurugi/yugawara/value"
)

func TestCompare_CrossKindExactPromotesThroughDecimal(t *testing.T) {
	assert.Equal(t, value.Equal, value.Compare(value.Int4(3), value.Int8(3)))
	assert.Equal(t, value.Less, value.Compare(value.Int4(3), value.Decimal{D: decimal.NewFromFloat(3.5)}))
	assert.Equal(t, value.Greater, value.Compare(value.Int8(4), value.Decimal{D: decimal.NewFromFloat(3.5)}))
}

func TestCompare_ApproxHandlesNaNAndSameSignInfinityAsUndefined(t *testing.T) {
	assert.Equal(t, value.Undefined, value.Compare(value.Float8(math.NaN()), value.Float8(1)))
	assert.Equal(t, value.Undefined, value.Compare(value.Float8(math.Inf(1)), value.Float8(math.Inf(1))))
	assert.Equal(t, value.Less, value.Compare(value.Float8(math.Inf(-1)), value.Float8(math.Inf(1))))
}

func TestCompare_MismatchedKindsAreUndefined(t *testing.T) {
	assert.Equal(t, value.Undefined, value.Compare(value.Boolean(true), value.Character("x")))
	assert.Equal(t, value.Undefined, value.Compare(value.Character("x"), nil))
}

func TestCompare_StringsAndBytesLexicographic(t *testing.T) {
	assert.Equal(t, value.Less, value.Compare(value.Character("a"), value.Character("b")))
	assert.Equal(t, value.Greater, value.Compare(value.Octet([]byte{1, 2, 3}), value.Octet([]byte{1, 2})))
}

func TestResult_Invert(t *testing.T) {
	assert.Equal(t, value.Greater, value.Less.Invert())
	assert.Equal(t, value.Less, value.Greater.Invert())
	assert.Equal(t, value.Equal, value.Equal.Invert())
	assert.Equal(t, value.Undefined, value.Undefined.Invert())
}

func TestNaturalType(t *testing.T) {
	assert.Equal(t, value.NaturalType(nil), value.NaturalType(value.Null{}))
	assert.True(t, typesys.Int8.Equal(value.NaturalType(value.Int8(1))))
}
