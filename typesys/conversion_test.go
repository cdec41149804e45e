package typesys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-tsurugi/yugawara/typesys"
)

func TestUnifyingConversionUnary_WidensInt1ToInt4(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.Int4.Equal(typesys.UnifyingConversionUnary(typesys.Int1, repo)))
}

func TestUnifyingConversionUnary_NilIsAnError(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.IsError(typesys.UnifyingConversionUnary(nil, repo)))
}

func TestUnifyingConversionUnary_ConversionStopIsPending(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.IsPending(typesys.UnifyingConversionUnary(typesys.PendingExt, repo)))
}

func TestUnifyingConversionUnary_DatetimeIntervalAndLargeStringsPassThrough(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.DatetimeInterval.Equal(typesys.UnifyingConversionUnary(typesys.DatetimeInterval, repo)))
	assert.True(t, typesys.Clob.Equal(typesys.UnifyingConversionUnary(typesys.Clob, repo)))
	assert.True(t, typesys.Blob.Equal(typesys.UnifyingConversionUnary(typesys.Blob, repo)))
}

func TestUnifyingConversion_NilOperandIsAnError(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.IsError(typesys.UnifyingConversion(nil, typesys.Int4, repo)))
}

func TestUnifyingConversion_IncompatibleCategoriesIsAnError(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.IsError(typesys.UnifyingConversion(typesys.Boolean, typesys.Int4, repo)))
}

func TestUnifyingConversion_BooleanBothSidesBooleanOrUnknown(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.Boolean.Equal(typesys.UnifyingConversion(typesys.Boolean, typesys.Unknown, repo)))
}

func TestUnifyingConversion_CharacterWidensToTheLongerLength(t *testing.T) {
	repo := typesys.NewRepository()
	short, long := 3, 10
	result := typesys.UnifyingConversion(typesys.Character(false, &short), typesys.Character(true, &long), repo)
	_, length, ok := typesys.AsStringLike(result)
	require.True(t, ok)
	require.NotNil(t, length)
	assert.Equal(t, 10, *length)
}

func TestUnifyingConversion_TemporalDateAndTimeOfDayCombineToTimePoint(t *testing.T) {
	repo := typesys.NewRepository()
	result := typesys.UnifyingConversion(typesys.Date, typesys.TimeOfDay{WithTimeZone: true}, repo)
	tp, ok := result.(typesys.TimePoint)
	require.True(t, ok)
	assert.True(t, tp.WithTimeZone)
}

func TestUnifyingConversion_IntervalBothSidesIntervalOrUnknown(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.DatetimeInterval.Equal(typesys.UnifyingConversion(typesys.DatetimeInterval, typesys.Unknown, repo)))
}

func TestUnifyingConversion_IdentityHoldsForUniqueCategories(t *testing.T) {
	repo := typesys.NewRepository()
	d := typesys.Declared{ID: "x"}
	assert.True(t, d.Equal(typesys.UnifyingConversion(d, d, repo)))
	assert.True(t, typesys.IsError(typesys.UnifyingConversion(d, typesys.Declared{ID: "y"}, repo)))
}

func TestUnifyingConversion_UnknownSideDefersToTheOtherForIdentityCategories(t *testing.T) {
	repo := typesys.NewRepository()
	d := typesys.Declared{ID: "x"}
	assert.True(t, d.Equal(typesys.UnifyingConversion(d, typesys.Unknown, repo)))
}

func TestNumericBinary_BothUnknownDefaultsToInt4(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.Int4.Equal(typesys.NumericBinary(typesys.Unknown, typesys.Unknown, repo)))
}

func TestNumericBinary_Float4OnlyWhenBothFloat4(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.Float4.Equal(typesys.NumericBinary(typesys.Float4, typesys.Float4, repo)))
	assert.True(t, typesys.Float8.Equal(typesys.NumericBinary(typesys.Float4, typesys.Float8, repo)))
}

func TestNumericBinary_DecimalCombinesScaleAndPrecision(t *testing.T) {
	repo := typesys.NewRepository()
	p1, s := 5, 2
	p2 := 8
	a := typesys.Decimal{Precision: &p1, Scale: &s}
	b := typesys.Decimal{Precision: &p2, Scale: &s}
	result := typesys.NumericBinary(a, b, repo)
	d, ok := result.(typesys.Decimal)
	require.True(t, ok)
	require.NotNil(t, d.Precision)
	assert.Equal(t, 8, *d.Precision)
}

func TestNumericBinary_Int8WinsOverInt4(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.Int8.Equal(typesys.NumericBinary(typesys.Int4, typesys.Int8, repo)))
}

func TestNumericBinary_ConversionStopPropagatesAsPending(t *testing.T) {
	repo := typesys.NewRepository()
	assert.True(t, typesys.IsPending(typesys.NumericBinary(typesys.ErrorExt, typesys.Int4, repo)))
}
