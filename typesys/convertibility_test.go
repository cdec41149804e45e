package typesys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/project-tsurugi/yugawara/ternary"
	"github.com/project-tsurugi/yugawara/typesys"
)

func TestIsAssignmentConvertible(t *testing.T) {
	cases := []struct {
		name     string
		from, to typesys.Type
		want     ternary.Value
	}{
		{"same kind boolean", typesys.Boolean, typesys.Boolean, ternary.Yes},
		{"unknown source always converts", typesys.Unknown, typesys.Int4, ternary.Yes},
		{"widening int1 to int4", typesys.Int1, typesys.Int4, ternary.Yes},
		{"narrowing int4 to int1", typesys.Int4, typesys.Int1, ternary.No},
		{"float4 to float8 widens", typesys.Float4, typesys.Float8, ternary.Yes},
		{"float8 to float4 narrows", typesys.Float8, typesys.Float4, ternary.No},
		{"exact int to float widens", typesys.Int4, typesys.Float8, ternary.Yes},
		{"float to exact int never widens", typesys.Float8, typesys.Int4, ternary.No},
		{"date to time_point widens", typesys.Date, typesys.TimePoint{}, ternary.Yes},
		{"time_point to date does not", typesys.TimePoint{}, typesys.Date, ternary.No},
		{"mismatched time zone", typesys.TimeOfDay{WithTimeZone: true}, typesys.TimeOfDay{WithTimeZone: false}, ternary.No},
		{"matching time zone", typesys.TimeOfDay{WithTimeZone: true}, typesys.TimeOfDay{WithTimeZone: true}, ternary.Yes},
		{"conversion stop propagates unknown", typesys.ErrorExt, typesys.Int4, ternary.Unknown},
		{"pending propagates unknown", typesys.Int4, typesys.PendingExt, ternary.Unknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, typesys.IsAssignmentConvertible(c.from, c.to))
		})
	}
}

func TestIsCastConvertible_SupersetOfAssignment(t *testing.T) {
	// Every assignment-convertible pair must also be cast-convertible.
	pairs := [][2]typesys.Type{
		{typesys.Int1, typesys.Int4},
		{typesys.Boolean, typesys.Boolean},
		{typesys.Date, typesys.TimePoint{}},
	}
	for _, p := range pairs {
		assert.Equal(t, ternary.Yes, typesys.IsCastConvertible(p[0], p[1]))
	}
}

func TestIsCastConvertible_FloatToExactAllowedUnderCastOnly(t *testing.T) {
	assert.Equal(t, ternary.No, typesys.IsAssignmentConvertible(typesys.Float8, typesys.Int4))
	assert.Equal(t, ternary.Yes, typesys.IsCastConvertible(typesys.Float8, typesys.Int4))
}

func TestIsCastConvertible_BlobToCharacterExplicitlyDisallowed(t *testing.T) {
	assert.Equal(t, ternary.No, typesys.IsCastConvertible(typesys.Blob, typesys.Character(true, nil)))
}

func TestIsCastConvertible_OctetBlobRoundTrip(t *testing.T) {
	assert.Equal(t, ternary.Yes, typesys.IsCastConvertible(typesys.Octet(true, nil), typesys.Blob))
	assert.Equal(t, ternary.Yes, typesys.IsCastConvertible(typesys.Blob, typesys.Octet(true, nil)))
}

func TestIsMostUpperboundCompatibleType(t *testing.T) {
	assert.Equal(t, ternary.No, typesys.IsMostUpperboundCompatibleType(typesys.Int1))
	assert.Equal(t, ternary.Yes, typesys.IsMostUpperboundCompatibleType(typesys.Int4))
	assert.Equal(t, ternary.Yes, typesys.IsMostUpperboundCompatibleType(typesys.Decimal{}))
	length := 10
	assert.Equal(t, ternary.No, typesys.IsMostUpperboundCompatibleType(typesys.Decimal{Precision: &length}))
	assert.Equal(t, ternary.Yes, typesys.IsMostUpperboundCompatibleType(typesys.Character(true, nil)))
	assert.Equal(t, ternary.No, typesys.IsMostUpperboundCompatibleType(typesys.Character(false, nil)))
	assert.Equal(t, ternary.No, typesys.IsMostUpperboundCompatibleType(typesys.Character(true, &length)))
}

func TestIsParameterApplicationConvertible_RejectsRefinedParameterType(t *testing.T) {
	length := 10
	refined := typesys.Character(true, &length)
	assert.Equal(t, ternary.No, typesys.IsParameterApplicationConvertible(typesys.Character(true, nil), refined))
	assert.Equal(t, ternary.Yes, typesys.IsParameterApplicationConvertible(typesys.Character(true, nil), typesys.Character(true, nil)))
}
