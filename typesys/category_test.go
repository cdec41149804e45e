package typesys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/project-tsurugi/yugawara/typesys"
)

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		t    typesys.Type
		want typesys.Category
	}{
		{nil, typesys.CategoryUnresolved},
		{typesys.Unknown, typesys.CategoryUnknown},
		{typesys.Boolean, typesys.CategoryBoolean},
		{typesys.Int4, typesys.CategoryNumber},
		{typesys.Decimal{}, typesys.CategoryNumber},
		{typesys.Character(true, nil), typesys.CategoryCharacterString},
		{typesys.Octet(true, nil), typesys.CategoryOctetString},
		{typesys.Bit(true, nil), typesys.CategoryBitString},
		{typesys.Date, typesys.CategoryTemporal},
		{typesys.DatetimeInterval, typesys.CategoryDatetimeInterval},
		{typesys.Clob, typesys.CategoryLargeCharacterString},
		{typesys.Blob, typesys.CategoryLargeOctetString},
		{typesys.Array{}, typesys.CategoryCollection},
		{typesys.Record{}, typesys.CategoryStructure},
		{typesys.Declared{ID: "x"}, typesys.CategoryUnique},
		{typesys.ErrorExt, typesys.CategoryUnresolved},
		{typesys.PendingExt, typesys.CategoryUnresolved},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, typesys.CategoryOf(c.t), "type %v", c.t)
	}
}

func TestCategory_StringNamesEveryCategory(t *testing.T) {
	cases := map[typesys.Category]string{
		typesys.CategoryUnknown:              "unknown",
		typesys.CategoryBoolean:              "boolean",
		typesys.CategoryNumber:               "number",
		typesys.CategoryCharacterString:      "character_string",
		typesys.CategoryOctetString:          "octet_string",
		typesys.CategoryBitString:            "bit_string",
		typesys.CategoryTemporal:             "temporal",
		typesys.CategoryDatetimeInterval:     "datetime_interval",
		typesys.CategoryLargeCharacterString: "large_character_string",
		typesys.CategoryLargeOctetString:     "large_octet_string",
		typesys.CategoryCollection:           "collection",
		typesys.CategoryStructure:            "structure",
		typesys.CategoryUnique:               "unique",
		typesys.CategoryUnresolved:           "unresolved",
	}
	for cat, want := range cases {
		assert.Equal(t, want, cat.String())
	}
}
