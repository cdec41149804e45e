// Package value represents constant values carried by immediate scalar
// expressions and implements the total/partial comparison used by the
// range-hint engine and disjunction-range decomposition.
package value

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/project-tsurugi/yugawara/typesys"
)

// Value is a constant value of one of the kinds the type algebra knows
// about. Each concrete type below corresponds to one typesys.Kind.
type Value interface {
	Kind() typesys.Kind
}

type Boolean bool

func (Boolean) Kind() typesys.Kind { return typesys.KindBoolean }

type Int4 int32

func (Int4) Kind() typesys.Kind { return typesys.KindInt4 }

type Int8 int64

func (Int8) Kind() typesys.Kind { return typesys.KindInt8 }

// Decimal wraps an arbitrary-precision decimal, grounded on the spec's
// note that cross-kind exact numeric comparison needs a decimal library.
type Decimal struct{ D decimal.Decimal }

func (Decimal) Kind() typesys.Kind { return typesys.KindDecimal }

type Float4 float32

func (Float4) Kind() typesys.Kind { return typesys.KindFloat4 }

type Float8 float64

func (Float8) Kind() typesys.Kind { return typesys.KindFloat8 }

type Character string

func (Character) Kind() typesys.Kind { return typesys.KindCharacter }

type Octet []byte

func (Octet) Kind() typesys.Kind { return typesys.KindOctet }

// Date is the number of days since the epoch.
type Date int64

func (Date) Kind() typesys.Kind { return typesys.KindDate }

// TimeOfDay is a wall-clock time of day with nanosecond resolution.
type TimeOfDay struct {
	SecondOfDay int64
	Nanosecond  int64
}

func (TimeOfDay) Kind() typesys.Kind { return typesys.KindTimeOfDay }

// TimePoint is seconds (plus sub-second nanoseconds) since the epoch.
type TimePoint struct {
	SecondsSinceEpoch int64
	Nanosecond        int64
}

func (TimePoint) Kind() typesys.Kind { return typesys.KindTimePoint }

// Null represents the SQL NULL value, whose natural type is `unknown`.
type Null struct{}

func (Null) Kind() typesys.Kind { return typesys.KindUnknown }

// FromTime builds a TimePoint value from a standard library time.Time,
// a convenience used by catalog defaults and tests.
func FromTime(t time.Time) TimePoint {
	return TimePoint{SecondsSinceEpoch: t.Unix(), Nanosecond: int64(t.Nanosecond())}
}

// NaturalType returns the type that an immediate literal of this value
// would carry absent any explicit declaration, used when checking
// assignment-convertibility of `immediate(value, type)` expressions.
func NaturalType(v Value) typesys.Type {
	switch vv := v.(type) {
	case Boolean:
		return typesys.Boolean
	case Int4:
		return typesys.Int4
	case Int8:
		return typesys.Int8
	case Decimal:
		return typesys.Decimal{}
	case Float4:
		return typesys.Float4
	case Float8:
		return typesys.Float8
	case Character:
		n := len(vv)
		return typesys.Character(true, &n)
	case Octet:
		n := len(vv)
		return typesys.Octet(true, &n)
	case Date:
		return typesys.Date
	case TimeOfDay:
		return typesys.TimeOfDay{}
	case TimePoint:
		return typesys.TimePoint{}
	case Null, nil:
		return typesys.Unknown
	default:
		return typesys.ErrorExt
	}
}
