package value

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/project-tsurugi/yugawara/typesys"
)

// Result is the outcome of comparing two values: one of undefined,
// equal, less, greater. The zero value is Undefined.
type Result int

const (
	Undefined Result = iota
	Equal
	Less
	Greater
)

func (r Result) String() string {
	switch r {
	case Equal:
		return "equal"
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "undefined"
	}
}

// Invert implements the comparison involution ~: swaps Less/Greater,
// fixes Equal/Undefined. Used by the disjunction-range decomposition
// when a column reference appears on the right-hand side of a compare.
func (r Result) Invert() Result {
	switch r {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return r
	}
}

// Compare performs the total dispatch over value kinds described in
// spec §4.5.
func Compare(left, right Value) Result {
	if left == nil || right == nil {
		return Undefined
	}
	switch l := left.(type) {
	case Boolean:
		r, ok := right.(Boolean)
		if !ok {
			return Undefined
		}
		return compareOrdered(boolRank(bool(l)), boolRank(bool(r)))
	case Int4, Int8, Decimal:
		return compareExact(left, right)
	case Float4:
		r, ok := approxOf(right)
		if !ok {
			return Undefined
		}
		return compareApprox(float64(l), r)
	case Float8:
		r, ok := approxOf(right)
		if !ok {
			return Undefined
		}
		return compareApprox(float64(l), r)
	case Character:
		r, ok := right.(Character)
		if !ok {
			return Undefined
		}
		return compareOrdered(string(l), string(r))
	case Octet:
		r, ok := right.(Octet)
		if !ok {
			return Undefined
		}
		return compareBytes(l, r)
	case Date:
		r, ok := right.(Date)
		if !ok {
			return Undefined
		}
		return compareOrdered(int64(l), int64(r))
	case TimeOfDay:
		r, ok := right.(TimeOfDay)
		if !ok {
			return Undefined
		}
		if res := compareOrdered(l.SecondOfDay, r.SecondOfDay); res != Equal {
			return res
		}
		return compareOrdered(l.Nanosecond, r.Nanosecond)
	case TimePoint:
		r, ok := right.(TimePoint)
		if !ok {
			return Undefined
		}
		if res := compareOrdered(l.SecondsSinceEpoch, r.SecondsSinceEpoch); res != Equal {
			return res
		}
		return compareOrdered(l.Nanosecond, r.Nanosecond)
	default:
		return Undefined
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareOrdered[T int | int64 | string](a, b T) Result {
	switch {
	case a == b:
		return Equal
	case a < b:
		return Less
	default:
		return Greater
	}
}

func compareBytes(a, b []byte) Result {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return Less
			}
			return Greater
		}
	}
	return compareOrdered(len(a), len(b))
}

// compareExact handles int4/int8/decimal cross-kind comparison by
// promoting both sides into a shopspring/decimal value, matching the
// spec's note that exact cross-kind comparison needs an arbitrary
// precision decimal backing.
func compareExact(left, right Value) Result {
	l, ok := decimalOf(left)
	if !ok {
		return Undefined
	}
	r, ok := decimalOf(right)
	if !ok {
		return Undefined
	}
	switch l.Cmp(r) {
	case 0:
		return Equal
	case -1:
		return Less
	default:
		return Greater
	}
}

func decimalOf(v Value) (decimal.Decimal, bool) {
	switch vv := v.(type) {
	case Int4:
		return decimal.NewFromInt32(int32(vv)), true
	case Int8:
		return decimal.NewFromInt(int64(vv)), true
	case Decimal:
		return vv.D, true
	default:
		return decimal.Decimal{}, false
	}
}

func approxOf(v Value) (float64, bool) {
	switch vv := v.(type) {
	case Float4:
		return float64(vv), true
	case Float8:
		return float64(vv), true
	default:
		return 0, false
	}
}

// compareApprox implements IEEE comparison with NaN/same-signed-infinity
// both collapsing to Undefined per spec §4.5.
func compareApprox(l, r float64) Result {
	if math.IsNaN(l) || math.IsNaN(r) {
		return Undefined
	}
	if math.IsInf(l, 0) && math.IsInf(r, 0) && math.Signbit(l) == math.Signbit(r) {
		return Undefined
	}
	switch {
	case l == r:
		return Equal
	case l < r:
		return Less
	default:
		return Greater
	}
}

// ComparableUnifyingType reports whether left and right have a
// unifying conversion that is not the error extension, used before any
// immediate-to-immediate comparison is attempted by the range-hint
// engine.
func ComparableUnifyingType(leftType, rightType typesys.Type, repo *typesys.Repository) bool {
	unified := typesys.UnifyingConversion(leftType, rightType, repo)
	return !typesys.IsError(unified)
}
