package typesys

import "github.com/project-tsurugi/yugawara/ternary"

var exactRank = map[Kind]int{
	KindInt1:    0,
	KindInt2:    1,
	KindInt4:    2,
	KindInt8:    3,
	KindDecimal: 4,
}

func isWideningNumeric(from, to Kind) bool {
	if from == to {
		return true
	}
	if to == KindFloat4 || to == KindFloat8 {
		if from == KindFloat4 && to == KindFloat8 {
			return true
		}
		if from == KindFloat4 || from == KindFloat8 {
			return false
		}
		_, ok := exactRank[from]
		return ok
	}
	if from == KindFloat4 || from == KindFloat8 {
		// narrowing numeric: float -> exact is never allowed
		return false
	}
	fr, fok := exactRank[from]
	tr, tok := exactRank[to]
	return fok && tok && fr <= tr
}

// IsAssignmentConvertible encodes the SQL assignment rules of spec §4.1.
func IsAssignmentConvertible(from, to Type) ternary.Value {
	if from == nil || to == nil {
		return ternary.Unknown
	}
	if IsConversionStop(from) || IsConversionStop(to) {
		return ternary.Unknown
	}
	if from.Kind() == KindUnknown {
		return ternary.Yes
	}
	if from.Kind() == to.Kind() {
		switch from.Kind() {
		case KindCharacter, KindOctet, KindBit:
			return ternary.Yes
		case KindTimeOfDay:
			return ternary.Of(from.(TimeOfDay).WithTimeZone == to.(TimeOfDay).WithTimeZone)
		case KindTimePoint:
			return ternary.Of(from.(TimePoint).WithTimeZone == to.(TimePoint).WithTimeZone)
		case KindArray, KindRecord, KindDeclared:
			return ternary.Of(from.Equal(to))
		default:
			return ternary.Yes
		}
	}
	if CategoryOf(from) == CategoryNumber && CategoryOf(to) == CategoryNumber {
		return ternary.Of(isWideningNumeric(from.Kind(), to.Kind()))
	}
	if from.Kind() == KindDate && to.Kind() == KindTimePoint {
		return ternary.Yes
	}
	return ternary.No
}

// IsCastConvertible encodes the explicit CAST rules of spec §4.1: a
// strict superset of IsAssignmentConvertible.
func IsCastConvertible(from, to Type) ternary.Value {
	if from == nil || to == nil {
		return ternary.Unknown
	}
	if IsConversionStop(from) || IsConversionStop(to) {
		return ternary.Unknown
	}
	if a := IsAssignmentConvertible(from, to); a == ternary.Yes {
		return ternary.Yes
	}
	if CategoryOf(from) == CategoryNumber && CategoryOf(to) == CategoryNumber {
		if isFloatKind(from.Kind()) {
			return ternary.Yes // float -> exact now permitted under cast
		}
	}
	if (from.Kind() == KindTimeOfDay && to.Kind() == KindTimePoint) ||
		(from.Kind() == KindTimePoint && to.Kind() == KindTimeOfDay) ||
		(from.Kind() == KindTimeOfDay && to.Kind() == KindTimeOfDay) ||
		(from.Kind() == KindTimePoint && to.Kind() == KindTimePoint) {
		return ternary.Yes
	}
	if (from.Kind() == KindOctet && to.Kind() == KindBlob) ||
		(from.Kind() == KindBlob && to.Kind() == KindOctet) {
		return ternary.Yes
	}
	if from.Kind() == KindBlob && to.Kind() == KindCharacter {
		return ternary.No // explicit exception: large-octet -> string
	}
	if from.Kind() == KindCharacter || to.Kind() == KindCharacter {
		return ternary.Yes
	}
	return ternary.No
}

// IsMostUpperboundCompatibleType reports whether t carries no
// precision/scale/length refinement, i.e. it may serve as a parameter
// type without narrowing a caller's argument.
func IsMostUpperboundCompatibleType(t Type) ternary.Value {
	if t == nil {
		return ternary.Unknown
	}
	if IsConversionStop(t) {
		return ternary.Unknown
	}
	switch t.Kind() {
	case KindInt1, KindInt2:
		return ternary.No
	case KindInt4, KindInt8:
		return ternary.Yes
	case KindDecimal:
		d := t.(Decimal)
		return ternary.Of(d.Precision == nil && d.Scale == nil)
	case KindCharacter, KindOctet, KindBit:
		varying, length, _ := AsStringLike(t)
		return ternary.Of(varying && length == nil)
	default:
		return ternary.Yes
	}
}

// IsParameterApplicationConvertible encodes the parameter-application
// rules: like assignment, but `to` must be most-upperbound-compatible.
func IsParameterApplicationConvertible(from, to Type) ternary.Value {
	if from == nil || to == nil {
		return ternary.Unknown
	}
	if IsConversionStop(to) {
		return ternary.Unknown
	}
	if c := IsMostUpperboundCompatibleType(to); c != ternary.Yes {
		if c == ternary.Unknown {
			return ternary.Unknown
		}
		return ternary.No
	}
	return IsAssignmentConvertible(from, to)
}
