package typesys

// UnifyingConversionUnary computes the canonical type a single value of
// t would need to take so that it may be combined with another value
// taken from the same domain; e.g. it widens int1 to int4.
func UnifyingConversionUnary(t Type, repo *Repository) Type {
	if t == nil {
		return ErrorExt
	}
	if IsConversionStop(t) {
		return PendingExt
	}
	switch CategoryOf(t) {
	case CategoryBoolean:
		return booleanUnary(t, repo)
	case CategoryNumber:
		return numericUnary(t, repo)
	case CategoryCharacterString:
		return characterUnary(t, repo)
	case CategoryOctetString:
		return octetUnary(t, repo)
	case CategoryBitString:
		return bitUnary(t, repo)
	case CategoryTemporal:
		return temporalUnary(t, repo)
	case CategoryDatetimeInterval:
		return repo.Get(DatetimeInterval)
	case CategoryLargeCharacterString:
		return repo.Get(Clob)
	case CategoryLargeOctetString:
		return repo.Get(Blob)
	case CategoryUnknown:
		return repo.Get(Unknown)
	default:
		return repo.Get(t)
	}
}

// UnifyingConversion computes the common upper type used when a single
// variable must stand in for either of two input values, per spec §4.1.
func UnifyingConversion(a, b Type, repo *Repository) Type {
	if a == nil || b == nil {
		return ErrorExt
	}
	if IsConversionStop(a) || IsConversionStop(b) {
		return PendingExt
	}
	ca, cb := CategoryOf(a), CategoryOf(b)
	uc, ok := unifyCategory(ca, cb)
	if !ok {
		return ErrorExt
	}
	switch uc {
	case CategoryBoolean:
		return booleanBinary(a, b, repo)
	case CategoryNumber:
		return NumericBinary(a, b, repo)
	case CategoryCharacterString:
		return characterBinary(a, b, repo)
	case CategoryOctetString:
		return octetBinary(a, b, repo)
	case CategoryBitString:
		return bitBinary(a, b, repo)
	case CategoryTemporal:
		return temporalBinary(a, b, repo)
	case CategoryDatetimeInterval:
		return intervalBinary(a, b, repo)
	case CategoryLargeCharacterString:
		return largeBinary(a, b, repo, KindClob, Clob)
	case CategoryLargeOctetString:
		return largeBinary(a, b, repo, KindBlob, Blob)
	case CategoryUnknown:
		return repo.Get(Unknown)
	default:
		// collection / structure / unique / external: only identity holds
		return identityBinary(a, b, repo)
	}
}

func identityBinary(a, b Type, repo *Repository) Type {
	if a.Kind() == KindUnknown {
		return repo.Get(b)
	}
	if b.Kind() == KindUnknown {
		return repo.Get(a)
	}
	if a.Equal(b) {
		return repo.Get(a)
	}
	return ErrorExt
}

// --- boolean ---

func booleanUnary(t Type, repo *Repository) Type {
	switch t.Kind() {
	case KindBoolean, KindUnknown:
		return repo.Get(Boolean)
	default:
		return ErrorExt
	}
}

func booleanBinary(a, b Type, repo *Repository) Type {
	ak, bk := a.Kind(), b.Kind()
	isBool := func(k Kind) bool { return k == KindBoolean || k == KindUnknown }
	if isBool(ak) && isBool(bk) {
		return repo.Get(Boolean)
	}
	return ErrorExt
}

// --- numeric ---

const (
	decimalPrecisionInt4 = 10
	decimalPrecisionInt8 = 19
)

func isExactInt(k Kind) bool {
	switch k {
	case KindInt1, KindInt2, KindInt4, KindInt8:
		return true
	}
	return false
}

func isFloatKind(k Kind) bool { return k == KindFloat4 || k == KindFloat8 }

func numericUnary(t Type, repo *Repository) Type {
	switch t.Kind() {
	case KindInt1, KindInt2, KindInt4, KindUnknown:
		return repo.Get(Int4)
	case KindInt8, KindFloat4, KindFloat8, KindDecimal:
		return repo.Get(t)
	default:
		return ErrorExt
	}
}

func intDecimalPrecision(k Kind) int {
	if k == KindInt8 {
		return decimalPrecisionInt8
	}
	return decimalPrecisionInt4
}

func combineDecimal(a, b Decimal) Decimal {
	if a.Scale != nil && b.Scale != nil && *a.Scale == *b.Scale {
		var precision *int
		if a.Precision != nil && b.Precision != nil {
			p := *a.Precision
			if *b.Precision > p {
				p = *b.Precision
			}
			precision = &p
		}
		scale := *a.Scale
		return Decimal{Precision: precision, Scale: &scale}
	}
	return Decimal{}
}

// NumericBinary implements the numeric unifying-conversion rules of
// spec §4.1: integer widening, decimal combination, and promotion to
// float8 (float4 only when both operands are float4).
func NumericBinary(a, b Type, repo *Repository) Type {
	if IsConversionStop(a) || IsConversionStop(b) {
		return PendingExt
	}
	if a.Kind() == KindUnknown && b.Kind() == KindUnknown {
		return repo.Get(Int4)
	}
	if a.Kind() == KindUnknown {
		return numericUnary(b, repo)
	}
	if b.Kind() == KindUnknown {
		return numericUnary(a, repo)
	}
	if isFloatKind(a.Kind()) || isFloatKind(b.Kind()) {
		if a.Kind() == KindFloat4 && b.Kind() == KindFloat4 {
			return repo.Get(Float4)
		}
		return repo.Get(Float8)
	}
	if a.Kind() == KindDecimal || b.Kind() == KindDecimal {
		toDecimal := func(t Type) Decimal {
			if d, ok := t.(Decimal); ok {
				return d
			}
			p := intDecimalPrecision(t.Kind())
			s := 0
			return Decimal{Precision: &p, Scale: &s}
		}
		return repo.Get(combineDecimal(toDecimal(a), toDecimal(b)))
	}
	if a.Kind() == KindInt8 || b.Kind() == KindInt8 {
		return repo.Get(Int8)
	}
	return repo.Get(Int4)
}

// --- character / octet / bit ---

func maxIntPtr(a, b *int) *int {
	if a == nil || b == nil {
		return nil
	}
	m := *a
	if *b > m {
		m = *b
	}
	return &m
}

func characterUnary(t Type, repo *Repository) Type {
	return familyUnary(t, repo, KindCharacter, Character)
}

func characterBinary(a, b Type, repo *Repository) Type {
	return familyBinary(a, b, repo, KindCharacter, Character)
}

func octetUnary(t Type, repo *Repository) Type {
	return familyUnary(t, repo, KindOctet, Octet)
}

func octetBinary(a, b Type, repo *Repository) Type {
	return familyBinary(a, b, repo, KindOctet, Octet)
}

func bitUnary(t Type, repo *Repository) Type {
	return familyUnary(t, repo, KindBit, Bit)
}

func bitBinary(a, b Type, repo *Repository) Type {
	return familyBinary(a, b, repo, KindBit, Bit)
}

func familyBinary(a, b Type, repo *Repository, kind Kind, ctor func(bool, *int) Type) Type {
	if a.Kind() == KindUnknown && b.Kind() == KindUnknown {
		zero := 0
		return repo.Get(ctor(true, &zero))
	}
	if a.Kind() == KindUnknown {
		return familyUnary(b, repo, kind, ctor)
	}
	if b.Kind() == KindUnknown {
		return familyUnary(a, repo, kind, ctor)
	}
	if a.Kind() != kind || b.Kind() != kind {
		return ErrorExt
	}
	_, la, _ := AsStringLike(a)
	_, lb, _ := AsStringLike(b)
	return repo.Get(ctor(true, maxIntPtr(la, lb)))
}

func familyUnary(t Type, repo *Repository, kind Kind, ctor func(bool, *int) Type) Type {
	if t.Kind() == KindUnknown {
		zero := 0
		return repo.Get(ctor(true, &zero))
	}
	if t.Kind() != kind {
		return ErrorExt
	}
	_, length, _ := AsStringLike(t)
	return repo.Get(ctor(true, length))
}

// --- temporal ---

func temporalUnary(t Type, repo *Repository) Type {
	switch t.Kind() {
	case KindDate, KindTimeOfDay, KindTimePoint:
		return repo.Get(t)
	case KindUnknown:
		return repo.Get(Date)
	default:
		return ErrorExt
	}
}

func mergeTZ(a, b bool) bool { return a || b }

func temporalBinary(a, b Type, repo *Repository) Type {
	if a.Kind() == KindUnknown {
		return temporalUnary(b, repo)
	}
	if b.Kind() == KindUnknown {
		return temporalUnary(a, repo)
	}
	switch {
	case a.Kind() == KindDate && b.Kind() == KindDate:
		return repo.Get(Date)
	case a.Kind() == KindDate && b.Kind() == KindTimeOfDay:
		return repo.Get(TimePoint{WithTimeZone: b.(TimeOfDay).WithTimeZone})
	case a.Kind() == KindTimeOfDay && b.Kind() == KindDate:
		return repo.Get(TimePoint{WithTimeZone: a.(TimeOfDay).WithTimeZone})
	case a.Kind() == KindDate && b.Kind() == KindTimePoint:
		return repo.Get(b)
	case a.Kind() == KindTimePoint && b.Kind() == KindDate:
		return repo.Get(a)
	case a.Kind() == KindTimeOfDay && b.Kind() == KindTimeOfDay:
		ta, tb := a.(TimeOfDay), b.(TimeOfDay)
		if ta.WithTimeZone == tb.WithTimeZone {
			return repo.Get(ta)
		}
		return repo.Get(TimeOfDay{WithTimeZone: true})
	case a.Kind() == KindTimeOfDay && b.Kind() == KindTimePoint:
		return repo.Get(TimePoint{WithTimeZone: mergeTZ(a.(TimeOfDay).WithTimeZone, b.(TimePoint).WithTimeZone)})
	case a.Kind() == KindTimePoint && b.Kind() == KindTimeOfDay:
		return repo.Get(TimePoint{WithTimeZone: mergeTZ(a.(TimePoint).WithTimeZone, b.(TimeOfDay).WithTimeZone)})
	case a.Kind() == KindTimePoint && b.Kind() == KindTimePoint:
		return repo.Get(TimePoint{WithTimeZone: mergeTZ(a.(TimePoint).WithTimeZone, b.(TimePoint).WithTimeZone)})
	default:
		return ErrorExt
	}
}

// --- datetime interval ---

func intervalBinary(a, b Type, repo *Repository) Type {
	isIv := func(k Kind) bool { return k == KindDatetimeInterval || k == KindUnknown }
	if isIv(a.Kind()) && isIv(b.Kind()) {
		return repo.Get(DatetimeInterval)
	}
	return ErrorExt
}

// --- large character / octet string ---

func largeBinary(a, b Type, repo *Repository, kind Kind, zero Type) Type {
	isThis := func(k Kind) bool { return k == kind || k == KindUnknown }
	if isThis(a.Kind()) && isThis(b.Kind()) {
		return repo.Get(zero)
	}
	return ErrorExt
}
