// Package typesys implements the type-conversion algebra described for
// the analyzer: the closed sum of data types, their categories, unifying
// conversions, per-category promotions, and the three convertibility
// relations (assignment, cast, parameter-application).
package typesys

// Kind enumerates the closed sum of data types.
type Kind int

const (
	KindBoolean Kind = iota
	KindInt1
	KindInt2
	KindInt4
	KindInt8
	KindDecimal
	KindFloat4
	KindFloat8
	KindCharacter
	KindOctet
	KindBit
	KindDate
	KindTimeOfDay
	KindTimePoint
	KindDatetimeInterval
	KindBlob
	KindClob
	KindUnknown
	KindArray
	KindRecord
	KindDeclared
	KindExtensionError
	KindExtensionPending
)

func (k Kind) String() string {
	names := [...]string{
		"boolean", "int1", "int2", "int4", "int8", "decimal", "float4", "float8",
		"character", "octet", "bit", "date", "time_of_day", "time_point",
		"datetime_interval", "blob", "clob", "unknown", "array", "record",
		"declared", "error", "pending",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "?"
	}
	return names[k]
}

// Format renders t the way diagnostic messages and the Repository's
// interning key want it: a stable, human-readable canonical form, with
// a fixed placeholder for a nil (unresolved) type instead of a panic.
func Format(t Type) string {
	if t == nil {
		return "<unresolved>"
	}
	return t.String()
}

// Type is any member of the closed type sum. Implementations are
// immutable value types so they are safe to share via the Repository.
type Type interface {
	Kind() Kind
	// Equal reports structural equality, used by is_assignment_convertible
	// for array/record/declared and by unifying_conversion's identity case.
	Equal(Type) bool
	String() string
}

// --- primitive, parameterless types ---

type primitive struct{ kind Kind }

func (p primitive) Kind() Kind     { return p.kind }
func (p primitive) String() string { return p.kind.String() }
func (p primitive) Equal(o Type) bool {
	return o != nil && o.Kind() == p.kind
}

var (
	Boolean          Type = primitive{KindBoolean}
	Int1             Type = primitive{KindInt1}
	Int2             Type = primitive{KindInt2}
	Int4             Type = primitive{KindInt4}
	Int8             Type = primitive{KindInt8}
	Float4           Type = primitive{KindFloat4}
	Float8           Type = primitive{KindFloat8}
	Date             Type = primitive{KindDate}
	DatetimeInterval Type = primitive{KindDatetimeInterval}
	Blob             Type = primitive{KindBlob}
	Clob             Type = primitive{KindClob}
	Unknown          Type = primitive{KindUnknown}
	ErrorExt         Type = primitive{KindExtensionError}
	PendingExt       Type = primitive{KindExtensionPending}
)

// IsError reports whether t is the error extension type.
func IsError(t Type) bool { return t != nil && t.Kind() == KindExtensionError }

// IsPending reports whether t is the pending extension type.
func IsPending(t Type) bool { return t != nil && t.Kind() == KindExtensionPending }

// IsConversionStop reports whether t is error or pending: every
// conversion function propagates these instead of computing further.
func IsConversionStop(t Type) bool { return IsError(t) || IsPending(t) }

// --- decimal ---

// Decimal is decimal(precision?, scale?); nil fields mean "most
// upper-bound compatible" (unspecified/widest).
type Decimal struct {
	Precision *int
	Scale     *int
}

func (Decimal) Kind() Kind { return KindDecimal }
func (d Decimal) String() string {
	return "decimal(" + optInt(d.Precision) + "," + optInt(d.Scale) + ")"
}
func (d Decimal) Equal(o Type) bool {
	od, ok := o.(Decimal)
	if !ok {
		return false
	}
	return eqIntPtr(d.Precision, od.Precision) && eqIntPtr(d.Scale, od.Scale)
}

// --- character / octet / bit families ---

type stringLike struct {
	kind    Kind
	Varying bool
	Length  *int
}

func (s stringLike) Kind() Kind { return s.kind }
func (s stringLike) String() string {
	v := ""
	if s.Varying {
		v = "varying "
	}
	return s.kind.String() + "(" + v + optInt(s.Length) + ")"
}
func (s stringLike) Equal(o Type) bool {
	os, ok := o.(stringLike)
	if !ok || os.kind != s.kind {
		return false
	}
	return os.Varying == s.Varying && eqIntPtr(s.Length, os.Length)
}

func Character(varying bool, length *int) Type { return stringLike{KindCharacter, varying, length} }
func Octet(varying bool, length *int) Type     { return stringLike{KindOctet, varying, length} }
func Bit(varying bool, length *int) Type       { return stringLike{KindBit, varying, length} }

// AsStringLike exposes the varying/length fields of a character, octet
// or bit type; ok is false for any other kind.
func AsStringLike(t Type) (varying bool, length *int, ok bool) {
	s, ok := t.(stringLike)
	if !ok {
		return false, nil, false
	}
	return s.Varying, s.Length, true
}

// --- temporal ---

type TimeOfDay struct{ WithTimeZone bool }

func (TimeOfDay) Kind() Kind { return KindTimeOfDay }
func (t TimeOfDay) String() string {
	if t.WithTimeZone {
		return "time_of_day(with time zone)"
	}
	return "time_of_day"
}
func (t TimeOfDay) Equal(o Type) bool {
	ot, ok := o.(TimeOfDay)
	return ok && ot.WithTimeZone == t.WithTimeZone
}

type TimePoint struct{ WithTimeZone bool }

func (TimePoint) Kind() Kind { return KindTimePoint }
func (t TimePoint) String() string {
	if t.WithTimeZone {
		return "time_point(with time zone)"
	}
	return "time_point"
}
func (t TimePoint) Equal(o Type) bool {
	ot, ok := o.(TimePoint)
	return ok && ot.WithTimeZone == t.WithTimeZone
}

// --- collection / structure / unique ---

type Array struct{ Of Type }

func (Array) Kind() Kind       { return KindArray }
func (a Array) String() string { return "array<" + safeString(a.Of) + ">" }
func (a Array) Equal(o Type) bool {
	oa, ok := o.(Array)
	return ok && safeEqual(a.Of, oa.Of)
}

type Record struct{ Elements []Type }

func (Record) Kind() Kind { return KindRecord }
func (r Record) String() string {
	s := "record<"
	for i, e := range r.Elements {
		if i > 0 {
			s += ","
		}
		s += safeString(e)
	}
	return s + ">"
}
func (r Record) Equal(o Type) bool {
	or, ok := o.(Record)
	if !ok || len(or.Elements) != len(r.Elements) {
		return false
	}
	for i := range r.Elements {
		if !safeEqual(r.Elements[i], or.Elements[i]) {
			return false
		}
	}
	return true
}

// Declared is a nominal, catalog-registered type identified by id (e.g.
// a user-defined distinct type). Two Declared types are equal iff their
// ids match.
type Declared struct{ ID string }

func (Declared) Kind() Kind       { return KindDeclared }
func (d Declared) String() string { return "declared(" + d.ID + ")" }
func (d Declared) Equal(o Type) bool {
	od, ok := o.(Declared)
	return ok && od.ID == d.ID
}

// --- helpers ---

func optInt(p *int) string {
	if p == nil {
		return "*"
	}
	return itoa(*p)
}

func eqIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func safeString(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func safeEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
