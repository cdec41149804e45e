package typesys

import "sync"

// Repository interns canonical Type instances so that downstream code
// can compare types with == after a round trip through the repository
// (every equal type comes back as the same stored value), and so
// repeated conversions don't allocate a fresh value for a type that
// already exists. Reads may proceed concurrently; the single insertion
// path goes through sync.Map's LoadOrStore.
//
// A sync.Map keyed by the type's canonical string form is deliberately
// used here instead of a third-party cache: the key space is the finite
// set of distinct types seen during one analysis run, comparison is
// plain structural equality, and nothing in the example pack ships an
// interning cache this narrow (see DESIGN.md).
type Repository struct {
	values sync.Map // string -> Type
}

// NewRepository constructs an empty, ready-to-use Repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Get returns the canonical instance equal to t, registering t as
// canonical on first sight.
func (r *Repository) Get(t Type) Type {
	if t == nil {
		return nil
	}
	key := Format(t)
	if v, ok := r.values.Load(key); ok {
		return v.(Type)
	}
	actual, _ := r.values.LoadOrStore(key, t)
	return actual.(Type)
}

// GetKind returns the canonical instance of a parameterless Kind,
// constructing its zero-value form (no precision/scale/length refinement).
func (r *Repository) GetKind(k Kind) Type {
	switch k {
	case KindBoolean:
		return r.Get(Boolean)
	case KindInt1:
		return r.Get(Int1)
	case KindInt2:
		return r.Get(Int2)
	case KindInt4:
		return r.Get(Int4)
	case KindInt8:
		return r.Get(Int8)
	case KindDecimal:
		return r.Get(Decimal{})
	case KindFloat4:
		return r.Get(Float4)
	case KindFloat8:
		return r.Get(Float8)
	case KindCharacter:
		return r.Get(Character(true, nil))
	case KindOctet:
		return r.Get(Octet(true, nil))
	case KindBit:
		return r.Get(Bit(true, nil))
	case KindDate:
		return r.Get(Date)
	case KindTimeOfDay:
		return r.Get(TimeOfDay{})
	case KindTimePoint:
		return r.Get(TimePoint{})
	case KindDatetimeInterval:
		return r.Get(DatetimeInterval)
	case KindBlob:
		return r.Get(Blob)
	case KindClob:
		return r.Get(Clob)
	case KindUnknown:
		return r.Get(Unknown)
	case KindExtensionError:
		return r.Get(ErrorExt)
	case KindExtensionPending:
		return r.Get(PendingExt)
	default:
		return r.Get(Unknown)
	}
}
