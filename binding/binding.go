// Package binding implements descriptor extraction: the external
// interface (spec §6) through which a relational or scalar expression
// recovers the catalog entity (table, function, exchange, ...) that a
// descriptor opaquely refers to.
package binding

import "fmt"

// DescriptorKind enumerates the families of descriptor spec §6 names.
type DescriptorKind int

const (
	Variable DescriptorKind = iota
	Function
	AggregateFunction
	Schema
	Storage
	Relation
	DeclaredType
)

func (k DescriptorKind) String() string {
	names := [...]string{"variable", "function", "aggregate_function", "schema", "storage", "relation", "declared_type"}
	if int(k) < 0 || int(k) >= len(names) {
		return "?"
	}
	return names[k]
}

// Handle is an opaque descriptor that carries its catalog entity inline;
// it plays the role of the original's shared_ptr<declaration> referenced
// by a descriptor, made concrete as recommended by spec §9 ("arena-held
// declarations with descriptors carrying stable indices").
type Handle struct {
	Kind   DescriptorKind
	Entity any
}

// NewHandle builds a Handle of the given kind wrapping entity.
func NewHandle(kind DescriptorKind, entity any) Handle {
	return Handle{Kind: kind, Entity: entity}
}

// Extract downcasts h's entity to T, panicking on a kind mismatch —
// the Go analogue of the original's extract<T>, which throws.
func Extract[T any](h Handle) T {
	v, ok := h.Entity.(T)
	if !ok {
		panic(fmt.Sprintf("binding: descriptor of kind %s does not hold a %T", h.Kind, v))
	}
	return v
}

// ExtractIf downcasts h's entity to T, returning ok=false on mismatch
// instead of panicking — the analogue of extract_if<T>.
func ExtractIf[T any](h Handle) (T, bool) {
	v, ok := h.Entity.(T)
	return v, ok
}
