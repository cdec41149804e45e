package variable

// Nullity is a two-valued lattice over "this variable may hold NULL."
type Nullity struct {
	nullable bool
}

// NewNullity constructs a Nullity from a plain bool.
func NewNullity(nullable bool) Nullity { return Nullity{nullable} }

// Nullable reports whether the variable may hold NULL.
func (n Nullity) Nullable() bool { return n.nullable }

// Not returns the negation of n.
func (n Nullity) Not() Nullity { return Nullity{!n.nullable} }

// And returns the conjunction: nullable only if both are nullable.
func And(a, b Nullity) Nullity { return Nullity{a.nullable && b.nullable} }

// Or returns the disjunction: not nullable only if neither is nullable.
func Or(a, b Nullity) Nullity { return Nullity{a.nullable || b.nullable} }
