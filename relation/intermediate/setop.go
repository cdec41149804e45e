package intermediate

import "github.com/project-tsurugi/yugawara/relation"

// Union combines Left and Right rows; Quantifier All keeps duplicates,
// Distinct removes them.
type Union struct {
	Left       Operator
	Right      Operator
	Quantifier relation.SetQuantifier
	Mappings   []relation.SetMapping
}

func (*Union) Kind() Kind           { return KindUnion }
func (u *Union) Inputs() []Operator { return []Operator{u.Left, u.Right} }

// Intersection keeps rows present on both sides of the key-pair
// Mappings.
type Intersection struct {
	Left       Operator
	Right      Operator
	Quantifier relation.SetQuantifier
	Mappings   []relation.SetMapping
}

func (*Intersection) Kind() Kind           { return KindIntersection }
func (i *Intersection) Inputs() []Operator { return []Operator{i.Left, i.Right} }

// Difference keeps Left rows absent from Right, keyed by Mappings.
type Difference struct {
	Left       Operator
	Right      Operator
	Quantifier relation.SetQuantifier
	Mappings   []relation.SetMapping
}

func (*Difference) Kind() Kind           { return KindDifference }
func (d *Difference) Inputs() []Operator { return []Operator{d.Left, d.Right} }
