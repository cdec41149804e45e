package step

// Intersection keeps, from a preceding TakeCogroup's per-key row sets,
// only the keys present on every side.
type Intersection struct {
	Input Operator
}

func (*Intersection) Kind() Kind           { return KindIntersection }
func (i *Intersection) Inputs() []Operator { return []Operator{i.Input} }

// Difference keeps, from a preceding TakeCogroup's per-key row sets,
// only the keys present on the first side and absent from every other.
type Difference struct {
	Input Operator
}

func (*Difference) Kind() Kind           { return KindDifference }
func (d *Difference) Inputs() []Operator { return []Operator{d.Input} }

// Flatten discards the group structure left by a preceding TakeGroup
// or Aggregate, re-emitting one row per group member.
type Flatten struct {
	Input Operator
}

func (*Flatten) Kind() Kind           { return KindFlatten }
func (f *Flatten) Inputs() []Operator { return []Operator{f.Input} }
