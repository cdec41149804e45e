package intermediate

// Buffer materializes its Input so that downstream operators may read
// it more than once (e.g. both sides of a self-join). Size is a hint
// for how many buffered rows to expect; 0 means unspecified.
type Buffer struct {
	Input Operator
	Size  int
}

func (*Buffer) Kind() Kind           { return KindBuffer }
func (b *Buffer) Inputs() []Operator { return []Operator{b.Input} }
