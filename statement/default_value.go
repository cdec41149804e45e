package statement

import (
	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/storage"
	"github.com/project-tsurugi/yugawara/value"
)

// DefaultValueKind distinguishes the three column-default clause
// shapes create_table validates.
type DefaultValueKind int

const (
	DefaultImmediate DefaultValueKind = iota
	DefaultSequence
	DefaultFunction
)

// DefaultValue is a column's default-value clause.
type DefaultValue interface {
	DefaultValueKind() DefaultValueKind
}

// ImmediateDefault fills the column with a constant Value; Value's
// natural type must be assignment-convertible to the column type.
type ImmediateDefault struct {
	Value value.Value
}

func (ImmediateDefault) DefaultValueKind() DefaultValueKind { return DefaultImmediate }

// SequenceDefault fills the column from Sequence's next value; the
// column type must be a 32- or 64-bit integer.
type SequenceDefault struct {
	Sequence *storage.Sequence
}

func (SequenceDefault) DefaultValueKind() DefaultValueKind { return DefaultSequence }

// FunctionDefault fills the column by invoking Function (a
// binding.Handle of kind binding.Function taking zero arguments); its
// return type must be assignment-convertible to the column type.
type FunctionDefault struct {
	Function binding.Handle
}

func (FunctionDefault) DefaultValueKind() DefaultValueKind { return DefaultFunction }
