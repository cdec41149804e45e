package step

import (
	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/relation"
	"github.com/project-tsurugi/yugawara/scalar"
	"github.com/project-tsurugi/yugawara/storage"
)

// JoinFind probes a broadcast exchange (extracted from Source) with an
// equality Keys lookup per Input row, produced by collect_exchange_steps'
// broadcast join strategy when the join's endpoint keys are equalities.
type JoinFind struct {
	Input     Operator
	Source    binding.Handle // kind binding.Relation, extracting to the broadcast exchange
	Table     *storage.Table
	Keys      []relation.KeyPiece
	JoinKind  relation.JoinKind
	Condition scalar.Expression // nil if absent
}

func (*JoinFind) Kind() Kind           { return KindJoinFind }
func (j *JoinFind) Inputs() []Operator { return []Operator{j.Input} }

// JoinScan is JoinFind's range-key counterpart, used when the join's
// endpoint keys are an ordered range rather than an equality.
type JoinScan struct {
	Input     Operator
	Source    binding.Handle
	Table     *storage.Table
	Lower     *relation.Endpoint
	Upper     *relation.Endpoint
	JoinKind  relation.JoinKind
	Condition scalar.Expression // nil if absent
}

func (*JoinScan) Kind() Kind           { return KindJoinScan }
func (j *JoinScan) Inputs() []Operator { return []Operator{j.Input} }
