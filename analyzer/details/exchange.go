package details

import (
	"github.com/google/uuid"

	"github.com/project-tsurugi/yugawara/binding"
	"github.com/project-tsurugi/yugawara/descriptor"
	"github.com/project-tsurugi/yugawara/function"
	"github.com/project-tsurugi/yugawara/plan"
	"github.com/project-tsurugi/yugawara/relation"
	"github.com/project-tsurugi/yugawara/relation/intermediate"
	"github.com/project-tsurugi/yugawara/relation/step"
	"github.com/project-tsurugi/yugawara/scalar"
)

// JoinStrategy picks how collect_exchange_steps lowers one intermediate
// join: by co-grouping both sides through matching group exchanges, or
// by broadcasting the smaller side to a probe (join_find/join_scan)
// against the larger.
type JoinStrategy int

const (
	StrategyCogroup JoinStrategy = iota
	StrategyBroadcastLeft
	StrategyBroadcastRight
)

// ExchangeOptions configures collect_exchange_steps's per-operator
// decisions; the zero value picks cogroup for every join and leaves
// the aggregate exchange disabled (AggregateExchangeEnabled is false).
type ExchangeOptions struct {
	// JoinStrategy, if set, is consulted for every intermediate.Join;
	// returning the zero value (StrategyCogroup) is the default.
	JoinStrategy func(*intermediate.Join) JoinStrategy
	// AggregateExchangeEnabled disables the aggregate-exchange lowering
	// for aggregates whose functions are all incremental, falling back
	// to the group-exchange strategy, when turned off.
	AggregateExchangeEnabled bool
}

// CollectExchangeSteps lowers g's logical operators into the step form,
// returning the step-plan graph of processes and exchanges it produces.
func CollectExchangeSteps(g *intermediate.Graph, opts ExchangeOptions) *plan.Graph {
	b := &exchangeBuilder{opts: opts, graph: plan.NewGraph()}
	for _, sink := range g.Sinks {
		root := b.lower(sink)
		b.registerProcess(collectStepOperators(root), []step.Operator{root})
	}
	return b.graph
}

type exchangeBuilder struct {
	opts  ExchangeOptions
	graph *plan.Graph
}

func (b *exchangeBuilder) strategy(n *intermediate.Join) JoinStrategy {
	if b.opts.JoinStrategy == nil {
		return StrategyCogroup
	}
	return b.opts.JoinStrategy(n)
}

// lower converts op into the step operator that replaces it within the
// process under construction. Boundary operators (a join needing an
// exchange, a group-backed aggregate/distinct/limit, a set operator)
// terminate the process they were called from and start a new one,
// returning its root step operator.
func (b *exchangeBuilder) lower(op intermediate.Operator) step.Operator {
	switch n := op.(type) {
	case *intermediate.Scan:
		return &step.Scan{Source: n.Source, Columns: n.Columns, Lower: n.Lower, Upper: n.Upper}

	case *intermediate.Find:
		return &step.Find{Source: n.Source, Columns: n.Columns, Keys: n.Keys}

	case *intermediate.Values:
		return &step.Values{Columns: n.Columns, Rows: n.Rows}

	case *intermediate.Project:
		cols := make([]step.ProjectColumn, len(n.Columns))
		for i, c := range n.Columns {
			cols[i] = step.ProjectColumn{Destination: c.Destination, Value: c.Value}
		}
		return &step.Project{Input: b.lower(n.Input), Columns: cols}

	case *intermediate.Filter:
		return &step.Filter{Input: b.lower(n.Input), Condition: n.Condition}

	case *intermediate.Identify:
		return &step.Identify{Input: b.lower(n.Input), Destination: n.Destination}

	case *intermediate.Buffer:
		return &step.Buffer{Input: b.lower(n.Input), Size: n.Size}

	case *intermediate.Emit:
		return &step.Emit{Input: b.lower(n.Input), Columns: n.Columns}

	case *intermediate.Write:
		cols := make([]relation.WriteMapping, len(n.Columns))
		copy(cols, n.Columns)
		return &step.Write{Operator: step.WriteKind(n.Operator), Input: b.lower(n.Input), Destination: n.Destination, Columns: cols}

	case *intermediate.Join:
		return b.lowerJoin(n)

	case *intermediate.Aggregate:
		return b.lowerAggregate(n)

	case *intermediate.Distinct:
		return b.lowerDistinct(n)

	case *intermediate.Limit:
		return b.lowerLimit(n)

	case *intermediate.Union:
		return b.lowerUnion(n)

	case *intermediate.Intersection:
		return b.lowerIntersectionDifference(n.Left, n.Right, n.Mappings, n.Quantifier, false)

	case *intermediate.Difference:
		return b.lowerIntersectionDifference(n.Left, n.Right, n.Mappings, n.Quantifier, true)

	default:
		return nil
	}
}

func (b *exchangeBuilder) lowerJoin(n *intermediate.Join) step.Operator {
	leftVars := toSet(definedVariables(n.Left))
	rightVars := toSet(definedVariables(n.Right))
	pairs, residual := extractEquiJoinKeys(n.Condition, leftVars, rightVars)

	switch b.strategy(n) {
	case StrategyBroadcastLeft, StrategyBroadcastRight:
		broadcastLeft := b.strategy(n) == StrategyBroadcastLeft
		var probeSide, broadcastOp intermediate.Operator
		if broadcastLeft {
			probeSide, broadcastOp = n.Right, n.Left
		} else {
			probeSide, broadcastOp = n.Left, n.Right
		}
		ex := &plan.Broadcast{Columns: definedVariables(broadcastOp)}
		handle := b.offerInto(broadcastOp, ex.Columns, ex)
		probeInput := b.lower(probeSide)
		if len(pairs) > 0 {
			keys := make([]relation.KeyPiece, len(pairs))
			for i, p := range pairs {
				keys[i] = relation.KeyPiece{Value: &scalar.VariableReference{Variable: probeVarFor(p, broadcastLeft)}}
			}
			return &step.JoinFind{Input: probeInput, Source: handle, JoinKind: n.JoinKind, Keys: keys, Condition: residual}
		}
		return &step.JoinScan{Input: probeInput, Source: handle, JoinKind: n.JoinKind, Condition: n.Condition}

	default: // StrategyCogroup
		leftKeys := make([]descriptor.Variable, len(pairs))
		rightKeys := make([]descriptor.Variable, len(pairs))
		for i, p := range pairs {
			leftKeys[i], rightKeys[i] = p.Left, p.Right
		}
		leftOutputs := definedVariables(n.Left)
		rightOutputs := definedVariables(n.Right)
		leftEx := &plan.Group{Columns: leftOutputs, Keys: leftKeys}
		rightEx := &plan.Group{Columns: rightOutputs, Keys: rightKeys}
		leftHandle := b.offerInto(n.Left, leftOutputs, leftEx)
		rightHandle := b.offerInto(n.Right, rightOutputs, rightEx)

		keyVars := make([]descriptor.Variable, len(pairs))
		for i := range pairs {
			keyVars[i] = descriptor.New(descriptor.FrameVariable, "cogroup_key#"+uuid.NewString())
		}
		sortKeys := make([]relation.SortKey, len(keyVars))
		for i, v := range keyVars {
			sortKeys[i] = relation.SortKey{Variable: v}
		}
		take := &step.TakeCogroup{
			Keys: sortKeys,
			Sources: []step.CogroupSource{
				{Source: leftHandle, Columns: leftOutputs},
				{Source: rightHandle, Columns: rightOutputs},
			},
		}
		return &step.Join{Input: take, JoinKind: n.JoinKind, Condition: residual}
	}
}

// probeVarFor returns, from an equi-join pair, the variable that lives
// on the probing (non-broadcast) side.
func probeVarFor(p equiPair, broadcastLeft bool) descriptor.Variable {
	if broadcastLeft {
		return p.Right
	}
	return p.Left
}

func (b *exchangeBuilder) lowerAggregate(n *intermediate.Aggregate) step.Operator {
	incremental := len(n.Aggregations) > 0
	for _, agg := range n.Aggregations {
		decl := binding.Extract[*function.AggregateDeclaration](agg.Function)
		if !decl.Incremental {
			incremental = false
			break
		}
	}
	columns := append(append([]descriptor.Variable{}, n.GroupKeys...), aggregateDestinations(n.Aggregations)...)

	if incremental && b.opts.AggregateExchangeEnabled {
		ex := &plan.Aggregate{Columns: columns, Keys: n.GroupKeys, Aggregations: n.Aggregations}
		inputVars := definedVariables(n.Input)
		handle := b.offerInto(n.Input, inputVars, ex)
		take := &step.TakeGroup{Source: handle, Columns: inputVars}
		return &step.Flatten{Input: take}
	}

	inputVars := definedVariables(n.Input)
	ex := &plan.Group{Columns: inputVars, Keys: n.GroupKeys}
	handle := b.offerInto(n.Input, inputVars, ex)
	take := &step.TakeGroup{Source: handle, Columns: inputVars}
	return &step.Aggregate{Input: take, GroupKeys: n.GroupKeys, Aggregations: n.Aggregations}
}

func (b *exchangeBuilder) lowerDistinct(n *intermediate.Distinct) step.Operator {
	inputVars := definedVariables(n.Input)
	limit := uint64(1)
	ex := &plan.Group{Columns: inputVars, Keys: n.Keys, Limit: &limit}
	handle := b.offerInto(n.Input, inputVars, ex)
	take := &step.TakeGroup{Source: handle, Columns: inputVars}
	return &step.Flatten{Input: take}
}

func (b *exchangeBuilder) lowerLimit(n *intermediate.Limit) step.Operator {
	inputVars := definedVariables(n.Input)
	count := n.Count
	if len(n.GroupKeys) == 0 && len(n.SortKeys) == 0 {
		ex := &plan.Forward{Columns: inputVars, Limit: &count}
		handle := b.offerInto(n.Input, inputVars, ex)
		return &step.TakeFlat{Source: handle, Columns: inputVars}
	}
	ex := &plan.Group{Columns: inputVars, Keys: n.GroupKeys, SortKeys: n.SortKeys, Limit: &count}
	handle := b.offerInto(n.Input, inputVars, ex)
	take := &step.TakeGroup{Source: handle, Columns: inputVars}
	return &step.Flatten{Input: take}
}

func (b *exchangeBuilder) lowerUnion(n *intermediate.Union) step.Operator {
	columns := make([]descriptor.Variable, len(n.Mappings))
	for i, m := range n.Mappings {
		columns[i] = m.Destination
	}
	if n.Quantifier == relation.All {
		ex := &plan.Forward{Columns: columns}
		b.offerSideInto(n.Left, n.Mappings, true, ex)
		b.offerSideInto(n.Right, n.Mappings, false, ex)
		handle := binding.NewHandle(binding.Relation, ex)
		return &step.TakeFlat{Source: handle, Columns: columns}
	}
	limit := uint64(1)
	ex := &plan.Group{Columns: columns, Keys: columns, Limit: &limit}
	b.offerSideInto(n.Left, n.Mappings, true, ex)
	b.offerSideInto(n.Right, n.Mappings, false, ex)
	handle := binding.NewHandle(binding.Relation, ex)
	take := &step.TakeGroup{Source: handle, Columns: columns}
	return &step.Flatten{Input: take}
}

func (b *exchangeBuilder) lowerIntersectionDifference(left, right intermediate.Operator, mappings []relation.SetMapping, quantifier relation.SetQuantifier, isDifference bool) step.Operator {
	keys := leftSetVariables(mappings)
	rightKeys := rightSetVariables(mappings)
	var limit *uint64
	if quantifier == relation.Distinct {
		one := uint64(1)
		limit = &one
	}
	leftOutputs := definedVariables(left)
	rightOutputs := definedVariables(right)
	leftEx := &plan.Group{Columns: leftOutputs, Keys: keys, Limit: limit}
	rightEx := &plan.Group{Columns: rightOutputs, Keys: rightKeys, Limit: limit}
	leftHandle := b.offerInto(left, leftOutputs, leftEx)
	rightHandle := b.offerInto(right, rightOutputs, rightEx)

	sortKeys := make([]relation.SortKey, len(keys))
	for i := range keys {
		sortKeys[i] = relation.SortKey{Variable: descriptor.New(descriptor.FrameVariable, "setop_key#"+uuid.NewString())}
	}
	take := &step.TakeCogroup{
		Keys: sortKeys,
		Sources: []step.CogroupSource{
			{Source: leftHandle, Columns: leftOutputs},
			{Source: rightHandle, Columns: rightOutputs},
		},
	}
	if isDifference {
		return &step.Difference{Input: take}
	}
	return &step.Intersection{Input: take}
}

// offerInto lowers op into its own process, appends a step.Offer
// writing columns into ex, registers the process, and returns a handle
// referencing ex for the consuming take_* to extract.
func (b *exchangeBuilder) offerInto(op intermediate.Operator, columns []descriptor.Variable, ex plan.Exchange) binding.Handle {
	built := b.lower(op)
	offerCols := make([]relation.ColumnOffer, len(columns))
	for i, c := range columns {
		offerCols[i] = relation.ColumnOffer{Source: c, Destination: c}
	}
	handle := binding.NewHandle(binding.Relation, ex)
	offer := &step.Offer{Input: built, Destination: handle, Columns: offerCols}
	b.registerProcess(append(collectStepOperators(built), offer), []step.Operator{offer})
	return handle
}

// offerSideInto is offerInto specialized for a union/intersection/
// difference side: its source columns are the side's own mapped
// variables (Left or Right of each SetMapping), offered into the
// destination columns ex already names.
func (b *exchangeBuilder) offerSideInto(op intermediate.Operator, mappings []relation.SetMapping, left bool, ex plan.Exchange) {
	built := b.lower(op)
	var offerCols []relation.ColumnOffer
	for _, m := range mappings {
		side := m.Left
		if !left {
			side = m.Right
		}
		if side == nil {
			continue
		}
		offerCols = append(offerCols, relation.ColumnOffer{Source: *side, Destination: m.Destination})
	}
	handle := binding.NewHandle(binding.Relation, ex)
	offer := &step.Offer{Input: built, Destination: handle, Columns: offerCols}
	b.registerProcess(append(collectStepOperators(built), offer), []step.Operator{offer})
}

// registerProcess wraps ops/sinks into a *plan.Process, registers it,
// and connects every exchange its take_*/offer operators reference.
func (b *exchangeBuilder) registerProcess(ops []step.Operator, sinks []step.Operator) *plan.Process {
	proc := &plan.Process{Operators: ops, Sinks: sinks}
	b.graph.AddNode(proc)
	for _, op := range ops {
		switch n := op.(type) {
		case *step.TakeFlat:
			if ex, ok := binding.ExtractIf[plan.Exchange](n.Source); ok {
				b.graph.Connect(ex, proc)
			}
		case *step.TakeGroup:
			if ex, ok := binding.ExtractIf[plan.Exchange](n.Source); ok {
				b.graph.Connect(ex, proc)
			}
		case *step.TakeCogroup:
			for _, src := range n.Sources {
				if ex, ok := binding.ExtractIf[plan.Exchange](src.Source); ok {
					b.graph.Connect(ex, proc)
				}
			}
		case *step.Offer:
			if ex, ok := binding.ExtractIf[plan.Exchange](n.Destination); ok {
				b.graph.Connect(proc, ex)
			}
		}
	}
	return proc
}

// collectStepOperators walks op's Inputs() chain, gathering every
// operator belonging to the same process (it always terminates at a
// take_*/scan/find/values leaf, which have nil Inputs()).
func collectStepOperators(op step.Operator) []step.Operator {
	var out []step.Operator
	var walk func(step.Operator)
	walk = func(n step.Operator) {
		if n == nil {
			return
		}
		out = append(out, n)
		for _, in := range n.Inputs() {
			walk(in)
		}
	}
	walk(op)
	return out
}

type equiPair struct {
	Left, Right descriptor.Variable
}

// extractEquiJoinKeys splits cond's AND-decomposed terms into equality
// comparisons between one left-defined and one right-defined variable
// (the cogroup/broadcast key candidates) and everything else (the
// residual condition still checked after the physical join).
func extractEquiJoinKeys(cond scalar.Expression, leftVars, rightVars map[descriptor.Variable]bool) ([]equiPair, scalar.Expression) {
	if cond == nil {
		return nil, nil
	}
	var pairs []equiPair
	var residual []scalar.Expression
	for _, term := range decomposeAnd(cond) {
		cmp, ok := term.(*scalar.Compare)
		if !ok || cmp.Operator != scalar.Equal {
			residual = append(residual, term)
			continue
		}
		leftRef, leftIsVar := cmp.Left.(*scalar.VariableReference)
		rightRef, rightIsVar := cmp.Right.(*scalar.VariableReference)
		switch {
		case leftIsVar && rightIsVar && leftVars[leftRef.Variable] && rightVars[rightRef.Variable]:
			pairs = append(pairs, equiPair{Left: leftRef.Variable, Right: rightRef.Variable})
		case leftIsVar && rightIsVar && rightVars[leftRef.Variable] && leftVars[rightRef.Variable]:
			pairs = append(pairs, equiPair{Left: rightRef.Variable, Right: leftRef.Variable})
		default:
			residual = append(residual, term)
		}
	}
	if len(residual) == 0 {
		return pairs, nil
	}
	return pairs, mergeAnd(residual)
}

func aggregateDestinations(aggs []relation.Aggregation) []descriptor.Variable {
	out := make([]descriptor.Variable, len(aggs))
	for i, a := range aggs {
		out[i] = a.Destination
	}
	return out
}

func rightSetVariables(mappings []relation.SetMapping) []descriptor.Variable {
	var vars []descriptor.Variable
	for _, m := range mappings {
		if m.Right != nil {
			vars = append(vars, *m.Right)
		}
	}
	return vars
}
