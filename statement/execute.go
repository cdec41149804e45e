package statement

import "github.com/project-tsurugi/yugawara/plan"

// Execute runs a fully lowered step-plan graph.
type Execute struct {
	Graph *plan.Graph
}

func (*Execute) StatementKind() Kind { return KindExecute }
