package plan

// Graph is the step-plan graph: a set of process/exchange Nodes joined
// by directed edges recording which node feeds which. Edges exist
// purely for well-formedness checking (every inter-process edge passes
// through exactly one exchange) and for tooling that wants to print or
// traverse the plan; the actual row flow is expressed by the
// step-operator take_*/offer bindings via descriptor handles.
type Graph struct {
	Nodes       []Node
	Downstreams map[Node][]Node
}

// NewGraph returns an empty step-plan graph.
func NewGraph() *Graph {
	return &Graph{Downstreams: map[Node][]Node{}}
}

// AddNode registers n with the graph if it is not already present.
func (g *Graph) AddNode(n Node) {
	for _, existing := range g.Nodes {
		if existing == n {
			return
		}
	}
	g.Nodes = append(g.Nodes, n)
}

// Connect records that rows flow from -> to, registering both nodes.
func (g *Graph) Connect(from, to Node) {
	g.AddNode(from)
	g.AddNode(to)
	g.Downstreams[from] = append(g.Downstreams[from], to)
}

// Exchanges returns every node in the graph that is not a Process.
func (g *Graph) Exchanges() []Exchange {
	var result []Exchange
	for _, n := range g.Nodes {
		if ex, ok := n.(Exchange); ok {
			result = append(result, ex)
		}
	}
	return result
}

// Processes returns every Process node in the graph.
func (g *Graph) Processes() []*Process {
	var result []*Process
	for _, n := range g.Nodes {
		if p, ok := n.(*Process); ok {
			result = append(result, p)
		}
	}
	return result
}
