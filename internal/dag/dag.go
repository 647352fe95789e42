package dag

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a vertex with the given ID. Adding an existing ID does nothing.
func (g *Graph) AddNode(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.addNode(id)
}

func (g *Graph) addNode(id string) *node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &node{
		id:      id,
		callees: make(map[string]*node),
	}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n
}

// AddEdge records that `callerID` calls `calleeID`, adding either vertex when
// it is missing. Self-calls are rejected since they can never terminate a
// caller walk.
func (g *Graph) AddEdge(callerID, calleeID string) error {
	if callerID == calleeID {
		return &CycleError{Path: []string{callerID, callerID}}
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	caller := g.addNode(callerID)
	callee := g.addNode(calleeID)

	if _, ok := caller.callees[calleeID]; !ok {
		caller.calleeOrder = append(caller.calleeOrder, calleeID)
	}
	caller.callees[calleeID] = callee
	return nil
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// DetectCycles checks the graph for cycles and returns a *CycleError naming
// the first one found, or nil.
func (g *Graph) DetectCycles() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// permanent: fully visited, not part of a cycle.
	// stack: vertices on the current DFS path, in order.
	permanent := make(map[string]bool)
	onStack := make(map[string]int)
	var stack []string

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.id] {
			return nil
		}
		if pos, ok := onStack[n.id]; ok {
			path := append(append([]string(nil), stack[pos:]...), n.id)
			return &CycleError{Path: path}
		}

		onStack[n.id] = len(stack)
		stack = append(stack, n.id)

		for _, calleeID := range n.calleeOrder {
			if err := visit(n.callees[calleeID]); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, n.id)
		permanent[n.id] = true
		return nil
	}

	for _, id := range g.order {
		if err := visit(g.nodes[id]); err != nil {
			return err
		}
	}
	return nil
}
