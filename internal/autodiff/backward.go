package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Backward computes d(v)/d(n) for every node n reachable from v and adds
// it into n's gradient.
//
// Algorithm:
//  1. Depth-first post-order from v: each node is appended after all of
//     its children, each node once
//  2. Seed v's gradient with 1
//  3. Walk the order in reverse and apply each node's backward rule
//
// Because a node comes after every one of its children, walking in reverse
// reaches a node only after all of its parents have pushed their
// contribution into it.
//
// Gradients are accumulated, not assigned. Call ZeroGrad (or Graph.Release)
// before reusing nodes under a new root.
func (v Value) Backward() {
	v.node()
	g := v.g
	order := g.topo(v.id)

	g.nodes[v.id].grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		g.propagate(order[i])
	}
}

// TopologicalOrder returns the nodes reachable from v, children before
// parents, ending with v itself.
func (v Value) TopologicalOrder() []Value {
	v.node()
	g := v.g
	order := g.topo(v.id)
	out := make([]Value, len(order))
	for i, id := range order {
		out[i] = Value{g: g, id: id, gen: g.nodes[id].gen}
	}
	return out
}

// topo returns the post-order of the subgraph rooted at root.
// The returned slice is scratch owned by g and valid until the next call.
func (g *Graph) topo(root NodeID) []NodeID {
	g.nextPass()

	order := g.order[:0]
	stack := append(g.stack[:0], frame{id: root})
	g.visited[root] = g.pass

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := &g.nodes[top.id]
		if top.next < n.arity {
			child := n.in[top.next]
			top.next++
			if g.visited[child] != g.pass {
				g.visited[child] = g.pass
				stack = append(stack, frame{id: child})
			}
			continue
		}
		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}

	g.order, g.stack = order, stack
	return order
}

// nextPass starts a new visited generation sized to the arena.
func (g *Graph) nextPass() {
	if n := len(g.nodes); len(g.visited) < n {
		g.visited = append(g.visited, make([]uint32, n-len(g.visited))...)
	}
	g.pass++
	if g.pass == 0 {
		clear(g.visited)
		g.pass = 1
	}
}

// propagate applies the backward rule of node id to its children.
func (g *Graph) propagate(id NodeID) {
	n := &g.nodes[id]
	if n.arity == 0 {
		return
	}

	local := ops.Local{Out: n.data, OutGrad: n.grad, Aux: n.aux}
	for j := uint8(0); j < n.arity; j++ {
		local.In[j] = g.nodes[n.in[j]].data
	}

	contrib := ops.Lookup(n.kind).Backward(local)
	for j := uint8(0); j < n.arity; j++ {
		g.nodes[n.in[j]].grad += contrib[j]
	}
}
