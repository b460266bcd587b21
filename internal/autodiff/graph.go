// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Architecture:
//   - Graph: an arena that owns every node created while building expressions
//   - Value: a small handle into the arena, with operator methods
//   - ops.Rule: per-operation forward formula and local backward rule
//   - Backward: topological sort from a root, then rules applied in reverse
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Leaf(0.5)
//	f := x.MulScalar(2).Tanh()
//	f.Backward()
//	fmt.Println(x.Grad()) // 2 * (1 - tanh²(1))
//
// Gradients accumulate. Zero them (Value.ZeroGrad, Graph.ZeroGrad) before
// calling Backward on a new root, or use Mark/Release around each step.
//
// A Graph is not safe for concurrent use.
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/pkg/errors"
)

// NodeID addresses a node inside its Graph.
type NodeID int32

// node is a single arena slot.
type node struct {
	data  float64
	grad  float64
	aux   float64 // exponent for ops.Pow
	in    [ops.MaxArity]NodeID
	arity uint8
	kind  ops.Kind
	gen   uint32
	label string
}

// Mark is an arena position returned by Graph.Mark.
type Mark int

// frame is a DFS stack entry used by topo.
type frame struct {
	id   NodeID
	next uint8
}

// Graph owns the nodes of one or more expressions.
//
// Children are always created before their parents, so every edge points
// to a lower NodeID and the graph cannot contain a cycle.
type Graph struct {
	nodes []node
	gen   uint32

	// Backward scratch, reused between calls.
	visited []uint32
	pass    uint32
	order   []NodeID
	stack   []frame
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Leaf creates a node with no children holding x.
func (g *Graph) Leaf(x float64) Value {
	return g.push(node{data: x, kind: ops.None})
}

// Leaves creates one leaf per element of xs.
func (g *Graph) Leaves(xs []float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = g.Leaf(x)
	}
	return out
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Mark returns the current arena position.
//
// Typical training use: create parameters, take a mark, and Release to it
// after every step so per-step nodes are discarded.
func (g *Graph) Mark() Mark {
	return Mark(len(g.nodes))
}

// Release discards every node created after m and zeroes the gradients
// of the nodes that remain. Handles to discarded nodes become stale.
//
// It panics if m is beyond the current arena length.
func (g *Graph) Release(m Mark) {
	if int(m) < 0 || int(m) > len(g.nodes) {
		panic("autodiff: release mark is out of range")
	}
	g.nodes = g.nodes[:m]
	g.gen++
	g.ZeroGrad()
}

// Reset discards every node.
func (g *Graph) Reset() {
	g.Release(0)
}

// ZeroGrad sets the gradient of every live node to 0.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// push appends n to the arena and returns its handle.
func (g *Graph) push(n node) Value {
	n.gen = g.gen
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	return Value{g: g, id: id, gen: g.gen}
}

// unary records a single-input operation.
func (g *Graph) unary(k ops.Kind, a Value, aux float64) Value {
	rule := ops.Lookup(k)
	in := [ops.MaxArity]float64{g.at(a).data}
	return g.push(node{
		data:  rule.Forward(in, aux),
		aux:   aux,
		in:    [ops.MaxArity]NodeID{a.id},
		arity: 1,
		kind:  k,
	})
}

// binary records a two-input operation.
func (g *Graph) binary(k ops.Kind, a, b Value) Value {
	rule := ops.Lookup(k)
	in := [ops.MaxArity]float64{g.at(a).data, g.at(b).data}
	return g.push(node{
		data:  rule.Forward(in, 0),
		in:    [ops.MaxArity]NodeID{a.id, b.id},
		arity: 2,
		kind:  k,
	})
}

// at returns the slot behind v after checking that v is live and belongs to g.
func (g *Graph) at(v Value) *node {
	if v.g != g {
		if v.g == nil {
			panic(errors.Wrap(ErrStaleValue, "zero Value used"))
		}
		panic(errors.Wrapf(ErrForeignValue, "node %d", v.id))
	}
	if int(v.id) >= len(g.nodes) || g.nodes[v.id].gen != v.gen {
		panic(errors.Wrapf(ErrStaleValue, "node %d was released", v.id))
	}
	return &g.nodes[v.id]
}
