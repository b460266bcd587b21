package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/pkg/errors"
)

// Value is a handle to a node in a Graph.
//
// Values are small and meant to be passed by value. Operator methods record
// a new node in the same graph and return its handle. The zero Value is not
// usable; any method other than IsValid panics on it.
type Value struct {
	g   *Graph
	id  NodeID
	gen uint32
}

// node resolves v, panicking on zero, stale or released handles.
func (v Value) node() *node {
	if v.g == nil {
		panic(errors.Wrap(ErrStaleValue, "zero Value used"))
	}
	return v.g.at(v)
}

// IsValid reports whether v refers to a live node.
func (v Value) IsValid() bool {
	if v.g == nil || int(v.id) >= len(v.g.nodes) {
		return false
	}
	return v.g.nodes[v.id].gen == v.gen
}

// Graph returns the graph v belongs to.
func (v Value) Graph() *Graph {
	return v.g
}

// ID returns the arena index of v.
func (v Value) ID() NodeID {
	return v.id
}

// Data returns the forward value.
func (v Value) Data() float64 {
	return v.node().data
}

// SetData overwrites the forward value.
//
// Nodes already derived from v are not recomputed. This is meant for
// parameter updates between training steps.
func (v Value) SetData(x float64) {
	v.node().data = x
}

// Grad returns the accumulated gradient.
func (v Value) Grad() float64 {
	return v.node().grad
}

// ZeroGrad resets the gradient to 0.
func (v Value) ZeroGrad() {
	v.node().grad = 0
}

// Op returns the kind of operation that produced v (ops.None for leaves).
func (v Value) Op() ops.Kind {
	return v.node().kind
}

// IsLeaf reports whether v has no children.
func (v Value) IsLeaf() bool {
	return v.node().arity == 0
}

// Children returns the direct inputs of the operation that produced v.
// A node used twice (x*x) appears twice.
func (v Value) Children() []Value {
	n := v.node()
	out := make([]Value, n.arity)
	for i := range out {
		id := n.in[i]
		out[i] = Value{g: v.g, id: id, gen: v.g.nodes[id].gen}
	}
	return out
}

// Label returns the diagnostic name, if any.
func (v Value) Label() string {
	return v.node().label
}

// WithLabel sets the diagnostic name and returns v.
func (v Value) WithLabel(label string) Value {
	v.node().label = label
	return v
}

// String implements the Stringer interface for pretty printing.
func (v Value) String() string {
	if !v.IsValid() {
		return "Value(<invalid>)"
	}
	n := v.node()
	if n.label != "" {
		return fmt.Sprintf("Value(%s, data=%g, grad=%g, op=%s)", n.label, n.data, n.grad, n.kind)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%s)", n.data, n.grad, n.kind)
}

// Add returns v + o.
func (v Value) Add(o Value) Value {
	v.node()
	return v.g.binary(ops.Add, v, o)
}

// AddScalar returns v + k.
func (v Value) AddScalar(k float64) Value {
	return v.Add(v.lift(k))
}

// Mul returns v * o.
func (v Value) Mul(o Value) Value {
	v.node()
	return v.g.binary(ops.Mul, v, o)
}

// MulScalar returns v * k.
func (v Value) MulScalar(k float64) Value {
	return v.Mul(v.lift(k))
}

// Neg returns -v, recorded as v * -1.
func (v Value) Neg() Value {
	return v.MulScalar(-1)
}

// Sub returns v - o, recorded as v + (-o).
func (v Value) Sub(o Value) Value {
	return v.Add(o.Neg())
}

// SubScalar returns v - k.
func (v Value) SubScalar(k float64) Value {
	return v.Sub(v.lift(k))
}

// Pow returns v ** k for a constant exponent k.
func (v Value) Pow(k float64) Value {
	v.node()
	return v.g.unary(ops.Pow, v, k)
}

// Div returns v / o, recorded as v * o**-1.
func (v Value) Div(o Value) Value {
	return v.Mul(o.Pow(-1))
}

// DivScalar returns v / k.
func (v Value) DivScalar(k float64) Value {
	return v.Div(v.lift(k))
}

// Exp returns e ** v.
func (v Value) Exp() Value {
	v.node()
	return v.g.unary(ops.Exp, v, 0)
}

// Tanh returns tanh(v).
func (v Value) Tanh() Value {
	v.node()
	return v.g.unary(ops.Tanh, v, 0)
}

// ReLU returns max(0, v).
func (v Value) ReLU() Value {
	v.node()
	return v.g.unary(ops.ReLU, v, 0)
}

// lift creates a constant leaf in v's graph.
func (v Value) lift(k float64) Value {
	v.node()
	return v.g.Leaf(k)
}
