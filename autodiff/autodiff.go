// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Values live in a Graph arena. Every arithmetic operation appends a node
// recording its operands, and Backward walks the graph from a root in
// reverse topological order accumulating gradients.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    a := g.Leaf(-4)
//	    b := g.Leaf(2)
//	    c := a.Mul(b).Add(b.Pow(3))
//
//	    c.Backward()
//	    fmt.Println(a.Grad(), b.Grad()) // 2 8
//	}
//
// A training loop takes a Mark after creating its parameters and releases
// it at the end of every step, so the per-step nodes are reclaimed:
//
//	mark := g.Mark()
//	for step := range steps {
//	    loss := buildLoss(g)
//	    loss.Backward()
//	    update(params)
//	    g.Release(mark)
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Graph is the arena that owns every Value.
type Graph = autodiff.Graph

// Value is a handle to a scalar node in a Graph.
type Value = autodiff.Value

// NodeID indexes a node in its Graph.
type NodeID = autodiff.NodeID

// Mark is a Graph position returned by Graph.Mark.
type Mark = autodiff.Mark

// Operand is anything the generic operators lift into a Value:
// float64, float32, int, or a Value.
type Operand = autodiff.Operand

// Errors.
var (
	ErrInvalidExponent = autodiff.ErrInvalidExponent
	ErrStaleValue      = autodiff.ErrStaleValue
	ErrForeignValue    = autodiff.ErrForeignValue
)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Lift returns x as a Value in g. Plain numbers become new leaves.
func Lift[T Operand](g *Graph, x T) Value {
	return autodiff.Lift(g, x)
}

// Add returns a + b. Either side may be a plain number.
func Add[A, B Operand](g *Graph, a A, b B) Value {
	return autodiff.Add(g, a, b)
}

// Mul returns a * b.
func Mul[A, B Operand](g *Graph, a A, b B) Value {
	return autodiff.Mul(g, a, b)
}

// Neg returns -a.
func Neg[A Operand](g *Graph, a A) Value {
	return autodiff.Neg(g, a)
}

// Sub returns a - b.
func Sub[A, B Operand](g *Graph, a A, b B) Value {
	return autodiff.Sub(g, a, b)
}

// Div returns a / b.
func Div[A, B Operand](g *Graph, a A, b B) Value {
	return autodiff.Div(g, a, b)
}

// Pow returns a^k. The exponent must be a plain number; a Value exponent
// returns ErrInvalidExponent.
func Pow[A, K Operand](g *Graph, a A, k K) (Value, error) {
	return autodiff.Pow(g, a, k)
}
