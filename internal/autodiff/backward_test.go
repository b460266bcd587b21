package autodiff_test

import (
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTopologicalOrder_ChildrenFirst tests the ordering invariant.
func TestTopologicalOrder_ChildrenFirst(t *testing.T) {
	g := autodiff.NewGraph()
	a, b, c := g.Leaf(1), g.Leaf(2), g.Leaf(3)

	ab := a.Mul(b)
	root := ab.Add(ab.Mul(c)).Tanh().Add(a)

	order := root.TopologicalOrder()
	require.NotEmpty(t, order)
	assert.Equal(t, root.ID(), order[len(order)-1].ID(), "root is last")

	pos := make(map[autodiff.NodeID]int, len(order))
	for i, v := range order {
		_, seen := pos[v.ID()]
		assert.False(t, seen, "node %d appears twice", v.ID())
		pos[v.ID()] = i
	}

	for _, v := range order {
		for _, child := range v.Children() {
			cp, ok := pos[child.ID()]
			require.True(t, ok, "child %d missing from order", child.ID())
			assert.Less(t, cp, pos[v.ID()], "child %d must precede parent %d", child.ID(), v.ID())
		}
	}
}

// TestTopologicalOrder_OnlyReachable tests that unrelated nodes are skipped.
func TestTopologicalOrder_OnlyReachable(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(1)
	unrelated := g.Leaf(5).Exp()
	y := x.Pow(2)

	order := y.TopologicalOrder()
	require.Len(t, order, 2)
	assert.Equal(t, x.ID(), order[0].ID())
	assert.Equal(t, y.ID(), order[1].ID())

	y.Backward()
	assert.Equal(t, 0.0, unrelated.Grad())
}

// TestBackward_LeafRoot tests backward from a leaf.
func TestBackward_LeafRoot(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(3)

	x.Backward()
	assert.Equal(t, 1.0, x.Grad())
}

// TestBackward_IntermediateRoot tests backward from a node that has parents.
func TestBackward_IntermediateRoot(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(2)
	u := x.Pow(3)
	_ = u.MulScalar(10) // parent that must not contribute

	u.Backward()
	assert.Equal(t, 1.0, u.Grad())
	assert.InDelta(t, 12.0, x.Grad(), 1e-12)
}

// TestBackward_DeepChain tests a long chain does not overflow the stack.
func TestBackward_DeepChain(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(1)

	const depth = 100_000
	y := x
	for i := 0; i < depth; i++ {
		y = y.AddScalar(0)
	}
	y.Backward()

	assert.Equal(t, 1.0, x.Grad())
}

// TestBackward_Diamond tests the classic diamond where ordering matters.
//
//	   x
//	  / \
//	 a   b
//	  \ /
//	   y
func TestBackward_Diamond(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(0.3)
	a := x.Tanh()
	b := x.Exp()
	y := a.Mul(b)

	y.Backward()

	// dy/dx = (1 - tanh²x) e^x + tanh(x) e^x
	ta, eb := a.Data(), b.Data()
	want := (1-ta*ta)*eb + ta*eb
	assert.InDelta(t, want, x.Grad(), 1e-12)
}

// TestBackward_RepeatedSumOfParameter tests a parameter reused many times.
func TestBackward_RepeatedSumOfParameter(t *testing.T) {
	g := autodiff.NewGraph()
	w := g.Leaf(0.5)

	sum := w
	for i := 0; i < 9; i++ {
		sum = sum.Add(w)
	}
	sum.Backward()

	assert.Equal(t, 5.0, sum.Data())
	assert.Equal(t, 10.0, w.Grad())
}
