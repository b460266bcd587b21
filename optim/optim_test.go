// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"testing"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/optim"
	"github.com/stretchr/testify/assert"
)

func TestSGDMinimizesQuadratic(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(5)
	opt := optim.NewSGD([]autodiff.Value{x}, optim.SGDConfig{LR: 0.1})
	mark := g.Mark()

	for i := 0; i < 100; i++ {
		loss := x.Sub(g.Leaf(2)).Pow(2) // (x - 2)^2
		opt.ZeroGrad()
		loss.Backward()
		opt.Step()
		g.Release(mark)
	}

	assert.InDelta(t, 2.0, x.Data(), 1e-6)
	assert.Equal(t, 1, g.Len())
}
