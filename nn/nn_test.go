// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModuleInterface verifies that concrete types implement Module interface.
func TestModuleInterface(t *testing.T) {
	g := autodiff.NewGraph()
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name   string
		module nn.Module
		params int
	}{
		{"Neuron", nn.NewNeuron(g, rng, 3, nn.Tanh), 4},
		{"Layer", nn.NewLayer(g, rng, 3, 4, nn.ReLU), 16},
		{"MLP", nn.NewMLP(g, rng, 3, []int{4, 4, 1}, nn.Tanh), 41},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.module.Parameters(), tt.params)
		})
	}
}

func TestMLPLoss(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, rand.New(rand.NewSource(1)), 2, []int{3, 1}, nn.Tanh)

	preds := []autodiff.Value{
		model.Predict(g, []float64{1, -1}),
		model.Predict(g, []float64{0.5, 2}),
	}
	loss, err := nn.SumSquaredError(preds, []float64{1, -1})
	require.NoError(t, err)

	loss.Backward()
	nonZero := 0
	for _, p := range model.Parameters() {
		if p.Grad() != 0 {
			nonZero++
		}
	}
	assert.Positive(t, nonZero)
	assert.GreaterOrEqual(t, loss.Data(), 0.0)
}
