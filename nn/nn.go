// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural-network building blocks on top of autodiff.
//
// Example:
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    rng := rand.New(rand.NewSource(1))
//	    model := nn.NewMLP(g, rng, 3, []int{4, 4, 1}, nn.Tanh)
//
//	    out := model.Predict(g, []float64{2, 3, -1})
//	    out.Backward()
//	}
package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module is anything that owns trainable parameters.
type Module = nn.Module

// Activation selects a neuron non-linearity.
type Activation = nn.Activation

// Activations.
const (
	Tanh   = nn.Tanh
	ReLU   = nn.ReLU
	Linear = nn.Linear
)

// Errors.
var (
	ErrInvalidSize   = nn.ErrInvalidSize
	ErrShapeMismatch = nn.ErrShapeMismatch
)

// ParseActivation parses "tanh", "relu" or "linear".
func ParseActivation(s string) (Activation, error) {
	return nn.ParseActivation(s)
}

// Neuron is a weighted sum plus bias followed by an activation.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin weights drawn from U(-1, 1).
func NewNeuron(g *autodiff.Graph, rng *rand.Rand, nin int, act Activation) *Neuron {
	return nn.NewNeuron(g, rng, nin, act)
}

// Layer is a list of neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(g *autodiff.Graph, rng *rand.Rand, nin, nout int, act Activation) *Layer {
	return nn.NewLayer(g, rng, nin, nout, act)
}

// MLP is a stack of fully connected layers.
type MLP = nn.MLP

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
func NewMLP(g *autodiff.Graph, rng *rand.Rand, nin int, nouts []int, act Activation) *MLP {
	return nn.NewMLP(g, rng, nin, nouts, act)
}

// Inputs lifts a feature row into leaves of g.
func Inputs(g *autodiff.Graph, xs []float64) []autodiff.Value {
	return nn.Inputs(g, xs)
}

// SumSquaredError returns Σ (pred - target)².
func SumSquaredError(preds []autodiff.Value, targets []float64) (autodiff.Value, error) {
	return nn.SumSquaredError(preds, targets)
}

// MeanSquaredError returns the mean of (pred - target)².
func MeanSquaredError(preds []autodiff.Value, targets []float64) (autodiff.Value, error) {
	return nn.MeanSquaredError(preds, targets)
}
