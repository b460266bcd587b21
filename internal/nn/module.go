// Package nn implements small neural network modules on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Module interface: Base interface for anything with trainable parameters
//   - Neuron: weighted sum plus bias followed by an activation
//   - Layer: a row of independent neurons over the same inputs
//   - MLP: stacked layers
//   - SumSquaredError: the loss used by the training loop
//
// Every parameter is a leaf Value in the caller's Graph. Create the model,
// take a Graph.Mark, and Release to it after each step.
package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Module is the base interface for all components with trainable parameters.
type Module interface {
	// Parameters returns every trainable leaf, in a stable order.
	Parameters() []autodiff.Value

	// ZeroGrad resets the gradient of every parameter.
	ZeroGrad()
}

// zeroGrad resets the gradients of params.
func zeroGrad(params []autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

// Inputs lifts a raw feature row into leaves of g.
func Inputs(g *autodiff.Graph, xs []float64) []autodiff.Value {
	return g.Leaves(xs)
}
