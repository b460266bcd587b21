package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// MLP represents a Multi-Layer Perceptron.
//
// Example:
//
//	g := autodiff.NewGraph()
//	rng := rand.New(rand.NewSource(1))
//	net := nn.NewMLP(g, rng, 3, []int{4, 4, 1}, nn.Tanh)
//	out := net.Forward(nn.Inputs(g, []float64{2, 3, -1}))
type MLP struct {
	layers []*Layer
}

// NewMLP creates a network with nin inputs and one layer per entry of nouts.
// Every neuron uses act, the output layer included.
//
// Parameters are labelled "l<i>.n<j>.w<k>" and "l<i>.n<j>.b".
func NewMLP(g *autodiff.Graph, rng *rand.Rand, nin int, nouts []int, act Activation) *MLP {
	if len(nouts) == 0 {
		panic(errors.Wrap(ErrInvalidSize, "mlp needs at least one layer"))
	}

	sz := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		layers[i] = NewLayer(g, rng, sz[i], sz[i+1], act)
		layers[i].label(fmt.Sprintf("l%d", i))
	}
	return &MLP{layers: layers}
}

// Forward computes the output of the MLP for input x.
func (m *MLP) Forward(x []autodiff.Value) []autodiff.Value {
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// Predict lifts a raw row into g and returns the first output.
// Convenient for single-output networks.
func (m *MLP) Predict(g *autodiff.Graph, xs []float64) autodiff.Value {
	return m.Forward(Inputs(g, xs))[0]
}

// Parameters returns the parameters of all layers in the MLP.
func (m *MLP) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets gradients of all parameters in the MLP.
func (m *MLP) ZeroGrad() {
	zeroGrad(m.Parameters())
}

// Layers returns the network's layers.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Sizes returns [nin, nout0, nout1, ...].
func (m *MLP) Sizes() []int {
	sz := []int{m.layers[0].neurons[0].NumInputs()}
	for _, l := range m.layers {
		sz = append(sz, len(l.neurons))
	}
	return sz
}
