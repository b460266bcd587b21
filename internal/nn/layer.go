package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// Layer is a row of nout neurons that all read the same nin inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(g *autodiff.Graph, rng *rand.Rand, nin, nout int, act Activation) *Layer {
	if nout <= 0 {
		panic(errors.Wrapf(ErrInvalidSize, "layer outputs = %d", nout))
	}
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(g, rng, nin, act)
	}
	return &Layer{neurons: neurons}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(x []autodiff.Value) []autodiff.Value {
	outs := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Forward(x)
	}
	return outs
}

// Parameters returns the parameters of all neurons in the layer.
func (l *Layer) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets gradients of all parameters in the layer.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.Parameters())
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// label names every parameter "<prefix>.n<j>.w<k>" / "<prefix>.n<j>.b".
func (l *Layer) label(prefix string) {
	for j, n := range l.neurons {
		n.label(fmt.Sprintf("%s.n%d", prefix, j))
	}
}
