package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// ErrInvalidSize is the panic value (wrapped) for non-positive layer sizes.
var ErrInvalidSize = errors.New("nn: size must be positive")

// Neuron computes act(b + Σ wᵢxᵢ).
//
// Weights and bias are drawn from U(-1, 1).
type Neuron struct {
	w   []autodiff.Value
	b   autodiff.Value
	act Activation
}

// NewNeuron creates a neuron with nin inputs in g.
//
// It panics with ErrInvalidSize if nin is not positive.
func NewNeuron(g *autodiff.Graph, rng *rand.Rand, nin int, act Activation) *Neuron {
	if nin <= 0 {
		panic(errors.Wrapf(ErrInvalidSize, "neuron inputs = %d", nin))
	}
	w := make([]autodiff.Value, nin)
	for i := range w {
		w[i] = Uniform(g, rng)
	}
	return &Neuron{w: w, b: Uniform(g, rng), act: act}
}

// Forward computes the neuron output for x.
// It panics if len(x) differs from the number of weights.
func (n *Neuron) Forward(x []autodiff.Value) autodiff.Value {
	if len(x) != len(n.w) {
		panic(fmt.Sprintf("Neuron: expected %d inputs, got %d", len(n.w), len(x)))
	}

	sum := n.b
	for i, wi := range n.w {
		sum = sum.Add(wi.Mul(x[i]))
	}
	return n.act.Apply(sum)
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []autodiff.Value {
	params := make([]autodiff.Value, len(n.w)+1)
	copy(params, n.w)
	params[len(n.w)] = n.b
	return params
}

// ZeroGrad resets gradients of all parameters in the neuron.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}

// NumInputs returns the number of weights.
func (n *Neuron) NumInputs() int {
	return len(n.w)
}

// Activation returns the neuron's non-linearity.
func (n *Neuron) Activation() Activation {
	return n.act
}

// label names the neuron's parameters with the given prefix.
func (n *Neuron) label(prefix string) {
	for i, w := range n.w {
		w.WithLabel(fmt.Sprintf("%s.w%d", prefix, i))
	}
	n.b.WithLabel(prefix + ".b")
}
