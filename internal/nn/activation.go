package nn

import (
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// Activation selects the non-linearity applied by a Neuron.
type Activation int

// Supported activations. Tanh is the zero value and the default.
const (
	Tanh Activation = iota
	ReLU
	Linear
)

// Apply runs the activation on v.
func (a Activation) Apply(v autodiff.Value) autodiff.Value {
	switch a {
	case ReLU:
		return v.ReLU()
	case Linear:
		return v
	default:
		return v.Tanh()
	}
}

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	case Linear:
		return "linear"
	}
	return "unknown"
}

// ParseActivation parses "tanh", "relu" or "linear".
func ParseActivation(s string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tanh", "":
		return Tanh, nil
	case "relu":
		return ReLU, nil
	case "linear", "none":
		return Linear, nil
	}
	return Tanh, errors.Errorf("nn: unknown activation %q", s)
}
