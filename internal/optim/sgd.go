package optim

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum helps accelerate SGD in relevant directions and dampens oscillations.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params   []autodiff.Value
	lr       float64
	momentum float64
	velocity []float64 // one slot per parameter, nil until first momentum step
	grads    []float64 // scratch
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []autodiff.Value, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
		grads:    make([]float64, len(params)),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	for i, p := range s.params {
		s.grads[i] = p.Grad()
	}

	update := s.grads
	if s.momentum != 0 {
		if s.velocity == nil {
			s.velocity = make([]float64, len(s.params))
		}
		// velocity = momentum * velocity + grad
		floats.Scale(s.momentum, s.velocity)
		floats.Add(s.velocity, s.grads)
		update = s.velocity
	}

	for i, p := range s.params {
		p.SetData(p.Data() - s.lr*update[i])
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Velocity returns a copy of the momentum buffer (nil before the first
// momentum step or when momentum is 0).
func (s *SGD) Velocity() []float64 {
	if s.velocity == nil {
		return nil
	}
	return append([]float64(nil), s.velocity...)
}

// LoadVelocity restores a momentum buffer previously returned by Velocity.
//
// Returns an error if the length does not match the parameter count.
func (s *SGD) LoadVelocity(v []float64) error {
	if len(v) != len(s.params) {
		return errors.Wrapf(ErrStateMismatch, "velocity has %d entries, want %d", len(v), len(s.params))
	}
	s.velocity = append([]float64(nil), v...)
	return nil
}
