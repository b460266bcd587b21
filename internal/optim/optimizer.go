// Package optim implements optimization algorithms for training networks
// built on the scalar autodiff engine.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's accumulated gradient and write the
// updated value back with SetData.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//	mark := g.Mark()
//
//	for step := range steps {
//	    loss := computeLoss(model, data)
//
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//
//	    g.Release(mark)
//	}
package optim

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// ErrStateMismatch is returned by LoadState when the state does not fit the parameters.
var ErrStateMismatch = errors.New("optim: state does not match parameters")

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// Gradients copies the current gradient of each parameter into a new slice.
func Gradients(params []autodiff.Value) []float64 {
	grads := make([]float64, len(params))
	for i, p := range params {
		grads[i] = p.Grad()
	}
	return grads
}

// zeroGrad clears the gradients of params.
func zeroGrad(params []autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
