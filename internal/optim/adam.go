package optim

import (
	"math"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []autodiff.Value
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int       // Timestep for bias correction
	m      []float64 // First moment estimates
	v      []float64 // Second moment estimates
}

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer with bias correction.
func NewAdam(params []autodiff.Value, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make([]float64, len(params)),
		v:      make([]float64, len(params)),
	}
}

// Step performs a single optimization step.
func (a *Adam) Step() {
	a.t++

	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	for i, p := range a.params {
		g := p.Grad()

		a.m[i] = a.beta1*a.m[i] + (1.0-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1.0-a.beta2)*g*g

		mHat := a.m[i] / biasCorrection1
		vHat := a.v[i] / biasCorrection2

		p.SetData(p.Data() - a.lr*mHat/(math.Sqrt(vHat)+a.eps))
	}
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	zeroGrad(a.params)
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// StepCount returns the number of steps taken.
func (a *Adam) StepCount() int {
	return a.t
}
