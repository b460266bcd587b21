package ops

import "math"

// tanhRule represents the hyperbolic tangent: tanh(x) = (exp(x) - exp(-x)) / (exp(x) + exp(-x)).
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input = grad_output * (1 - output²).
var tanhRule = Rule{
	Name:     "tanh",
	Arity:    1,
	Forward:  tanhForward,
	Backward: tanhBackward,
}

func tanhForward(in [MaxArity]float64, _ float64) float64 {
	return math.Tanh(in[0])
}

func tanhBackward(l Local) [MaxArity]float64 {
	return [MaxArity]float64{(1 - l.Out*l.Out) * l.OutGrad}
}
