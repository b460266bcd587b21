package ops

import "math"

// expRule represents the exponential: output = e^a.
//
// Backward pass reuses the forward result:
//   - d(e^a)/da = e^a = output
var expRule = Rule{
	Name:     "exp",
	Arity:    1,
	Forward:  expForward,
	Backward: expBackward,
}

func expForward(in [MaxArity]float64, _ float64) float64 {
	return math.Exp(in[0])
}

func expBackward(l Local) [MaxArity]float64 {
	return [MaxArity]float64{l.Out * l.OutGrad}
}
