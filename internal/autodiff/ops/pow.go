package ops

import "math"

// powRule represents raising to a constant power: output = a ** k.
//
// The exponent k is stored in Local.Aux and is never a node, so no
// gradient flows to it.
//
// Backward pass:
//   - d(a^k)/da = k * a^(k-1)
var powRule = Rule{
	Name:     "pow",
	Arity:    1,
	Forward:  powForward,
	Backward: powBackward,
}

func powForward(in [MaxArity]float64, k float64) float64 {
	return math.Pow(in[0], k)
}

func powBackward(l Local) [MaxArity]float64 {
	k := l.Aux
	return [MaxArity]float64{k * math.Pow(l.In[0], k-1) * l.OutGrad}
}
