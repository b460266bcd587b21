package ops

// mulRule represents multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += outputGrad * b
//   - d(a*b)/db = a, so grad_b += outputGrad * a
//
// When a and b are the same node both contributions land on it, which
// gives the expected 2a for a*a.
var mulRule = Rule{
	Name:     "mul",
	Arity:    2,
	Forward:  mulForward,
	Backward: mulBackward,
}

func mulForward(in [MaxArity]float64, _ float64) float64 {
	return in[0] * in[1]
}

func mulBackward(l Local) [MaxArity]float64 {
	a, b := l.In[0], l.In[1]
	return [MaxArity]float64{b * l.OutGrad, a * l.OutGrad}
}
