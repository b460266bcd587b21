package ops

// addRule represents addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += outputGrad
//   - d(a+b)/db = 1, so grad_b += outputGrad
var addRule = Rule{
	Name:     "add",
	Arity:    2,
	Forward:  addForward,
	Backward: addBackward,
}

func addForward(in [MaxArity]float64, _ float64) float64 {
	return in[0] + in[1]
}

func addBackward(l Local) [MaxArity]float64 {
	return [MaxArity]float64{l.OutGrad, l.OutGrad}
}
