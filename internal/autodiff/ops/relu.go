package ops

// reluRule represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if output > 0, else 0
//
// The mask is taken from the output, so an input of exactly zero passes
// no gradient.
var reluRule = Rule{
	Name:     "relu",
	Arity:    1,
	Forward:  reluForward,
	Backward: reluBackward,
}

func reluForward(in [MaxArity]float64, _ float64) float64 {
	if in[0] < 0 {
		return 0
	}
	return in[0]
}

func reluBackward(l Local) [MaxArity]float64 {
	if l.Out > 0 {
		return [MaxArity]float64{l.OutGrad}
	}
	return [MaxArity]float64{}
}
