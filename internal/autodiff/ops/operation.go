// Package ops defines the scalar operations the autodiff engine can record.
//
// Each operation is described by a Rule, which provides:
//   - Forward: the value of the output node given its input values
//   - Backward: the contribution to each input's gradient given the output gradient
//
// Rules live in a fixed table indexed by Kind, so a node only needs to store
// its Kind to be differentiable.
//
// Supported operations:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Pow: a ** k for a constant k (d/da = k * a^(k-1))
//   - Exp: e^a (d/da = e^a)
//   - Tanh: tanh(a) (d/da = 1 - tanh²(a))
//   - ReLU: max(0, a) (d/da = 1 if the output is > 0, else 0)
package ops

import "fmt"

// Kind identifies the operation that produced a node.
type Kind uint8

// Operation kinds. None marks leaves.
const (
	None Kind = iota
	Add
	Mul
	Pow
	Exp
	Tanh
	ReLU

	numKinds
)

// MaxArity is the largest number of inputs any operation takes.
const MaxArity = 2

// Local carries everything a backward rule may read.
type Local struct {
	Out     float64           // output value
	OutGrad float64           // accumulated gradient of the output
	In      [MaxArity]float64 // input values, unused slots are zero
	Aux     float64           // constant operand (the exponent for Pow)
}

// Rule describes a single operation.
type Rule struct {
	// Name is the diagnostic op tag ("add", "mul", ...).
	Name string

	// Arity is the number of node inputs (0 for leaves).
	Arity int

	// Forward computes the output value from the input values.
	Forward func(in [MaxArity]float64, aux float64) float64

	// Backward returns the amount to add into each input's gradient.
	//
	// Example for Add:
	//   Local{OutGrad: g}
	//   returns: [g, g]
	Backward func(l Local) [MaxArity]float64
}

var table = [numKinds]Rule{
	None: noneRule,
	Add:  addRule,
	Mul:  mulRule,
	Pow:  powRule,
	Exp:  expRule,
	Tanh: tanhRule,
	ReLU: reluRule,
}

// Lookup returns the rule for k.
// It panics if k is not a known kind.
func Lookup(k Kind) Rule {
	if !k.Valid() {
		panic(fmt.Sprintf("ops: unknown kind %d", k))
	}
	return table[k]
}

// Kinds returns every known kind, None included, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := None; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k < numKinds
}

// String returns the op tag.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return table[k].Name
}

var noneRule = Rule{
	Name:  "none",
	Arity: 0,
	Forward: func(_ [MaxArity]float64, _ float64) float64 {
		return 0
	},
	Backward: func(_ Local) [MaxArity]float64 {
		return [MaxArity]float64{}
	},
}
