package autodiff

import (
	"github.com/pkg/errors"
)

// Operand is anything that can appear on either side of an operator:
// a raw number, which is lifted into a leaf, or an existing Value.
type Operand interface {
	float64 | float32 | int | Value
}

// Lift returns x as a Value in g. Numbers become new leaves; Values are
// checked to belong to g and returned unchanged.
func Lift[T Operand](g *Graph, x T) Value {
	switch x := any(x).(type) {
	case Value:
		if x.g != g {
			if x.g == nil {
				panic(errors.Wrap(ErrStaleValue, "zero Value used"))
			}
			panic(errors.Wrapf(ErrForeignValue, "node %d", x.id))
		}
		x.node()
		return x
	case float64:
		return g.Leaf(x)
	case float32:
		return g.Leaf(float64(x))
	case int:
		return g.Leaf(float64(x))
	}
	panic("autodiff: unreachable operand type")
}

// Add returns a + b. Either side may be a number.
func Add[A, B Operand](g *Graph, a A, b B) Value {
	return Lift(g, a).Add(Lift(g, b))
}

// Mul returns a * b. Either side may be a number.
func Mul[A, B Operand](g *Graph, a A, b B) Value {
	return Lift(g, a).Mul(Lift(g, b))
}

// Neg returns -a.
func Neg[A Operand](g *Graph, a A) Value {
	return Lift(g, a).Neg()
}

// Sub returns a - b, recorded as a + (-b), so 2 - x is differentiable in x.
func Sub[A, B Operand](g *Graph, a A, b B) Value {
	return Lift(g, a).Add(Lift(g, b).Neg())
}

// Div returns a / b, recorded as a * b**-1, so 2 / x is differentiable in x.
func Div[A, B Operand](g *Graph, a A, b B) Value {
	return Lift(g, a).Mul(Lift(g, b).Pow(-1))
}

// Pow returns a ** k.
//
// The exponent must be a number. Passing a Value returns ErrInvalidExponent
// and records nothing: differentiating through a variable exponent is not
// supported.
func Pow[A, K Operand](g *Graph, a A, k K) (Value, error) {
	var exp float64
	switch k := any(k).(type) {
	case Value:
		return Value{}, errors.Wrapf(ErrInvalidExponent, "got node %d", k.id)
	case float64:
		exp = k
	case float32:
		exp = float64(k)
	case int:
		exp = float64(k)
	}
	return Lift(g, a).Pow(exp), nil
}
