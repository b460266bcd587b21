package autodiff

import "github.com/pkg/errors"

var (
	// ErrInvalidExponent is returned by Pow when the exponent is a Value.
	// Only constant exponents are differentiable.
	ErrInvalidExponent = errors.New("autodiff: exponent must be a constant number, not a Value")

	// ErrStaleValue means the handle refers to a node discarded by Release or Reset.
	ErrStaleValue = errors.New("autodiff: stale value")

	// ErrForeignValue means two handles from different graphs were combined.
	ErrForeignValue = errors.New("autodiff: value belongs to a different graph")
)
