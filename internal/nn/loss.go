package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// ErrShapeMismatch is returned when predictions and targets disagree in length.
var ErrShapeMismatch = errors.New("nn: predictions and targets must have the same length")

// SumSquaredError computes Σ (predᵢ - targetᵢ)².
//
// Targets are lifted as constants, so gradients flow only into the
// predictions.
//
// Returns an error wrapping ErrShapeMismatch if the lengths differ or are zero.
func SumSquaredError(preds []autodiff.Value, targets []float64) (autodiff.Value, error) {
	if len(preds) != len(targets) {
		return autodiff.Value{}, errors.Wrapf(ErrShapeMismatch, "%d predictions, %d targets", len(preds), len(targets))
	}
	if len(preds) == 0 {
		return autodiff.Value{}, errors.Wrap(ErrShapeMismatch, "empty batch")
	}

	var loss autodiff.Value
	for i, p := range preds {
		term := p.SubScalar(targets[i]).Pow(2)
		if i == 0 {
			loss = term
			continue
		}
		loss = loss.Add(term)
	}
	return loss, nil
}

// MeanSquaredError is SumSquaredError divided by the number of terms.
func MeanSquaredError(preds []autodiff.Value, targets []float64) (autodiff.Value, error) {
	sum, err := SumSquaredError(preds, targets)
	if err != nil {
		return autodiff.Value{}, err
	}
	return sum.DivScalar(float64(len(preds))), nil
}
