package train

import (
	"github.com/pkg/errors"
)

// ErrInvalidDataset is wrapped by every Dataset validation error.
var ErrInvalidDataset = errors.New("train: invalid dataset")

// Dataset is a set of feature rows with one scalar target each.
type Dataset struct {
	X [][]float64
	Y []float64
}

// TinyDataset returns the four-example, three-feature set with ±1 targets
// used as the reference training problem.
func TinyDataset() Dataset {
	return Dataset{
		X: [][]float64{
			{2.0, 3.0, -1.0},
			{3.0, -1.0, 0.5},
			{0.5, 1.0, 1.0},
			{1.0, 1.0, -1.0},
		},
		Y: []float64{1.0, -1.0, -1.0, 1.0},
	}
}

// Len returns the number of examples.
func (d Dataset) Len() int {
	return len(d.X)
}

// Features returns the width of each row (0 for an empty dataset).
func (d Dataset) Features() int {
	if len(d.X) == 0 {
		return 0
	}
	return len(d.X[0])
}

// Validate checks that the dataset is non-empty and rectangular.
func (d Dataset) Validate() error {
	if len(d.X) == 0 {
		return errors.Wrap(ErrInvalidDataset, "no examples")
	}
	if len(d.X) != len(d.Y) {
		return errors.Wrapf(ErrInvalidDataset, "%d rows, %d targets", len(d.X), len(d.Y))
	}
	width := len(d.X[0])
	if width == 0 {
		return errors.Wrap(ErrInvalidDataset, "rows have no features")
	}
	for i, row := range d.X {
		if len(row) != width {
			return errors.Wrapf(ErrInvalidDataset, "row %d has %d features, want %d", i, len(row), width)
		}
	}
	return nil
}
