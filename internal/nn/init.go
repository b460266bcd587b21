package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Uniform creates a leaf drawn from U(-1, 1).
//
// rng is owned by the caller so that runs are reproducible per seed.
func Uniform(g *autodiff.Graph, rng *rand.Rand) autodiff.Value {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return g.Leaf(rng.Float64()*2 - 1)
}
