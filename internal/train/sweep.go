package train

import (
	"github.com/born-ml/micrograd/internal/parallel"
	"github.com/pkg/errors"
)

// ErrNoResults is returned by Best for an empty result set.
var ErrNoResults = errors.New("train: no results")

// Sweep trains one network per seed. Runs are independent (each owns its
// graph) and execute concurrently according to pcfg.
//
// Results are returned in seed order. If any run fails, the error of the
// first failing seed is returned.
func Sweep(cfg Config, ds Dataset, seeds []int64, pcfg parallel.Config) ([]*Result, error) {
	if len(seeds) == 0 {
		return nil, errors.Wrap(ErrInvalidConfig, "no seeds")
	}

	results := make([]*Result, len(seeds))
	err := parallel.ForErr(len(seeds), func(i int) error {
		c := cfg
		c.Seed = seeds[i]
		res, err := Run(c, ds)
		if err != nil {
			return errors.Wrapf(err, "seed %d", seeds[i])
		}
		results[i] = res
		return nil
	}, pcfg)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds
}

// Best returns the result with the lowest final loss.
func Best(results []*Result) (*Result, error) {
	var best *Result
	for _, r := range results {
		if r == nil || r.History.Len() == 0 {
			continue
		}
		if best == nil || r.FinalLoss() < best.FinalLoss() {
			best = r
		}
	}
	if best == nil {
		return nil, ErrNoResults
	}
	return best, nil
}
