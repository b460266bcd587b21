// Package train runs gradient-descent training of a small MLP on an
// in-memory dataset and records the per-step history.
package train

import (
	"log"
	"math"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is wrapped by every Config validation error.
var ErrInvalidConfig = errors.New("train: invalid config")

// Optimizer names accepted by Config.Optimizer.
const (
	OptimizerSGD  = "sgd"
	OptimizerAdam = "adam"
)

// Config holds the training hyperparameters.
type Config struct {
	Sizes      []int         // Layer widths after the input; the last must be 1
	Activation nn.Activation // Activation for every neuron (default: tanh)
	Optimizer  string        // "sgd" (default) or "adam"
	Steps      int           // Number of full-batch steps
	LR         float64       // Learning rate
	Momentum   float64       // SGD momentum, [0, 1)
	Seed       int64         // Seed for weight initialisation

	// LogEvery logs one line every N steps when Logger is set (0 = only the last step).
	LogEvery int
	Logger   *log.Logger
}

// DefaultConfig returns the reference setup: a [4, 4, 1] tanh network
// trained for 50 steps of plain SGD at learning rate 0.01.
func DefaultConfig() Config {
	return Config{
		Sizes:      []int{4, 4, 1},
		Activation: nn.Tanh,
		Optimizer:  OptimizerSGD,
		Steps:      50,
		LR:         0.01,
		Seed:       1,
		LogEvery:   1,
	}
}

// Validate checks the config.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no layers")
	}
	for i, s := range c.Sizes {
		if s <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "layer %d has size %d", i, s)
		}
	}
	if last := c.Sizes[len(c.Sizes)-1]; last != 1 {
		return errors.Wrapf(ErrInvalidConfig, "output layer must have 1 unit, got %d", last)
	}
	if c.Steps <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "steps = %d", c.Steps)
	}
	if !(c.LR > 0) || math.IsInf(c.LR, 0) {
		return errors.Wrapf(ErrInvalidConfig, "learning rate = %v", c.LR)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return errors.Wrapf(ErrInvalidConfig, "momentum = %v", c.Momentum)
	}
	if c.LogEvery < 0 {
		return errors.Wrapf(ErrInvalidConfig, "log every = %d", c.LogEvery)
	}
	switch strings.ToLower(c.Optimizer) {
	case "", OptimizerSGD, OptimizerAdam:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown optimizer %q", c.Optimizer)
	}
	return nil
}

// newOptimizer builds the configured optimizer over params.
func (c Config) newOptimizer(params []autodiff.Value) optim.Optimizer {
	if strings.ToLower(c.Optimizer) == OptimizerAdam {
		return optim.NewAdam(params, optim.AdamConfig{LR: c.LR})
	}
	return optim.NewSGD(params, optim.SGDConfig{LR: c.LR, Momentum: c.Momentum})
}

// shouldLog reports whether step (0-based) gets a log line.
func (c Config) shouldLog(step int) bool {
	if c.Logger == nil {
		return false
	}
	if step == c.Steps-1 {
		return true
	}
	return c.LogEvery > 0 && step%c.LogEvery == 0
}
