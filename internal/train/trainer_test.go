package train

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/parallel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_TinyDataset(t *testing.T) {
	cfg := DefaultConfig()

	res, err := Run(cfg, TinyDataset())
	require.NoError(t, err)

	require.Equal(t, cfg.Steps, res.History.Len())
	assert.Len(t, res.History.GradNorm, cfg.Steps)
	assert.Len(t, res.History.MaxGrad, cfg.Steps)
	assert.Len(t, res.Predictions, 4)
	assert.Len(t, res.Params, 41)

	// Small learning rate: the first steps descend monotonically.
	for i := 1; i < 10; i++ {
		assert.LessOrEqual(t, res.History.Loss[i], res.History.Loss[i-1]+1e-9, "step %d", i)
	}
	assert.Less(t, res.FinalLoss(), res.History.Loss[0])

	for i, m := range res.History.MaxGrad {
		assert.False(t, math.IsNaN(m), "step %d", i)
		assert.Less(t, m, 100.0, "step %d", i)
		assert.LessOrEqual(t, m, res.History.GradNorm[i]+1e-12)
	}
	for _, p := range res.Predictions {
		assert.True(t, p > -1 && p < 1, "tanh output in (-1, 1), got %v", p)
	}
}

func TestRun_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Steps = 20

	a, err := Run(cfg, TinyDataset())
	require.NoError(t, err)
	b, err := Run(cfg, TinyDataset())
	require.NoError(t, err)

	assert.Equal(t, a.History.Loss, b.History.Loss)
	assert.Equal(t, a.Params, b.Params)

	cfg.Seed = 2
	c, err := Run(cfg, TinyDataset())
	require.NoError(t, err)
	assert.NotEqual(t, a.Params, c.Params)
}

func TestRun_GraphStaysBounded(t *testing.T) {
	short := DefaultConfig()
	short.Steps = 2
	long := DefaultConfig()
	long.Steps = 40

	a, err := Run(short, TinyDataset())
	require.NoError(t, err)
	b, err := Run(long, TinyDataset())
	require.NoError(t, err)

	// Step nodes are released every iteration, so the peak does not grow.
	assert.Equal(t, a.GraphSize, b.GraphSize)
	assert.Greater(t, a.GraphSize, 41)
}

func TestRun_Optimizers(t *testing.T) {
	for _, name := range []string{OptimizerSGD, OptimizerAdam} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Optimizer = name
			cfg.Steps = 100
			cfg.LR = 0.05
			if name == OptimizerSGD {
				cfg.LR = 0.01
				cfg.Momentum = 0.9
			}

			res, err := Run(cfg, TinyDataset())
			require.NoError(t, err)
			assert.Less(t, res.FinalLoss(), res.History.Loss[0])
		})
	}
}

func TestRun_ReLU(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Activation = nn.ReLU
	cfg.Steps = 5

	res, err := Run(cfg, TinyDataset())
	require.NoError(t, err)
	for _, p := range res.Predictions {
		assert.GreaterOrEqual(t, p, 0.0)
	}
}

func TestRun_Logging(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Steps = 7
	cfg.LogEvery = 3
	cfg.Logger = log.New(&buf, "", 0)

	_, err := Run(cfg, TinyDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Steps 0, 3 and 6 (the last).
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "seed=1 step=0 loss="))
	assert.True(t, strings.HasPrefix(lines[2], "seed=1 step=6 loss="))
}

func TestRun_Diverged(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Activation = nn.Linear
	cfg.LR = 1e6
	cfg.Steps = 200

	_, err := Run(cfg, TinyDataset())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDiverged))
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no layers", func(c *Config) { c.Sizes = nil }},
		{"zero width", func(c *Config) { c.Sizes = []int{4, 0, 1} }},
		{"wide output", func(c *Config) { c.Sizes = []int{4, 2} }},
		{"no steps", func(c *Config) { c.Steps = 0 }},
		{"zero lr", func(c *Config) { c.LR = 0 }},
		{"nan lr", func(c *Config) { c.LR = math.NaN() }},
		{"inf lr", func(c *Config) { c.LR = math.Inf(1) }},
		{"momentum 1", func(c *Config) { c.Momentum = 1 }},
		{"negative momentum", func(c *Config) { c.Momentum = -0.1 }},
		{"negative log every", func(c *Config) { c.LogEvery = -1 }},
		{"unknown optimizer", func(c *Config) { c.Optimizer = "rmsprop" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)

			_, err = Run(cfg, TinyDataset())
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestDataset_Validate(t *testing.T) {
	assert.NoError(t, TinyDataset().Validate())
	assert.Equal(t, 4, TinyDataset().Len())
	assert.Equal(t, 3, TinyDataset().Features())

	bad := []Dataset{
		{},
		{X: [][]float64{{1}}, Y: []float64{1, 2}},
		{X: [][]float64{{}}, Y: []float64{1}},
		{X: [][]float64{{1, 2}, {3}}, Y: []float64{1, 2}},
	}
	for i, ds := range bad {
		err := ds.Validate()
		assert.True(t, errors.Is(err, ErrInvalidDataset), "case %d: %v", i, err)

		_, err = Run(DefaultConfig(), ds)
		assert.True(t, errors.Is(err, ErrInvalidDataset), "case %d", i)
	}
}

func TestSweep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Steps = 10
	seeds := Seeds(1, 4)
	assert.Equal(t, []int64{1, 2, 3, 4}, seeds)

	pcfg := parallel.Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1}
	results, err := Sweep(cfg, TinyDataset(), seeds, pcfg)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, r := range results {
		assert.Equal(t, seeds[i], r.Seed)

		c := cfg
		c.Seed = seeds[i]
		single, err := Run(c, TinyDataset())
		require.NoError(t, err)
		assert.Equal(t, single.History.Loss, r.History.Loss, "seed %d", seeds[i])
	}

	best, err := Best(results)
	require.NoError(t, err)
	for _, r := range results {
		assert.LessOrEqual(t, best.FinalLoss(), r.FinalLoss())
	}
}

func TestSweep_Errors(t *testing.T) {
	_, err := Sweep(DefaultConfig(), TinyDataset(), nil, parallel.DefaultConfig())
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	bad := DefaultConfig()
	bad.Steps = 0
	_, err = Sweep(bad, TinyDataset(), Seeds(1, 3), parallel.DefaultConfig())
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "seed 1")
}

func TestBest_Empty(t *testing.T) {
	_, err := Best(nil)
	assert.Equal(t, ErrNoResults, err)

	_, err = Best([]*Result{nil, {}})
	assert.Equal(t, ErrNoResults, err)
}
