package train

import (
	"math"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrDiverged is returned when the loss stops being a finite number.
var ErrDiverged = errors.New("train: loss diverged")

// History holds one entry per step, measured before the parameter update.
type History struct {
	Loss     []float64 // Sum of squared errors over the dataset
	GradNorm []float64 // L2 norm of the parameter gradient
	MaxGrad  []float64 // Largest absolute gradient component
}

// Len returns the number of recorded steps.
func (h History) Len() int {
	return len(h.Loss)
}

func (h *History) record(loss float64, grads []float64) {
	h.Loss = append(h.Loss, loss)
	h.GradNorm = append(h.GradNorm, floats.Norm(grads, 2))
	h.MaxGrad = append(h.MaxGrad, floats.Norm(grads, math.Inf(1)))
}

// Result is the outcome of one training run.
type Result struct {
	Seed        int64
	History     History
	Predictions []float64 // Network output per example after the last update
	Params      []float64 // Final parameter values, in MLP.Parameters order
	GraphSize   int       // Nodes live at the end of a step, parameters included
}

// FinalLoss returns the loss of the last recorded step.
func (r *Result) FinalLoss() float64 {
	return r.History.Loss[len(r.History.Loss)-1]
}

// Run trains a fresh network on ds.
//
// Each step builds the loss over every example, zeroes gradients, runs
// Backward, applies the optimizer, and releases the step's nodes so only
// the parameters survive in the graph.
func Run(cfg Config, ds Dataset) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	g := autodiff.NewGraph()
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(cfg.Seed))
	net := nn.NewMLP(g, rng, ds.Features(), cfg.Sizes, cfg.Activation)
	params := net.Parameters()
	opt := cfg.newOptimizer(params)
	mark := g.Mark()

	res := &Result{
		Seed: cfg.Seed,
		History: History{
			Loss:     make([]float64, 0, cfg.Steps),
			GradNorm: make([]float64, 0, cfg.Steps),
			MaxGrad:  make([]float64, 0, cfg.Steps),
		},
	}

	for step := 0; step < cfg.Steps; step++ {
		loss, err := Loss(g, net, ds)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", step)
		}
		lossValue := loss.Data()
		if math.IsNaN(lossValue) || math.IsInf(lossValue, 0) {
			return nil, errors.Wrapf(ErrDiverged, "seed %d step %d: loss = %v", cfg.Seed, step, lossValue)
		}

		opt.ZeroGrad()
		loss.Backward()
		res.History.record(lossValue, optim.Gradients(params))

		if cfg.shouldLog(step) {
			cfg.Logger.Printf("seed=%d step=%d loss=%.6f grad_norm=%.6f lr=%g",
				cfg.Seed, step, lossValue, res.History.GradNorm[step], opt.GetLR())
		}

		opt.Step()
		res.GraphSize = g.Len()
		g.Release(mark)
	}

	res.Predictions = Predict(g, net, ds)
	res.Params = make([]float64, len(params))
	for i, p := range params {
		res.Params[i] = p.Data()
	}
	return res, nil
}

// Loss builds Σ (net(x) - y)² over ds in g.
func Loss(g *autodiff.Graph, net *nn.MLP, ds Dataset) (autodiff.Value, error) {
	preds := make([]autodiff.Value, ds.Len())
	for i, x := range ds.X {
		preds[i] = net.Predict(g, x)
	}
	return nn.SumSquaredError(preds, ds.Y)
}

// Predict evaluates net on every row of ds. Nodes created for the
// evaluation are released before returning.
func Predict(g *autodiff.Graph, net *nn.MLP, ds Dataset) []float64 {
	mark := g.Mark()
	defer g.Release(mark)

	out := make([]float64, ds.Len())
	for i, x := range ds.X {
		out[i] = net.Predict(g, x).Data()
	}
	return out
}
