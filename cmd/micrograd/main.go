// Package main provides the micrograd CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/parallel"
	"github.com/born-ml/micrograd/internal/train"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("micrograd %s (%s, %d cores)\n", version, parallel.CPUName(), parallel.NumCores())
		return
	}

	def := train.DefaultConfig()
	steps := flag.Int("steps", def.Steps, "number of training steps")
	lr := flag.Float64("lr", def.LR, "learning rate")
	momentum := flag.Float64("momentum", def.Momentum, "SGD momentum in [0, 1)")
	opt := flag.String("opt", def.Optimizer, "optimizer: sgd or adam")
	seed := flag.Int64("seed", def.Seed, "seed for weight initialization")
	sizes := flag.String("sizes", formatSizes(def.Sizes), "comma-separated layer sizes after the input")
	act := flag.String("act", def.Activation.String(), "activation: tanh, relu or linear")
	restarts := flag.Int("restarts", 1, "train this many seeds concurrently and keep the best")
	every := flag.Int("every", 0, "log a progress line to stderr every N steps (0 = off)")
	flag.Parse()

	cfg := def
	cfg.Steps = *steps
	cfg.LR = *lr
	cfg.Momentum = *momentum
	cfg.Optimizer = *opt
	cfg.Seed = *seed

	var err error
	if cfg.Sizes, err = parseSizes(*sizes); err != nil {
		log.Fatalf("Invalid -sizes: %v", err)
	}
	if cfg.Activation, err = nn.ParseActivation(*act); err != nil {
		log.Fatalf("Invalid -act: %v", err)
	}
	if *every > 0 {
		cfg.LogEvery = *every
		cfg.Logger = log.New(os.Stderr, "", log.Ltime)
	}
	if *restarts < 1 {
		log.Fatalf("Invalid -restarts: %d", *restarts)
	}

	ds := train.TinyDataset()
	results, err := train.Sweep(cfg, ds, train.Seeds(cfg.Seed, *restarts), parallel.DefaultConfig())
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	best, err := train.Best(results)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	if *restarts > 1 {
		for _, r := range results {
			fmt.Printf("seed %d  final loss %.6f\n", r.Seed, r.FinalLoss())
		}
		fmt.Printf("best seed %d\n\n", best.Seed)
	}

	for step, loss := range best.History.Loss {
		fmt.Printf("step %3d  loss %.6f\n", step, loss)
	}

	fmt.Println()
	for i, p := range best.Predictions {
		fmt.Printf("x=%v  y=%+.1f  pred=%+.6f\n", ds.X[i], ds.Y[i], p)
	}
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func formatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
