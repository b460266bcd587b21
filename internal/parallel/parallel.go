// Package parallel provides bounded fan-out for independent work items,
// such as training several networks from different seeds.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on the logical core count.
//
// Work items are expected to be coarse (a whole training run each), so the
// minimum chunk is a single item.
func DefaultConfig() Config {
	n := NumCores()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1,
	}
}

// NumCores returns the number of logical cores, preferring cpuid and
// falling back to the runtime when cpuid cannot tell.
func NumCores() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// CPUName returns the processor brand string, or "unknown".
func CPUName() string {
	if name := cpuid.CPU.BrandName; name != "" {
		return name
	}
	return "unknown"
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize || n < 2 {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForErr is For for fallible work. Every item runs; the error of the
// lowest failing index is returned.
func ForErr(n int, f func(i int) error, cfg Config) error {
	errs := make([]error, n)
	For(n, func(i int) {
		errs[i] = f(i)
	}, cfg)
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
