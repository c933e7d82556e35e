package logistic

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// SweepConfig describes one bifurcation sweep over the growth-rate parameter.
type SweepConfig struct {
	RMin float64 // lower sweep bound
	RMax float64 // upper sweep bound
	NumR int     // number of evenly spaced parameter values, endpoints inclusive
	X0   float64 // shared initial condition for every trajectory

	// NIter is the trajectory length per parameter value. NDiscard is the
	// fixed transient prefix dropped from every trajectory before its tail
	// is aggregated. The window is the same for every r; values near a
	// period-doubling may settle slower than the window allows.
	NIter    int
	NDiscard int
}

// Validate reports the first configuration violation, before any computation.
func (c SweepConfig) Validate() error {
	if c.NumR < 1 {
		return fmt.Errorf("%w (got %d)", ErrSampleCount, c.NumR)
	}
	if c.NIter < 1 {
		return fmt.Errorf("%w (got %d)", ErrIterationCount, c.NIter)
	}
	if c.NDiscard < 0 || c.NDiscard >= c.NIter {
		return fmt.Errorf("%w (got NDiscard=%d, NIter=%d)", ErrDiscardWindow, c.NDiscard, c.NIter)
	}
	if c.RMax < c.RMin {
		return fmt.Errorf("%w (got [%g, %g])", ErrParamRange, c.RMin, c.RMax)
	}
	return nil
}

// Keep returns the number of retained samples per parameter value.
func (c SweepConfig) Keep() int {
	return c.NIter - c.NDiscard
}

// TotalSamples returns the total point count a valid sweep produces.
func (c SweepConfig) TotalSamples() int {
	return c.NumR * c.Keep()
}

// paramAt returns the k-th evenly spaced parameter value over [RMin, RMax].
// A single-value sweep collapses to RMin.
func (c SweepConfig) paramAt(k int) float64 {
	if c.NumR == 1 {
		return c.RMin
	}
	return c.RMin + float64(k)*(c.RMax-c.RMin)/float64(c.NumR-1)
}

// Result holds the aggregated sweep point cloud as two parallel sequences.
// Params[i] and States[i] describe the same (r, x) sample; Params is
// non-decreasing, grouped by ascending parameter value.
type Result struct {
	Params []float64
	States []float64
}

// Len returns the number of aggregated sample points.
func (r *Result) Len() int {
	return len(r.States)
}

// Sweep runs one trajectory per parameter value, discards the transient
// prefix of each, and concatenates the retained tails. Identical
// configurations always produce bit-identical results.
func Sweep(cfg SweepConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Params: make([]float64, 0, cfg.TotalSamples()),
		States: make([]float64, 0, cfg.TotalSamples()),
	}

	buf := make([]float64, cfg.NIter)
	for k := 0; k < cfg.NumR; k++ {
		r := cfg.paramAt(k)
		IterateInto(buf, r, cfg.X0)
		for _, x := range buf[cfg.NDiscard:] {
			res.Params = append(res.Params, r)
			res.States = append(res.States, x)
		}
	}

	return res, nil
}

// SweepParallel distributes the parameter range across workers. Each worker
// owns a private trajectory buffer and writes into a disjoint pre-sized
// region of the output, so no locking is needed and the result is
// bit-identical to Sweep. workers < 1 selects GOMAXPROCS-sized parallelism.
func SweepParallel(ctx context.Context, cfg SweepConfig, workers int) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.NumR {
		workers = cfg.NumR
	}

	keep := cfg.Keep()
	res := &Result{
		Params: make([]float64, cfg.TotalSamples()),
		States: make([]float64, cfg.TotalSamples()),
	}

	chunk := (cfg.NumR + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > cfg.NumR {
			end = cfg.NumR
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			buf := make([]float64, cfg.NIter)
			for k := start; k < end; k++ {
				if ctx.Err() != nil {
					return
				}
				r := cfg.paramAt(k)
				IterateInto(buf, r, cfg.X0)
				base := k * keep
				for i, x := range buf[cfg.NDiscard:] {
					res.Params[base+i] = r
					res.States[base+i] = x
				}
			}
		}(start, end)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
