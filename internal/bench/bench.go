// Package bench runs every algorithm to completion on identical permutations
// and compares how much work each one needed.
package bench

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/sequence"
)

type Config struct {
	Sizes  []int
	Trials int
	Seed   int64
}

func DefaultConfig() Config {
	return Config{
		Sizes:  []int{8, 16, 32, 48, 64, 80},
		Trials: 5,
		Seed:   1,
	}
}

// Result holds the mean work per trial for one algorithm at one size.
type Result struct {
	Kind        algo.Kind
	Size        int
	Steps       float64
	Comparisons float64
	Swaps       float64
}

type trial struct {
	stats map[algo.Kind]algo.Stats
	err   error
}

// Run benchmarks every algorithm for every size. Trial i at any size uses the
// seed cfg.Seed+i, so equal configs give equal results. Each trial runs in its
// own goroutine over engines it owns exclusively.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Trials < 1 {
		return nil, fmt.Errorf("trials must be at least 1, got %d", cfg.Trials)
	}

	results := make([]Result, 0, len(cfg.Sizes)*len(algo.Kinds()))
	for _, size := range cfg.Sizes {
		if size < 0 {
			return nil, fmt.Errorf("size must not be negative, got %d", size)
		}

		trials := make([]trial, cfg.Trials)
		var wg sync.WaitGroup
		for i := 0; i < cfg.Trials; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				trials[idx] = runTrial(ctx, size, cfg.Seed+int64(idx))
			}(i)
		}
		wg.Wait()

		for _, tr := range trials {
			if tr.err != nil {
				return nil, tr.err
			}
		}

		for _, kind := range algo.Kinds() {
			r := Result{Kind: kind, Size: size}
			for _, tr := range trials {
				st := tr.stats[kind]
				r.Steps += float64(st.Steps)
				r.Comparisons += float64(st.Comparisons)
				r.Swaps += float64(st.Swaps)
			}
			n := float64(cfg.Trials)
			r.Steps /= n
			r.Comparisons /= n
			r.Swaps /= n
			results = append(results, r)
		}
	}
	return results, nil
}

func runTrial(ctx context.Context, size int, seed int64) trial {
	rng := rand.New(rand.NewSource(seed))
	seq := sequence.New(size, rng)
	stats := make(map[algo.Kind]algo.Stats, len(algo.Kinds()))

	for _, kind := range algo.Kinds() {
		select {
		case <-ctx.Done():
			return trial{err: ctx.Err()}
		default:
		}

		e := algo.NewWith(kind, seq.Clone(), rng)
		algo.Run(e, algo.MaxSteps(size))
		if !e.Done() {
			return trial{err: fmt.Errorf("%s did not finish %d values within %d steps", kind, size, algo.MaxSteps(size))}
		}
		stats[kind] = e.Stats()
	}
	return trial{stats: stats}
}

// Series returns the mean step counts of kind, ordered as results are.
func Series(results []Result, kind algo.Kind) []float64 {
	out := make([]float64, 0)
	for _, r := range results {
		if r.Kind == kind {
			out = append(out, r.Steps)
		}
	}
	return out
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Blue,
}

// Chart plots mean steps against size for every algorithm.
func Chart(results []Result, height, width int) string {
	kinds := algo.Kinds()
	data := make([][]float64, 0, len(kinds))
	legends := make([]string, 0, len(kinds))
	for _, k := range kinds {
		s := Series(results, k)
		if len(s) == 0 {
			continue
		}
		data = append(data, s)
		legends = append(legends, k.String())
	}
	if len(data) == 0 {
		return ""
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(seriesColors[:len(data)]...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption("mean steps by size"),
	)
}
