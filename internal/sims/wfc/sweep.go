package wfc

import (
	"context"
	"sort"
	"sync"
	"time"
)

// SweepResult records one full run of a seed.
type SweepResult struct {
	Seed    int64
	Stats   Stats
	Elapsed time.Duration
}

// SweepSummary aggregates a sweep.
type SweepSummary struct {
	Runs               int
	WithContradictions int
	ContradictionRate  float64
	MeanSteps          float64
	MinSteps           int
	MaxSteps           int
	MeanContradictions float64
}

// Sweep runs one independent grid per seed on a pool of workers and returns
// the results ordered by seed. Each grid is built from base with its Seed
// replaced. Seeds not started before ctx is cancelled are skipped.
func Sweep(ctx context.Context, base Config, seeds []int64, workers int) []SweepResult {
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int64)
	results := make(chan SweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(base, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, seed := range seeds {
			select {
			case jobs <- seed:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]SweepResult, 0, len(seeds))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all
}

func runSeed(base Config, seed int64) SweepResult {
	cfg := base
	cfg.Seed = seed
	start := time.Now()
	stats := NewWithConfig(cfg).Run(nil)
	return SweepResult{Seed: seed, Stats: stats, Elapsed: time.Since(start)}
}

// Summarize aggregates sweep results.
func Summarize(results []SweepResult) SweepSummary {
	s := SweepSummary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	s.MinSteps = results[0].Stats.Steps
	var steps, contradictions int
	for _, r := range results {
		steps += r.Stats.Steps
		contradictions += r.Stats.Contradictions
		if r.Stats.Contradictions > 0 {
			s.WithContradictions++
		}
		if r.Stats.Steps < s.MinSteps {
			s.MinSteps = r.Stats.Steps
		}
		if r.Stats.Steps > s.MaxSteps {
			s.MaxSteps = r.Stats.Steps
		}
	}
	n := float64(len(results))
	s.ContradictionRate = float64(s.WithContradictions) / n
	s.MeanSteps = float64(steps) / n
	s.MeanContradictions = float64(contradictions) / n
	return s
}
