package solver

import (
	"runtime"
	"sync"

	"github.com/AyushWani11/CityZone-Optimizer/anneal"
	"github.com/AyushWani11/CityZone-Optimizer/boundary"
	"github.com/AyushWani11/CityZone-Optimizer/greedy"
	"github.com/AyushWani11/CityZone-Optimizer/gridgraph"
	"github.com/AyushWani11/CityZone-Optimizer/point"
)

// candidate is one trial's surviving region plus the cell size needed to
// reconstruct its boundary.
type candidate struct {
	region   *gridgraph.Region
	cellSize float64
	cost     float64
}

// Solve sweeps grid splits 1..Options.SMax, running Options-governed trial
// counts per split, and returns the lowest-cost valid region found across
// every (split, trial) pair, reconstructing its boundary once at the end.
//
// Returns ErrNoFeasibleSolution only if k > len(pts); for k <= len(pts) a
// feasible region always exists (the split-1 grid's single cell encloses
// every point), so this signals a defect rather than a genuine input
// failure.
//
// Complexity: O(Σ_S trials(S) · (Split^2 + I_max)) dominated by the hole
// checks inside greedy and anneal across every trial.
func Solve(pts []point.Point, k int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var mu sync.Mutex
	var best *candidate

	consider := func(c *candidate) {
		if c == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		// Exact cost ties keep whichever candidate was considered first,
		// which under Parallel can vary run to run with goroutine
		// scheduling; a tie requires two trials to land on identical
		// float64 costs, which per-trial jitter makes vanishingly rare.
		if best == nil || c.cost < best.cost {
			best = c
		}
	}

	type job struct {
		split, trial int
	}
	var jobs []job
	for s := 1; s <= cfg.SMax; s++ {
		for tr := 0; tr < trialCount(s); tr++ {
			jobs = append(jobs, job{split: s, trial: tr})
		}
	}

	runJob := func(j job) {
		consider(runTrial(pts, k, j.split, j.trial, cfg))
	}

	if !cfg.Parallel {
		for _, j := range jobs {
			runJob(j)
		}
	} else {
		workers := cfg.MaxWorkers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for _, j := range jobs {
			wg.Add(1)
			sem <- struct{}{}
			go func(j job) {
				defer wg.Done()
				defer func() { <-sem }()
				runJob(j)
			}(j)
		}
		wg.Wait()
	}

	if best == nil {
		return Result{}, ErrNoFeasibleSolution
	}

	edges, err := boundary.Extract(best.region, best.cellSize)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Cost:          best.cost,
		EnclosedCount: best.region.Coverage(),
		Edges:         edges,
	}, nil
}

// runTrial runs one (split, trial) configuration end to end: grid build,
// greedy growth, SA refinement. It returns nil on any transient failure
// (degenerate cell size, no feasible seed, or coverage k never reached) so
// the sweep simply moves to the next trial.
//
// Both the raw greedy result and the annealed result are considered as
// candidates, not just the annealed one: Metropolis acceptance can leave
// annealing at a worse cost than the greedy prefix it started from, so the
// greedy result is kept as a fallback rather than discarded.
func runTrial(pts []point.Point, k, split, trial int, cfg Options) *candidate {
	streamID := uint64(split)*1_000_003 + uint64(trial)
	rng := anneal.DeriveRNG(cfg.Seed, streamID)

	eps := jitterEpsilon(split)
	jitter := 1 - eps*rng.Float64()

	grid, err := gridgraph.NewGrid(pts, split, jitter)
	if err != nil {
		return nil
	}

	greedyRegion, err := greedy.Grow(grid, k)
	if err != nil || greedyRegion == nil {
		return nil
	}

	refined := anneal.Refine(greedyRegion, k, rng,
		anneal.WithTimeBudget(cfg.SATimeBudget),
		anneal.WithIMax(cfg.SAIMax),
		anneal.WithTemperatureRange(cfg.T0, cfg.TEnd),
	)

	best := greedyRegion
	bestCost := greedyRegion.Cost()
	if refined.Cost() < bestCost {
		best, bestCost = refined, refined.Cost()
	}

	return &candidate{region: best, cellSize: grid.CellSize, cost: bestCost}
}
