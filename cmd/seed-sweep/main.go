package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"conway-life/internal/core"
	"conway-life/internal/life"
)

type scenario struct {
	deadChance float64
	seed       int64
}

func (s scenario) String() string {
	return fmt.Sprintf("prob0=%.2f seed=%d", s.deadChance, s.seed)
}

type scenarioResult struct {
	scenario
	finalPop       int
	peakPop        int
	extinctionStep int
}

type densitySummary struct {
	deadChance float64
	runs       int
	extinct    int
	meanFinal  float64
	meanPeak   float64
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	cols := flag.Int("cols", 50, "grid columns")
	rows := flag.Int("rows", 50, "grid rows")
	seeds := flag.Int("seeds", 8, "boards sampled per density")
	flag.Parse()

	var sets []scenario
	for i := 1; i <= 19; i++ {
		chance := float64(i) * 0.05
		for seed := 1; seed <= *seeds; seed++ {
			sets = append(sets, scenario{deadChance: chance, seed: int64(seed)})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d cells)\n",
		len(sets), *workers, *steps, *cols, *rows)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *cols, *rows, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	byDensity := map[float64]*densitySummary{}
	for res := range results {
		summary := byDensity[res.deadChance]
		if summary == nil {
			summary = &densitySummary{deadChance: res.deadChance}
			byDensity[res.deadChance] = summary
		}
		summary.runs++
		summary.meanFinal += float64(res.finalPop)
		summary.meanPeak += float64(res.peakPop)
		if res.extinctionStep > 0 {
			summary.extinct++
			fmt.Printf("Extinct: %s at step %d (peak %d)\n", res.scenario, res.extinctionStep, res.peakPop)
		}
	}

	summaries := make([]*densitySummary, 0, len(byDensity))
	for _, summary := range byDensity {
		summary.meanFinal /= float64(summary.runs)
		summary.meanPeak /= float64(summary.runs)
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].meanFinal > summaries[j].meanFinal })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 densities by surviving population (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(summaries) && i < 5; i++ {
		s := summaries[i]
		fmt.Printf("%2d) prob0=%.2f finalPop=%.1f peakPop=%.1f extinct=%d/%d\n",
			i+1, s.deadChance, s.meanFinal, s.meanPeak, s.extinct, s.runs)
	}

	if len(summaries) > 0 {
		best := summaries[0]
		fmt.Printf("\nBest density: prob0=%.2f with %.1f cells alive after %d generations\n",
			best.deadChance, best.meanFinal, *steps)
	}
}

func runScenario(sc scenario, cols, rows, steps int) scenarioResult {
	board := life.New(cols, rows)
	board.Seed(core.NewRNG(sc.seed).Source(), sc.deadChance)

	res := scenarioResult{scenario: sc}
	res.peakPop = board.Population()

	for step := 0; step < steps; step++ {
		board.Step()
		pop := board.Population()
		if pop > res.peakPop {
			res.peakPop = pop
		}
		if pop == 0 {
			res.extinctionStep = step + 1
			break
		}
	}
	res.finalPop = board.Population()
	return res
}
