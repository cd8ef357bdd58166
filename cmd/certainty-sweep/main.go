package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/singer-songwriter/game-of-life/pkg/life"
)

type paramSet struct {
	rule      life.Rule
	certainty float64
	density   float64
	seed      int64
}

func (p paramSet) String() string {
	return fmt.Sprintf("rule=%s certainty=%.2f density=%.2f seed=%d",
		p.rule, p.certainty, p.density, p.seed)
}

type scenarioResult struct {
	params         paramSet
	finalPop       int
	peakPop        int
	meanPop        float64
	totalBirths    int
	totalDeaths    int
	extinctionStep int
	perStep        time.Duration
}

func main() {
	size := flag.Int("size", 64, "grid side length")
	steps := flag.Int("steps", 300, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	certaintyOptions := []float64{0.5, 0.7, 0.8, 0.9, 0.95, 0.99, 1.0}
	densityOptions := []float64{0.1, 0.2, 0.3, 0.4}
	seedOptions := []int64{1, 7, 42}

	var sets []paramSet
	for _, certainty := range certaintyOptions {
		for _, density := range densityOptions {
			for _, seed := range seedOptions {
				sets = append(sets, paramSet{
					rule:      life.RuleProbabilistic,
					certainty: certainty,
					density:   density,
					seed:      seed,
				})
			}
		}
	}
	for _, density := range densityOptions {
		for _, seed := range seedOptions {
			sets = append(sets, paramSet{rule: life.RuleConway, density: density, seed: seed})
			sets = append(sets, paramSet{rule: life.RuleGraduated, density: density, seed: seed})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %dx%d grid, %d steps)\n",
		len(sets), *workers, *size, *size, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *size, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if res.extinctionStep > 0 {
			fmt.Printf("Extinction at step %d with %s\n", res.extinctionStep, res.params)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].meanPop > all[j].meanPop })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 by mean population (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		fmt.Printf("%2d) mean=%.1f peak=%d final=%d births=%d deaths=%d step=%s %s\n",
			i+1, res.meanPop, res.peakPop, res.finalPop, res.totalBirths, res.totalDeaths,
			res.perStep.Round(time.Microsecond), res.params)
	}
}

func runScenario(params paramSet, size, steps int) scenarioResult {
	engine, err := life.New(life.Config{
		Width:     size,
		Height:    size,
		Rule:      params.rule,
		Boundary:  life.BoundaryToroidal,
		Pattern:   life.RandomPattern,
		Density:   params.density,
		Certainty: params.certainty,
		Seed:      params.seed,
	})
	if err != nil {
		panic(err)
	}

	res := scenarioResult{params: params}
	popSum := 0
	begin := time.Now()
	stepsRun := 0
	for step := 1; step <= steps; step++ {
		stepsRun = step
		engine.Step()
		m := engine.Metrics()
		popSum += m.Population
		res.totalBirths += m.Births
		res.totalDeaths += m.Deaths
		if m.Population > res.peakPop {
			res.peakPop = m.Population
		}
		res.finalPop = m.Population
		if m.Population == 0 {
			res.extinctionStep = step
			break
		}
	}
	if stepsRun > 0 {
		res.meanPop = float64(popSum) / float64(stepsRun)
		res.perStep = time.Since(begin) / time.Duration(stepsRun)
	}
	return res
}
