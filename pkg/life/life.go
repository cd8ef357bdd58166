// Package life implements Conway's Game of Life and two variant rule sets
// (probabilistic, graduated) on a fixed-size 2D grid with finite or toroidal
// edges.
package life

import (
	"strconv"
	"sync"

	"github.com/singer-songwriter/game-of-life/pkg/core"
)

// Config describes one simulation run. Width and Height must be positive;
// Density and Certainty outside [0, 1] are clamped rather than rejected so
// sloppy CLI input still produces a run.
type Config struct {
	Width  int
	Height int

	Rule     Rule
	Boundary Boundary

	// Pattern names the initial seed. RandomPattern fills each cell alive
	// independently with probability Density; any other name must resolve
	// through Lookup. An empty name leaves the grid dead.
	Pattern string
	Density float64

	// Certainty is the probability the probabilistic rule applies the
	// deterministic conway outcome rather than its inverse.
	Certainty float64

	Seed int64

	// Workers > 1 enables row-partitioned parallel stepping for the
	// deterministic rules. The probabilistic rule always steps serially so
	// its per-cell sample stream stays reproducible.
	Workers int
}

// DefaultConfig mirrors the CLI defaults.
func DefaultConfig() Config {
	return Config{
		Width:     50,
		Height:    50,
		Rule:      RuleConway,
		Boundary:  BoundaryFinite,
		Pattern:   RandomPattern,
		Density:   0.3,
		Certainty: 0.9,
		Seed:      42,
		Workers:   1,
	}
}

// Metrics aggregates one generation's observable statistics. Births and
// Deaths count cells that crossed the alive threshold during the last step.
type Metrics struct {
	Generation int
	Population int
	Vitality   float64
	Births     int
	Deaths     int
}

// seeding remembers how the grid was initially populated so Reset can
// replay it deterministically.
type seeding struct {
	random  bool
	density float64
	cells   []Cell
	offsetX int
	offsetY int
}

// Engine owns the grid buffers and generation counter for one run. It is
// single-threaded: Step fully completes before the caller proceeds.
type Engine struct {
	w, h      int
	rule      Rule
	boundary  Boundary
	certainty float64
	workers   int

	cur []float64
	nxt []float64

	gen  int
	seed seeding
	rng  *core.RNG

	population int
	vitality   float64
	births     int
	deaths     int
}

// New constructs an engine and seeds its grid. It fails with
// ErrInvalidDimension on non-positive dimensions and ErrUnknownPattern on
// an unrecognized pattern name.
func New(cfg Config) (*Engine, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidDimension
	}
	total := cfg.Width * cfg.Height
	e := &Engine{
		w:         cfg.Width,
		h:         cfg.Height,
		rule:      cfg.Rule,
		boundary:  cfg.Boundary,
		certainty: clamp01(cfg.Certainty),
		workers:   cfg.Workers,
		cur:       make([]float64, total),
		nxt:       make([]float64, total),
		rng:       core.NewRNG(cfg.Seed),
	}
	switch cfg.Pattern {
	case "":
		// empty grid; caller seeds by hand
	case RandomPattern:
		e.seed = seeding{random: true, density: clamp01(cfg.Density)}
	default:
		p, err := Lookup(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		// Place it somewhere visible, not jammed in the corner.
		e.seed = seeding{cells: p.Cells, offsetX: cfg.Width / 4, offsetY: cfg.Height / 4}
	}
	e.applySeed()
	return e, nil
}

// Name identifies the active rule variant.
func (e *Engine) Name() string { return e.rule.String() }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Generation returns the monotonically increasing step counter.
func (e *Engine) Generation() int { return e.gen }

// Rule returns the active rule variant.
func (e *Engine) Rule() Rule { return e.rule }

// Boundary returns the active boundary policy.
func (e *Engine) Boundary() Boundary { return e.boundary }

// Certainty returns the probabilistic rule's current certainty.
func (e *Engine) Certainty() float64 { return e.certainty }

// SetCertainty updates the certainty, clamped to [0, 1].
func (e *Engine) SetCertainty(v float64) { e.certainty = clamp01(v) }

// Vitality exposes the current generation's cell buffer, row-major. Callers
// must treat it as read-only; it is only valid until the next Step.
func (e *Engine) Vitality() []float64 { return e.cur }

// Previous exposes the prior generation's buffer under the same read-only
// terms as Vitality. Before the first step it is entirely dead.
func (e *Engine) Previous() []float64 { return e.nxt }

// Alive reports whether the cell at (x, y) is above the alive threshold.
// Out-of-range coordinates are dead.
func (e *Engine) Alive(x, y int) bool {
	if x < 0 || y < 0 || x >= e.w || y >= e.h {
		return false
	}
	return e.cur[y*e.w+x] > aliveThreshold
}

// Toggle flips the cell at (x, y) between fully dead and fully alive.
// Out-of-range coordinates are ignored.
func (e *Engine) Toggle(x, y int) {
	if x < 0 || y < 0 || x >= e.w || y >= e.h {
		return
	}
	idx := y*e.w + x
	if e.cur[idx] > aliveThreshold {
		e.cur[idx] = 0
	} else {
		e.cur[idx] = 1
	}
	e.refreshCounts()
}

// Metrics returns the statistics of the current generation.
func (e *Engine) Metrics() Metrics {
	return Metrics{
		Generation: e.gen,
		Population: e.population,
		Vitality:   e.vitality,
		Births:     e.births,
		Deaths:     e.deaths,
	}
}

// Parameters describes the run for display panels.
func (e *Engine) Parameters() core.ParameterSnapshot {
	params := []core.Parameter{
		{Key: "rule", Label: "Rule", Value: e.rule.String()},
		{Key: "boundary", Label: "Boundary", Value: e.boundary.String()},
	}
	if e.rule == RuleProbabilistic {
		params = append(params, core.Parameter{Key: "certainty", Label: "Certainty", Value: formatFloat(e.certainty)})
	}
	return core.ParameterSnapshot{Params: params}
}

// SetFloatParameter implements core.FloatParameterSetter for the certainty
// tunable.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if key != "certainty" || e.rule != RuleProbabilistic {
		return false
	}
	e.SetCertainty(value)
	return true
}

// Reset reseeds the RNG and replays the initial seeding, restarting the
// generation counter. The same seed reproduces the same run exactly.
func (e *Engine) Reset(seed int64) {
	e.rng = core.NewRNG(seed)
	e.applySeed()
}

// Clear kills every cell and restarts the generation counter.
func (e *Engine) Clear() {
	for i := range e.cur {
		e.cur[i] = 0
	}
	e.gen = 0
	e.births = 0
	e.deaths = 0
	e.refreshCounts()
}

// aliveThreshold divides dead from alive when the continuous vitality value
// has to be read as a boolean (population counts, rendering ramps).
const aliveThreshold = 0.5

func (e *Engine) applySeed() {
	for i := range e.cur {
		e.cur[i] = 0
	}
	if e.seed.random {
		for i := range e.cur {
			if e.rng.Chance(e.seed.density) {
				e.cur[i] = 1
			}
		}
	} else {
		// Cells falling outside the grid are truncated, never wrapped,
		// regardless of the boundary policy.
		for _, c := range e.seed.cells {
			x := c.X + e.seed.offsetX
			y := c.Y + e.seed.offsetY
			if x < 0 || y < 0 || x >= e.w || y >= e.h {
				continue
			}
			e.cur[y*e.w+x] = 1
		}
	}
	e.gen = 0
	e.births = 0
	e.deaths = 0
	e.refreshCounts()
}

func (e *Engine) refreshCounts() {
	e.population = 0
	e.vitality = 0
	for _, v := range e.cur {
		if v > aliveThreshold {
			e.population++
		}
		e.vitality += v
	}
}

// Step computes generation N+1 from generation N into the spare buffer and
// swaps it in, so same-step neighbor reads never observe fresh writes.
func (e *Engine) Step() {
	var next func(x, y int) float64
	switch e.rule {
	case RuleConway:
		next = e.conwayCell
	case RuleProbabilistic:
		next = e.probabilisticCell
	case RuleGraduated:
		next = e.graduatedCell
	}

	var t stepTally
	if e.workers > 1 && e.rule != RuleProbabilistic {
		t = e.sweepParallel(next)
	} else {
		t = e.sweepRows(next, 0, e.h)
	}

	e.cur, e.nxt = e.nxt, e.cur
	e.gen++
	e.population = t.population
	e.vitality = t.vitality
	e.births = t.births
	e.deaths = t.deaths
}

type stepTally struct {
	population int
	vitality   float64
	births     int
	deaths     int
}

func (t *stepTally) add(o stepTally) {
	t.population += o.population
	t.vitality += o.vitality
	t.births += o.births
	t.deaths += o.deaths
}

// sweepRows fills the spare buffer for rows [y0, y1) and tallies the
// transition statistics of that band.
func (e *Engine) sweepRows(next func(x, y int) float64, y0, y1 int) stepTally {
	var t stepTally
	for y := y0; y < y1; y++ {
		for x := 0; x < e.w; x++ {
			idx := y*e.w + x
			v := next(x, y)
			e.nxt[idx] = v

			was := e.cur[idx] > aliveThreshold
			is := v > aliveThreshold
			if is {
				t.population++
			}
			if is && !was {
				t.births++
			}
			if was && !is {
				t.deaths++
			}
			t.vitality += v
		}
	}
	return t
}

// minRowsPerWorker keeps tiny grids from spawning more goroutines than rows.
const minRowsPerWorker = 4

// sweepParallel splits the sweep across disjoint row bands. Each worker
// reads the immutable current buffer and writes only its own band of the
// spare buffer, so no synchronization beyond the join is needed.
func (e *Engine) sweepParallel(next func(x, y int) float64) stepTally {
	rows := (e.h + e.workers - 1) / e.workers
	if rows < minRowsPerWorker {
		rows = minRowsPerWorker
	}

	type band struct{ y0, y1 int }
	var bands []band
	for y0 := 0; y0 < e.h; y0 += rows {
		y1 := y0 + rows
		if y1 > e.h {
			y1 = e.h
		}
		bands = append(bands, band{y0: y0, y1: y1})
	}

	tallies := make([]stepTally, len(bands))
	var wg sync.WaitGroup
	for i, b := range bands {
		wg.Add(1)
		go func(i int, b band) {
			defer wg.Done()
			tallies[i] = e.sweepRows(next, b.y0, b.y1)
		}(i, b)
	}
	wg.Wait()

	var t stepTally
	for i := range tallies {
		t.add(tallies[i])
	}
	return t
}

func (e *Engine) conwayCell(x, y int) float64 {
	alive := e.cur[y*e.w+x] > aliveThreshold
	if conwayNext(alive, e.liveNeighbors(x, y)) {
		return 1
	}
	return 0
}

// probabilisticCell draws one sample per cell per step. On a miss it flips
// to the opposite of the deterministic outcome rather than keeping the
// previous state, so low certainty yields noise instead of a frozen grid.
func (e *Engine) probabilisticCell(x, y int) float64 {
	alive := e.cur[y*e.w+x] > aliveThreshold
	intended := conwayNext(alive, e.liveNeighbors(x, y))
	if !e.rng.Chance(e.certainty) {
		intended = !intended
	}
	if intended {
		return 1
	}
	return 0
}

func (e *Engine) graduatedCell(x, y int) float64 {
	return graduatedNext(e.cur[y*e.w+x], e.neighborVitality(x, y))
}

// liveNeighbors counts the Moore-neighborhood cells above the alive
// threshold, resolved through the boundary policy.
func (e *Engine) liveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny, ok := e.resolve(x+dx, y+dy)
			if !ok {
				continue
			}
			if e.cur[ny*e.w+nx] > aliveThreshold {
				n++
			}
		}
	}
	return n
}

// neighborVitality sums the Moore-neighborhood vitality values, resolved
// through the boundary policy.
func (e *Engine) neighborVitality(x, y int) float64 {
	sum := 0.0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny, ok := e.resolve(x+dx, y+dy)
			if !ok {
				continue
			}
			sum += e.cur[ny*e.w+nx]
		}
	}
	return sum
}

// resolve maps a possibly out-of-range coordinate through the boundary
// policy. Toroidal wrap uses modulo arithmetic so patterns crossing an edge
// reenter the opposite edge with correct phase.
func (e *Engine) resolve(x, y int) (int, int, bool) {
	if e.boundary == BoundaryToroidal {
		return (x + e.w) % e.w, (y + e.h) % e.h, true
	}
	if x < 0 || y < 0 || x >= e.w || y >= e.h {
		return 0, 0, false
	}
	return x, y, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 3, 64)
}
