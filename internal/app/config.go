package app

import (
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"github.com/singer-songwriter/game-of-life/pkg/life"
)

// Config represents the command-line parameters shared by the binaries.
// They map 1:1 onto the engine's constructor parameters plus presentation
// options.
type Config struct {
	Size   int
	Width  int
	Height int

	Pattern string
	Density float64

	Generations int
	IntervalMS  int

	Output string
	Chart  string

	Toroidal  bool
	Rules     string
	Certainty float64

	Sound    bool
	BaseFreq float64

	Scale   int
	Seed    int64
	Workers int
}

// NewConfig returns a Config populated with the historical defaults.
func NewConfig() *Config {
	return &Config{
		Size:        50,
		Pattern:     life.RandomPattern,
		Density:     0.3,
		Generations: 200,
		IntervalMS:  100,
		Rules:       "conway",
		Certainty:   0.9,
		BaseFreq:    110,
		Scale:       8,
		Seed:        42,
		Workers:     1,
	}
}

// Bind attaches the options to flaggy's default parser. Parse must be
// called by the binary afterwards.
func (c *Config) Bind() {
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.DefaultParser.AdditionalHelpPrepend = "Available patterns: " + strings.Join(life.Names(), ", ")

	flaggy.Int(&c.Size, "s", "size", "Grid size (square)")
	flaggy.Int(&c.Width, "W", "width", "Grid width (overrides --size)")
	flaggy.Int(&c.Height, "H", "height", "Grid height (overrides --size)")
	flaggy.String(&c.Pattern, "p", "pattern", "Starting pattern")
	flaggy.Float64(&c.Density, "d", "density", "Random fill density 0-1")
	flaggy.Int(&c.Generations, "g", "generations", "How many steps to run")
	flaggy.Int(&c.IntervalMS, "i", "interval", "Ms between generations")
	flaggy.String(&c.Output, "o", "output", "Save the run to a .gif or .avi file")
	flaggy.String(&c.Chart, "", "chart", "Save a population chart to a .png file")
	flaggy.Bool(&c.Toroidal, "t", "toroidal", "Use toroidal grid (wrapping edges)")
	flaggy.String(&c.Rules, "r", "rules", "Rule variant [conway|probabilistic|graduated]")
	flaggy.Float64(&c.Certainty, "c", "certainty", "Probabilistic rule certainty 0-1")
	flaggy.Bool(&c.Sound, "", "sound", "Sonify each generation")
	flaggy.Float64(&c.BaseFreq, "", "base-freq", "Sonification base frequency in Hz")
	flaggy.Int(&c.Scale, "", "scale", "Pixel scale multiplier for the window")
	flaggy.Int64(&c.Seed, "", "seed", "Random seed")
	flaggy.Int(&c.Workers, "", "workers", "Worker goroutines for the step sweep")
}

// Engine validates the parsed options and constructs the engine. Unknown
// pattern or rule names fail here, before anything starts running.
func (c *Config) Engine() (*life.Engine, error) {
	width, height := c.Size, c.Size
	if c.Width > 0 {
		width = c.Width
	}
	if c.Height > 0 {
		height = c.Height
	}

	rule, err := life.ParseRule(c.Rules)
	if err != nil {
		return nil, err
	}
	boundary := life.BoundaryFinite
	if c.Toroidal {
		boundary = life.BoundaryToroidal
	}

	return life.New(life.Config{
		Width:     width,
		Height:    height,
		Rule:      rule,
		Boundary:  boundary,
		Pattern:   c.Pattern,
		Density:   c.Density,
		Certainty: c.Certainty,
		Seed:      c.Seed,
		Workers:   c.Workers,
	})
}

// Interval returns the time between generations.
func (c *Config) Interval() time.Duration {
	if c.IntervalMS < 1 {
		return time.Millisecond
	}
	return time.Duration(c.IntervalMS) * time.Millisecond
}
