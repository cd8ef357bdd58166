package life

import (
	"errors"
	"testing"
)

func TestLookupKnownPatterns(t *testing.T) {
	for _, name := range []string{"glider", "blinker", "block", "beacon", "toad", "r_pentomino", "glider_gun"} {
		p, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
			continue
		}
		if p.Name != name || len(p.Cells) == 0 {
			t.Errorf("Lookup(%q) = %+v, want non-empty cell set", name, p)
		}
	}
}

func TestLookupUnknownPattern(t *testing.T) {
	if _, err := Lookup("spaceship"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("Lookup(unknown) error = %v, want ErrUnknownPattern", err)
	}
	if _, err := New(Config{Width: 10, Height: 10, Pattern: "spaceship"}); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("New with unknown pattern error = %v, want ErrUnknownPattern", err)
	}
}

func TestNamesListsEverything(t *testing.T) {
	names := Names()
	if len(names) != len(patterns)+1 {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(patterns)+1)
	}
	if names[len(names)-1] != RandomPattern {
		t.Errorf("last name = %q, want %q", names[len(names)-1], RandomPattern)
	}
}

func TestRandomDensityBounds(t *testing.T) {
	mk := func(density float64) *Engine {
		e, err := New(Config{Width: 30, Height: 30, Pattern: RandomPattern, Density: density, Seed: 5})
		if err != nil {
			t.Fatalf("New(density=%v): %v", density, err)
		}
		return e
	}

	if pop := mk(0).Metrics().Population; pop != 0 {
		t.Errorf("density 0 produced %d live cells, want 0", pop)
	}
	if pop := mk(1).Metrics().Population; pop != 30*30 {
		t.Errorf("density 1 produced %d live cells, want %d", pop, 30*30)
	}

	// Out-of-range densities clamp instead of failing.
	if pop := mk(4.5).Metrics().Population; pop != 30*30 {
		t.Errorf("density 4.5 produced %d live cells, want clamp to full grid", pop)
	}
	if pop := mk(-2).Metrics().Population; pop != 0 {
		t.Errorf("density -2 produced %d live cells, want clamp to empty grid", pop)
	}
}

// Patterns larger than the grid are truncated at the boundary, never
// wrapped, even under the toroidal policy.
func TestPatternClipping(t *testing.T) {
	e, err := New(Config{
		Width:    10,
		Height:   10,
		Boundary: BoundaryToroidal,
		Pattern:  "glider_gun",
		Seed:     1,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	gun, _ := Lookup("glider_gun")
	want := 0
	for _, c := range gun.Cells {
		// seeded at (width/4, height/4)
		if x, y := c.X+2, c.Y+2; x < 10 && y < 10 {
			want++
		}
	}
	if want == 0 || want == len(gun.Cells) {
		t.Fatalf("test setup broken: clip count %d of %d", want, len(gun.Cells))
	}
	if pop := e.Metrics().Population; pop != want {
		t.Errorf("clipped gun seeded %d cells, want %d", pop, want)
	}
}

func TestNamedPatternPlacement(t *testing.T) {
	e, err := New(Config{Width: 20, Height: 20, Pattern: "block", Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, c := range []Cell{{5, 5}, {6, 5}, {5, 6}, {6, 6}} {
		if !e.Alive(c.X, c.Y) {
			t.Errorf("block cell (%d,%d) not alive after seeding at quarter offset", c.X, c.Y)
		}
	}
	if e.Metrics().Population != 4 {
		t.Errorf("population = %d, want 4", e.Metrics().Population)
	}
}
