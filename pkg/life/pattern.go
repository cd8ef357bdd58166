package life

import (
	"fmt"
	"sort"
)

// Cell is a coordinate relative to a pattern's origin.
type Cell struct {
	X int
	Y int
}

// Pattern is a named set of live cells relative to an origin.
type Pattern struct {
	Name  string
	Cells []Cell
}

// RandomPattern is the pattern name that triggers a density-based random
// fill instead of a fixed coordinate set.
const RandomPattern = "random"

var patterns = map[string][]Cell{
	"glider": {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},

	"blinker": {{0, 1}, {1, 1}, {2, 1}},

	"block": {{0, 0}, {1, 0}, {0, 1}, {1, 1}},

	"beacon": {{0, 0}, {1, 0}, {0, 1}, {2, 3}, {3, 2}, {3, 3}},

	"toad": {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},

	"r_pentomino": {{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},

	"glider_gun": {
		{24, 0}, {22, 1}, {24, 1}, {12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
		{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3}, {0, 4}, {1, 4}, {10, 4},
		{16, 4}, {20, 4}, {21, 4}, {0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5},
		{22, 5}, {24, 5}, {10, 6}, {16, 6}, {24, 6}, {11, 7}, {15, 7}, {12, 8}, {13, 8},
	},
}

// Lookup returns the named pattern or ErrUnknownPattern. The random pattern
// has no fixed cells and is resolved by the engine at seeding time.
func Lookup(name string) (Pattern, error) {
	cells, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return Pattern{Name: name, Cells: cells}, nil
}

// Names lists the available pattern names in sorted order, with the random
// fill appended last. Intended for CLI help text.
func Names() []string {
	names := make([]string, 0, len(patterns)+1)
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, RandomPattern)
}
