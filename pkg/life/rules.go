package life

import (
	"fmt"
	"math"
)

// Rule selects how a cell's next state is derived from its neighbor
// aggregate. The set is closed; selection happens once at construction.
type Rule uint8

const (
	// RuleConway applies the classic birth-on-3, survive-on-2-or-3 rule.
	RuleConway Rule = iota
	// RuleProbabilistic applies the conway outcome with probability equal
	// to the configured certainty and the opposite outcome otherwise.
	RuleProbabilistic
	// RuleGraduated tracks continuous vitality in [0, 1], smoothed toward
	// the classic thresholds instead of flipping hard.
	RuleGraduated
)

// String returns the CLI name of the rule.
func (r Rule) String() string {
	switch r {
	case RuleConway:
		return "conway"
	case RuleProbabilistic:
		return "probabilistic"
	case RuleGraduated:
		return "graduated"
	}
	return "unknown"
}

// ParseRule maps a CLI rule name onto its variant.
func ParseRule(name string) (Rule, error) {
	switch name {
	case "conway", "":
		return RuleConway, nil
	case "probabilistic":
		return RuleProbabilistic, nil
	case "graduated":
		return RuleGraduated, nil
	}
	return RuleConway, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// Boundary selects how neighbor lookups behave at the grid edges.
type Boundary uint8

const (
	// BoundaryFinite treats cells outside the grid as permanently dead.
	BoundaryFinite Boundary = iota
	// BoundaryToroidal wraps lookups so the grid forms a torus.
	BoundaryToroidal
)

// String returns the CLI name of the boundary policy.
func (b Boundary) String() string {
	if b == BoundaryToroidal {
		return "toroidal"
	}
	return "finite"
}

// ParseBoundary maps a CLI boundary name onto its policy.
func ParseBoundary(name string) (Boundary, error) {
	switch name {
	case "finite", "":
		return BoundaryFinite, nil
	case "toroidal":
		return BoundaryToroidal, nil
	}
	return BoundaryFinite, fmt.Errorf("%w: %q", ErrUnknownBoundary, name)
}

// conwayNext is the classic rule: birth on exactly 3 live neighbors,
// survival on 2 or 3.
func conwayNext(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Graduated response shape. Survival rewards weighted sums near 2-3, birth
// rewards sums near 3, and the inertia term makes cells fade over several
// generations instead of flickering.
const (
	graduatedSurviveMean  = 2.5
	graduatedSurviveSigma = 1.0
	graduatedBirthMean    = 3.0
	graduatedBirthSigma   = 0.6
	graduatedInertia      = 0.35
)

// graduatedNext computes the next vitality from the current value and the
// weighted neighbor sum. Continuous in both arguments and clamped to [0, 1].
func graduatedNext(current, sum float64) float64 {
	survive := gauss(sum, graduatedSurviveMean, graduatedSurviveSigma)
	birth := gauss(sum, graduatedBirthMean, graduatedBirthSigma)
	target := current*survive + (1-current)*birth
	return clamp01(graduatedInertia*current + (1-graduatedInertia)*target)
}

func gauss(x, mean, sigma float64) float64 {
	d := (x - mean) / sigma
	return math.Exp(-0.5 * d * d)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
