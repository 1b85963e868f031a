package astar

import (
	"fmt"
	"math"
	"strings"
)

// Heuristic selects the remaining-cost estimator.
type Heuristic int

const (
	// Manhattan is (|dx| + |dy|) * 10.
	Manhattan Heuristic = iota
	// Euclidean is sqrt(dx² + dy²) * 10, truncated.
	Euclidean
	// Octile is 10*max(|dx|,|dy|) + 4*min(|dx|,|dy|).
	Octile
)

var heuristicNames = [...]string{
	Manhattan: "manhattan",
	Euclidean: "euclidean",
	Octile:    "octile",
}

// Heuristics lists every supported heuristic in declaration order.
func Heuristics() []Heuristic {
	return []Heuristic{Manhattan, Euclidean, Octile}
}

// Valid reports whether h is one of the declared heuristics.
func (h Heuristic) Valid() bool {
	return h >= Manhattan && h <= Octile
}

func (h Heuristic) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}

	return heuristicNames[h]
}

// ParseHeuristic maps a case-insensitive name to a Heuristic.
func ParseHeuristic(name string) (Heuristic, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for h, s := range heuristicNames {
		if s == n {
			return Heuristic(h), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// Estimate returns the estimated cost from a to b.
// It panics for a value outside the enumeration; the Engine never lets one
// reach this point.
func (h Heuristic) Estimate(a, b Coord) uint {
	dx, dy := absDiff(a.X, b.X), absDiff(a.Y, b.Y)
	switch h {
	case Manhattan:
		return uint(dx+dy) * 10
	case Euclidean:
		return uint(math.Sqrt(float64(dx*dx+dy*dy)) * 10)
	case Octile:
		return uint(10*max(dx, dy) + 4*min(dx, dy))
	default:
		panic(fmt.Sprintf("%v: %d", ErrUnknownHeuristic, int(h)))
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
