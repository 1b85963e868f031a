// Package config loads batch scenarios for the gridstar CLI.
//
// A scenario names one map (built-in id or file), the search options and a
// list of start/goal pairs:
//
//	map: a
//	heuristic: octile
//	relaxation: true
//	corner_cutting: true
//	max_steps: 0
//	limit: 4
//	queries:
//	  - from: [1, 1]
//	    to: [8, 8]
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/catalog"
	"github.com/katalvlaran/gridstar/gridgraph"
)

// Sentinel errors for scenario loading.
var (
	ErrNoQueries = errors.New("config: scenario has no queries")
	ErrBadCoord  = errors.New("config: invalid coordinate")
	ErrNoMap     = errors.New("config: exactly one of map or file is required")
)

// Pair is one start/goal query as written in YAML.
type Pair struct {
	From []int `yaml:"from"`
	To   []int `yaml:"to"`
}

// Scenario is a parsed batch file.
type Scenario struct {
	Map           string `yaml:"map,omitempty"`
	File          string `yaml:"file,omitempty"`
	Heuristic     string `yaml:"heuristic,omitempty"`
	MaxSteps      int    `yaml:"max_steps,omitempty"`
	Relaxation    *bool  `yaml:"relaxation,omitempty"`
	CornerCutting *bool  `yaml:"corner_cutting,omitempty"`
	Limit         int    `yaml:"limit,omitempty"`
	Queries       []Pair `yaml:"queries"`

	dir string // directory of the scenario file, for relative map paths
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)

	return s, nil
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("config: parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the fields that do not need a grid.
func (s *Scenario) Validate() error {
	if (s.Map == "") == (s.File == "") {
		return ErrNoMap
	}
	if s.Heuristic != "" {
		if _, err := astar.ParseHeuristic(s.Heuristic); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if s.MaxSteps < 0 || s.Limit < 0 {
		return fmt.Errorf("config: %w: max_steps and limit must not be negative", astar.ErrOptionViolation)
	}
	if len(s.Queries) == 0 {
		return ErrNoQueries
	}
	for i, q := range s.Queries {
		if len(q.From) != 2 || len(q.To) != 2 {
			return fmt.Errorf("%w: query %d needs [x, y] for from and to", ErrBadCoord, i+1)
		}
	}

	return nil
}

// Options converts the scenario settings into engine options.
func (s *Scenario) Options() []astar.Option {
	var opts []astar.Option
	if s.Heuristic != "" {
		h, _ := astar.ParseHeuristic(s.Heuristic) // checked by Validate
		opts = append(opts, astar.WithHeuristic(h))
	}
	if s.MaxSteps > 0 {
		opts = append(opts, astar.WithMaxSteps(s.MaxSteps))
	}
	if s.Relaxation != nil {
		opts = append(opts, astar.WithRelaxation(*s.Relaxation))
	}
	if s.CornerCutting != nil {
		opts = append(opts, astar.WithCornerCutting(*s.CornerCutting))
	}

	return opts
}

// SearchQueries returns the queries as engine coordinates.
func (s *Scenario) SearchQueries() []astar.Query {
	out := make([]astar.Query, len(s.Queries))
	for i, q := range s.Queries {
		out[i] = astar.Query{
			Start: astar.Coord{X: q.From[0], Y: q.From[1]},
			Goal:  astar.Coord{X: q.To[0], Y: q.To[1]},
		}
	}

	return out
}

// Grid resolves the scenario map. Relative file paths are taken from the
// scenario's directory.
func (s *Scenario) Grid(cat *catalog.Catalog) (*gridgraph.Grid, error) {
	if s.Map != "" {
		return cat.Grid(s.Map)
	}
	path := s.File
	if !filepath.IsAbs(path) && s.dir != "" {
		path = filepath.Join(s.dir, path)
	}

	return catalog.LoadFile(path)
}

// ParseCoord parses "x,y".
func ParseCoord(v string) (astar.Coord, error) {
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return astar.Coord{}, fmt.Errorf("%w: %q (want x,y)", ErrBadCoord, v)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return astar.Coord{}, fmt.Errorf("%w: %q (want x,y)", ErrBadCoord, v)
	}

	return astar.Coord{X: x, Y: y}, nil
}
