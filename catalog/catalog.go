package catalog

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridstar/gridgraph"
)

// Sentinel errors for catalog operations.
var (
	// ErrUnknownMap indicates no entry matches the requested id.
	ErrUnknownMap = errors.New("catalog: unknown map identifier")
	// ErrBadCell indicates a character outside the map alphabet.
	ErrBadCell = errors.New("catalog: invalid map cell")
	// ErrEmptyMap indicates a map without rows.
	ErrEmptyMap = errors.New("catalog: map has no rows")
	// ErrDuplicateID indicates two entries share an id.
	ErrDuplicateID = errors.New("catalog: duplicate map identifier")
)

//go:embed maps.yaml
var builtinYAML []byte

// Entry is one named map.
type Entry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Grid        string `yaml:"grid"`
}

// Rows parses the entry's grid text.
func (e Entry) Rows() ([][]bool, error) {
	rows, err := Parse(strings.NewReader(e.Grid))
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", e.ID, err)
	}

	return rows, nil
}

type file struct {
	Maps []Entry `yaml:"maps"`
}

// Catalog is an id-indexed set of maps. Grids are parsed once and cached;
// the cached grids are immutable and may be shared.
type Catalog struct {
	mu      sync.Mutex
	entries map[string]Entry
	grids   map[string]*gridgraph.Grid
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It panics if the embedded YAML is
// malformed, which only a broken build can cause.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(builtinYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded maps: %v", err))
		}
		defaultCatalog = c
	})

	return defaultCatalog
}

// Load decodes a YAML document with a top-level "maps" list.
func Load(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	c := New()
	for _, e := range f.Maps {
		if err := c.Add(e); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		entries: make(map[string]Entry),
		grids:   make(map[string]*gridgraph.Grid),
	}
}

// Add validates and registers e.
func (c *Catalog) Add(e Entry) error {
	rows, err := e.Rows()
	if err != nil {
		return err
	}
	g, err := gridgraph.New(rows)
	if err != nil {
		return fmt.Errorf("catalog: map %q: %w", e.ID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.entries[e.ID]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
	}
	c.entries[e.ID] = e
	c.grids[e.ID] = g

	return nil
}

// Grid returns the grid registered under id.
func (c *Catalog) Grid(id string) (*gridgraph.Grid, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.grids[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMap, id)
	}

	return g, nil
}

// Entry returns the entry registered under id.
func (c *Catalog) Entry(id string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]

	return e, ok
}

// IDs returns all ids in ascending order.
func (c *Catalog) IDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Parse reads a text map. See the package documentation for the alphabet.
// Row lengths are not checked here; gridgraph.New rejects ragged input.
func Parse(r io.Reader) ([][]bool, error) {
	var rows [][]bool
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		row := make([]bool, 0, len(text))
		for col, ch := range text {
			switch ch {
			case '#', 'X', 'x', '1':
				row = append(row, true)
			case '.', '_', '0':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrBadCell, ch, line, col+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	return rows, nil
}

// LoadFile reads a custom map. Files ending in .yaml or .yml hold either a
// single Entry or a "maps" list (the first entry is used); anything else is
// parsed as a text map.
func LoadFile(path string) (*gridgraph.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	var rows [][]bool
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		e, err := decodeEntry(data)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", path, err)
		}
		rows, err = e.Rows()
		if err != nil {
			return nil, err
		}
	default:
		rows, err = Parse(strings.NewReader(string(data)))
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", path, err)
		}
	}

	g, err := gridgraph.New(rows)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}

	return g, nil
}

// decodeEntry accepts either a single entry or a "maps" list.
func decodeEntry(data []byte) (Entry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Entry{}, err
	}
	if len(f.Maps) > 0 {
		return f.Maps[0], nil
	}
	var e Entry
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Entry{}, err
	}
	if strings.TrimSpace(e.Grid) == "" {
		return Entry{}, ErrEmptyMap
	}

	return e, nil
}
