package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/gridgraph"
)

// Cell glyphs, two columns each so cells look square in most fonts.
const (
	GlyphBlocked = "▒▒"
	GlyphPath    = "██"
	GlyphOpen    = "░░"
	GlyphFree    = "  "
)

// clearSeq moves the cursor home and clears the screen.
const clearSeq = "\x1b[H\x1b[2J"

var (
	blockedColor = text.Colors{text.Faint}
	pathColor    = text.Colors{text.FgGreen}
	openColor    = text.Colors{text.FgYellow}
)

// Terminal writes frames to an io.Writer.
type Terminal struct {
	w     io.Writer
	color bool
	clear bool
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithColor toggles ANSI colours. Enabled by default.
func WithColor(enabled bool) Option {
	return func(t *Terminal) { t.color = enabled }
}

// WithClear toggles clearing the screen before every frame. Enabled by default.
func WithClear(enabled bool) Option {
	return func(t *Terminal) { t.clear = enabled }
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer, opts ...Option) *Terminal {
	t := &Terminal{w: w, color: true, clear: true}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

var _ astar.Renderer = (*Terminal)(nil)

// Render draws one frame. The whole frame is written in a single call.
func (t *Terminal) Render(g *gridgraph.Grid, path astar.Path, open []astar.Coord) error {
	var b strings.Builder
	if t.clear {
		b.WriteString(clearSeq)
	}
	b.WriteString(Frame(g, path, open, t.color))
	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// ClearScreen writes the clear-screen sequence.
func (t *Terminal) ClearScreen() error {
	if _, err := io.WriteString(t.w, clearSeq); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// Frame returns the grid as text, one line per row. Path cells take
// precedence over open cells.
func Frame(g *gridgraph.Grid, path astar.Path, open []astar.Coord, color bool) string {
	inOpen := make(map[astar.Coord]struct{}, len(open))
	for _, c := range open {
		inOpen[c] = struct{}{}
	}

	var b strings.Builder
	b.Grow(g.Height * (g.Width*2 + 1))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := astar.Coord{X: x, Y: y}
			_, isOpen := inOpen[c]
			switch {
			case g.Blocked(c):
				b.WriteString(paint(GlyphBlocked, blockedColor, color))
			case path.Contains(c):
				b.WriteString(paint(GlyphPath, pathColor, color))
			case isOpen:
				b.WriteString(paint(GlyphOpen, openColor, color))
			default:
				b.WriteString(GlyphFree)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func paint(s string, c text.Colors, enabled bool) string {
	if !enabled {
		return s
	}

	return c.Sprint(s)
}
