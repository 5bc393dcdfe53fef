package speedreading

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/width"
)

// DefaultAnchorColor is the highlight used for the anchor character.
const DefaultAnchorColor = "#e74c3c"

// TerminalRenderer draws frames as text lines with the anchor character held
// in a fixed column. Cells are measured in terminal columns, so wide runes
// take two.
type TerminalRenderer struct {
	w       io.Writer
	grid    Grid
	inPlace bool
	anchor  lipgloss.Style
	err     error
}

// TerminalOption configures a TerminalRenderer.
type TerminalOption func(*terminalOptions)

type terminalOptions struct {
	grid        Grid
	inPlace     bool
	anchorColor string
}

// WithGrid sets the cell grid. Invalid grids fall back to DefaultGrid.
func WithGrid(g Grid) TerminalOption {
	return func(o *terminalOptions) {
		o.grid = g
	}
}

// WithInPlace redraws every frame over the previous one instead of
// writing one line per frame.
func WithInPlace(inPlace bool) TerminalOption {
	return func(o *terminalOptions) {
		o.inPlace = inPlace
	}
}

// WithAnchorColor sets the anchor highlight (hex or ANSI colour number).
func WithAnchorColor(color string) TerminalOption {
	return func(o *terminalOptions) {
		o.anchorColor = color
	}
}

func NewTerminalRenderer(w io.Writer, opts ...TerminalOption) *TerminalRenderer {
	options := &terminalOptions{
		grid:        DefaultGrid(),
		anchorColor: DefaultAnchorColor,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.grid.Validate() != nil {
		options.grid = DefaultGrid()
	}

	r := lipgloss.NewRenderer(w)
	return &TerminalRenderer{
		w:       w,
		grid:    options.grid,
		inPlace: options.inPlace,
		anchor:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(options.anchorColor)),
	}
}

func (t *TerminalRenderer) Render(f Frame) {
	t.write(t.line(f.Layout) + "  " + f.Progress())
}

func (t *TerminalRenderer) Clear() {
	t.write(strings.Repeat(" ", t.grid.Cells) + "  " + emptyProgress)
}

// Err returns the first write error, if any.
func (t *TerminalRenderer) Err() error {
	return t.err
}

// line renders the grid row: exactly grid.Cells columns, anchor at column
// grid.Anchor.
func (t *TerminalRenderer) line(l Layout) string {
	if !l.HasAnchor() {
		return strings.Repeat(" ", t.grid.Cells)
	}

	cells := t.grid.Place(l)
	leftCols := t.grid.Anchor
	rightCols := t.grid.Cells - t.grid.Anchor - 1

	// Walk outwards from the anchor so that overflow is dropped at the edges.
	var left []string
	used := 0
	for i := t.grid.Anchor - 1; i >= 0; i-- {
		w := displayWidth(cells[i].Text)
		if cells[i].Text == "" || used+w > leftCols {
			break
		}
		left = append(left, cells[i].Text)
		used += w
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", leftCols-used))
	for i := len(left) - 1; i >= 0; i-- {
		b.WriteString(left[i])
	}

	b.WriteString(t.anchor.Render(l.Anchor))
	// A wide anchor eats into the right-hand columns.
	used = displayWidth(l.Anchor) - 1
	for i := t.grid.Anchor + 1; i < len(cells); i++ {
		w := displayWidth(cells[i].Text)
		if cells[i].Text == "" || used+w > rightCols {
			break
		}
		b.WriteString(cells[i].Text)
		used += w
	}
	if used < rightCols {
		b.WriteString(strings.Repeat(" ", rightCols-used))
	}
	return b.String()
}

func (t *TerminalRenderer) write(s string) {
	if t.err != nil {
		return
	}
	if t.inPlace {
		_, t.err = fmt.Fprintf(t.w, "\r\x1b[K%s", s)
		return
	}
	_, t.err = fmt.Fprintln(t.w, s)
}

func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

func runeWidth(r rune) int {
	if unicode.In(r, unicode.Mn, unicode.Me) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
