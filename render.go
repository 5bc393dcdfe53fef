package speedreading

import (
	"errors"
	"fmt"
)

// Renderer presents frames to the reader. Implementations are called
// serially by the Player and must not call back into it.
type Renderer interface {
	Render(f Frame)
	Clear()
}

// RendererFunc adapts a plain function to a Renderer whose Clear is a no-op.
type RendererFunc func(f Frame)

func (fn RendererFunc) Render(f Frame) { fn(f) }
func (fn RendererFunc) Clear()         {}

// ErrInvalidGrid is returned by Grid.Validate.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is a fixed row of character cells with the anchor pinned to one of them.
type Grid struct {
	Cells  int
	Anchor int
}

// Cell is one slot of a placed grid.
type Cell struct {
	Text   string
	Anchor bool
}

// DefaultGrid returns nine cells anchored on the fifth.
func DefaultGrid() Grid {
	return Grid{Cells: 9, Anchor: 4}
}

func (g Grid) Validate() error {
	if g.Cells < 1 {
		return fmt.Errorf("%w: %d cells", ErrInvalidGrid, g.Cells)
	}
	if g.Anchor < 0 || g.Anchor >= g.Cells {
		return fmt.Errorf("%w: anchor cell %d outside 0..%d", ErrInvalidGrid, g.Anchor, g.Cells-1)
	}
	return nil
}

// Place spreads the layout over the grid: the anchor goes into the anchor
// cell, the characters before it fill leftwards and the characters after it
// fill rightwards. Characters that run off either edge are dropped.
func (g Grid) Place(l Layout) []Cell {
	cells := make([]Cell, g.Cells)
	if !l.HasAnchor() {
		return cells
	}

	cells[g.Anchor] = Cell{Text: l.Anchor, Anchor: true}

	before := []rune(l.Before)
	charIdx := len(before) - 1
	cellIdx := g.Anchor - 1
	for charIdx >= 0 && cellIdx >= 0 {
		cells[cellIdx].Text = string(before[charIdx])
		charIdx--
		cellIdx--
	}

	after := []rune(l.After)
	charIdx = 0
	cellIdx = g.Anchor + 1
	for charIdx < len(after) && cellIdx < g.Cells {
		cells[cellIdx].Text = string(after[charIdx])
		charIdx++
		cellIdx++
	}

	return cells
}

// Visible reports whether the whole layout fits the grid.
func (g Grid) Visible(l Layout) bool {
	if !l.HasAnchor() {
		return true
	}
	return len([]rune(l.Before)) <= g.Anchor && len([]rune(l.After)) <= g.Cells-g.Anchor-1
}
