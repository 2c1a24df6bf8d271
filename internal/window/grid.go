// Package window arranges Chrome windows into an on-screen grid.
package window

import (
	"errors"
	"fmt"
)

// ErrInvalidColumns indicates a non-positive column count.
var ErrInvalidColumns = errors.New("invalid column count")

// Bounds is one window's rectangle as {left, top, right, bottom}.
type Bounds struct {
	X1, Y1, X2, Y2 int
}

// Grid describes the target layout: fixed-size cells filled left to
// right, top to bottom.
type Grid struct {
	Columns    int
	CellWidth  int
	CellHeight int
}

// Placements returns the bounds for n windows; placement i corresponds
// to the window at 1-based position i+1.
func (g Grid) Placements(n int) []Bounds {
	placements := make([]Bounds, 0, n)
	for idx := 1; idx <= n; idx++ {
		row := (idx - 1) / g.Columns
		col := (idx - 1) % g.Columns
		x := col * g.CellWidth
		y := row * g.CellHeight
		placements = append(placements, Bounds{
			X1: x,
			Y1: y,
			X2: x + g.CellWidth,
			Y2: y + g.CellHeight,
		})
	}
	return placements
}

// Automator positions the application's open windows. Implementations
// address the application as a whole, not individual processes.
type Automator interface {
	// WindowCount returns how many windows the application has open.
	WindowCount() (int, error)

	// SetBounds moves and resizes the application's windows so window
	// i+1 (1-based ordering) gets placements[i].
	SetBounds(placements []Bounds) error
}

// ArrangeGrid tiles all open windows into the grid. Zero open windows
// is a no-op, not an error.
func ArrangeGrid(a Automator, g Grid) error {
	if g.Columns < 1 {
		return fmt.Errorf("%w: %d columns", ErrInvalidColumns, g.Columns)
	}

	n, err := a.WindowCount()
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	return a.SetBounds(g.Placements(n))
}
