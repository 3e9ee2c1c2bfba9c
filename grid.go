// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

// Grid keeps track of which cells of a pane are claimed by which child
// component.  A grid is exclusively owned by the pane which created it
// from its own Dim; it is never shared between panes.
type Grid struct {
	dim   Dim
	cells []Component
}

// NewGrid returns a grid of given size with all cells free.
func NewGrid(d Dim) *Grid {
	return &Grid{dim: d, cells: make([]Component, d.Cells())}
}

// Dim returns the size of receiving grid.
func (g *Grid) Dim() Dim { return g.dim }

// HasSpace returns true iff a d-sized rectangle anchored with its
// top-left corner at (x,y) lies inside the grid and none of its cells
// is claimed.
func (g *Grid) HasSpace(x, y int, d Dim) bool {
	if d.IsZero() || x < 0 || y < 0 ||
		x > g.dim.w-d.w || y > g.dim.h-d.h {
		return false
	}
	for j := y; j < y+d.h; j++ {
		for i := x; i < x+d.w; i++ {
			if g.cells[GridToSlot(g.dim.w, i, j)] != nil {
				return false
			}
		}
	}
	return true
}

// Claim marks the footprint of given component anchored at (x,y) as
// occupied by c.  Claim is all or nothing: it returns false without
// changing any cell if the footprint doesn't fit (see HasSpace).
func (g *Grid) Claim(x, y int, c Component) bool {
	if c == nil {
		return false
	}
	d := c.Dim()
	if !g.HasSpace(x, y, d) {
		return false
	}
	for j := y; j < y+d.h; j++ {
		for i := x; i < x+d.w; i++ {
			g.cells[GridToSlot(g.dim.w, i, j)] = c
		}
	}
	return true
}

// Release frees every cell claimed by a component with the identity of
// given component.
func (g *Grid) Release(c Component) {
	if c == nil {
		return
	}
	id := c.ID()
	for i, o := range g.cells {
		if o == nil || o.ID() != id {
			continue
		}
		g.cells[i] = nil
	}
}

// At returns the component occupying the cell (x,y) or nil if the cell
// is free or outside the grid.
func (g *Grid) At(x, y int) Component {
	if x < 0 || y < 0 || x >= g.dim.w || y >= g.dim.h {
		return nil
	}
	return g.cells[GridToSlot(g.dim.w, x, y)]
}

// Origin returns the top-left cell of given component's footprint; ok
// is false if c doesn't occupy any cell.
func (g *Grid) Origin(c Component) (x, y int, ok bool) {
	if c == nil {
		return 0, 0, false
	}
	for i, o := range g.cells {
		if o == nil || o.ID() != c.ID() {
			continue
		}
		x, y = SlotToGrid(g.dim.w, i)
		return x, y, true
	}
	return 0, 0, false
}

// Free returns the number of unclaimed cells.
func (g *Grid) Free() int {
	n := 0
	for _, o := range g.cells {
		if o == nil {
			n++
		}
	}
	return n
}

// SlotToGrid converts the linear slot index of a grid with given width
// into its cell coordinates.
func SlotToGrid(gridWidth, slot int) (x, y int) {
	return slot % gridWidth, slot / gridWidth
}

// GridToSlot converts the cell coordinates of a grid with given width
// into the cell's linear slot index.
func GridToSlot(gridWidth, x, y int) int { return y*gridWidth + x }
