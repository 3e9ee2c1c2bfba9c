// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

import (
	"errors"
	"fmt"
	"strings"
)

// Surface is what a host provides to render a component tree into.  A
// surface is a Dim-sized grid of linear slots (see GridToSlot).
type Surface interface {

	// Dim returns the surface's size in grid cells.
	Dim() Dim

	// Set writes given item into given slot.  Set fails with an error
	// wrapping ErrSlot if slot is outside the surface.
	Set(slot int, it Item) error

	// RequestRender asks the host to re-render the surface's component
	// tree with its next render pass.  The re-render never happens
	// synchronously.
	RequestRender()
}

// Viewer identifies who is looking at a surface.  It is passed through
// render calls and click events but never interpreted by this package.
type Viewer interface{}

// ErrSlot is wrapped by errors of Surface.Set implementations for slots
// outside the surface.
var ErrSlot = errors.New("panes: surface: slot out of range")

// Mount attaches given root component to given surface, i.e. panes of
// the tree will request re-renders from s.
func Mount(s Surface, root Component) { attach(root, s) }

// Canvas is an in-memory Surface, e.g. for testing or for embedders
// which translate slots themselves.  A canvas is not safe for
// concurrent use.
type Canvas struct {
	dim       Dim
	slots     []Item
	requested int
	frames    int
}

// NewCanvas creates a canvas of given size with all slots empty.
func NewCanvas(d Dim) *Canvas {
	return &Canvas{dim: d, slots: make([]Item, d.Cells())}
}

// Dim returns the size of the canvas.
func (c *Canvas) Dim() Dim { return c.dim }

// Set writes given item into given slot.
func (c *Canvas) Set(slot int, it Item) error {
	if slot < 0 || slot >= len(c.slots) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSlot, slot, len(c.slots))
	}
	c.slots[slot] = it
	return nil
}

// RequestRender records a render request which is served by the next
// Frame call.
func (c *Canvas) RequestRender() { c.requested++ }

// Pending returns true if a render was requested since the last frame.
func (c *Canvas) Pending() bool { return c.requested > 0 }

// Frames returns the number of executed render passes.
func (c *Canvas) Frames() int { return c.frames }

// Frame is the canvas's render entry point: it clears the canvas and
// renders given root into it iff this is the first frame or a render
// was requested since the last frame.  Frame returns true if a render
// pass was executed.
func (c *Canvas) Frame(root Component, v Viewer) bool {
	if c.frames > 0 && c.requested == 0 {
		return false
	}
	c.requested = 0
	for i := range c.slots {
		c.slots[i] = Item{}
	}
	if root != nil {
		root.Render(c, v, 0, 0)
	}
	c.frames++
	return true
}

// At returns the item of cell (x,y).
func (c *Canvas) At(x, y int) Item {
	if x < 0 || y < 0 || x >= c.dim.w || y >= c.dim.h {
		return Item{}
	}
	return c.slots[GridToSlot(c.dim.w, x, y)]
}

// String returns the glyphs of the canvas row by row; empty slots are
// represented by a dot.
func (c *Canvas) String() string {
	sb := strings.Builder{}
	for y := 0; y < c.dim.h; y++ {
		if y > 0 {
			sb.WriteString("\n")
		}
		for x := 0; x < c.dim.w; x++ {
			it := c.At(x, y)
			if it.Glyph() == 0 {
				sb.WriteRune('.')
				continue
			}
			sb.WriteRune(it.Glyph())
		}
	}
	return sb.String()
}
