// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

import "golang.org/x/exp/slices"

// Pane is a composite component placing child components on a grid of
// its own size.  Every child occupies a non-empty rectangle of the
// grid which doesn't overlap with any other child's rectangle and every
// claimed cell belongs to exactly one child.  Placement policies differ
// in how children are added, see AnchorPane and FlowPane.
type Pane interface {
	Component

	// Contains returns true iff given component instance is a child of
	// the pane.
	Contains(Component) bool

	// Children returns the pane's children in insertion order.
	Children() []Component

	// Origin returns the top-left cell of given child's footprint; ok
	// is false if c is not a child.
	Origin(c Component) (x, y int, ok bool)
}

type child struct {
	c    Component
	x, y int
}

// pane implements the behavior shared by all placement policies.
type pane struct {
	id      ID
	dim     Dim
	grid    *Grid
	cc      []child
	surface Surface
}

func newPane(d Dim) pane {
	if d.IsZero() {
		log().Error().Stringer("dim", d).Msg("pane with zero dim")
		panic(ErrDim)
	}
	return pane{id: nextID(), dim: d, grid: NewGrid(d)}
}

// ID returns the pane's identity.
func (p *pane) ID() ID { return p.id }

// Dim returns the pane's size.
func (p *pane) Dim() Dim { return p.dim }

// Len returns the number of children.
func (p *pane) Len() int { return len(p.cc) }

// Free returns the number of unclaimed cells.
func (p *pane) Free() int { return p.grid.Free() }

// At returns the child occupying the cell (x,y) or nil.
func (p *pane) At(x, y int) Component { return p.grid.At(x, y) }

// Contains returns true iff given component instance is a child.
func (p *pane) Contains(c Component) bool { return p.index(c) >= 0 }

func (p *pane) index(c Component) int {
	if c == nil {
		return -1
	}
	id := c.ID()
	return slices.IndexFunc(p.cc, func(ch child) bool {
		return ch.c.ID() == id
	})
}

// Children returns the children in insertion order.
func (p *pane) Children() []Component {
	cc := make([]Component, len(p.cc))
	for i, ch := range p.cc {
		cc[i] = ch.c
	}
	return cc
}

// Origin returns the top-left cell of given child's footprint.
func (p *pane) Origin(c Component) (x, y int, ok bool) {
	idx := p.index(c)
	if idx < 0 {
		return 0, 0, false
	}
	return p.cc[idx].x, p.cc[idx].y, true
}

// Attach binds the pane and all its descendants to given surface.
func (p *pane) Attach(s Surface) {
	p.surface = s
	for _, ch := range p.cc {
		attach(ch.c, s)
	}
}

// Surface returns the surface the pane is attached to or nil.
func (p *pane) Surface() Surface { return p.surface }

// add places c at (x,y) if c is not yet a child of self, wouldn't
// become its own ancestor and fits.
func (p *pane) add(self Pane, c Component, x, y int) bool {
	if c == nil || p.Contains(c) || isAncestor(c, self) {
		return false
	}
	if !p.grid.Claim(x, y, c) {
		return false
	}
	p.cc = append(p.cc, child{c: c, x: x, y: y})
	if p.surface != nil {
		attach(c, p.surface)
		p.surface.RequestRender()
	}
	return true
}

// isAncestor returns true if c is p or c is a pane containing p in its
// subtree.  The subtree of a tree pane is rooted at its current pane.
func isAncestor(c Component, p Pane) bool {
	if Same(c, p) {
		return true
	}
	if tp, ok := c.(*TreePane); ok {
		return tp.current != nil && isAncestor(tp.current, p)
	}
	cp, ok := c.(Pane)
	if !ok {
		return false
	}
	for _, ch := range cp.Children() {
		if isAncestor(ch, p) {
			return true
		}
	}
	return false
}

// remove releases the footprint of given child, detaches it and
// removes it from the children.
func (p *pane) remove(c Component) bool {
	idx := p.index(c)
	if idx < 0 {
		return false
	}
	removed := p.cc[idx].c
	p.grid.Release(removed)
	p.cc = slices.Delete(p.cc, idx, idx+1)
	if p.surface != nil {
		attach(removed, nil)
		p.surface.RequestRender()
	}
	return true
}

// render renders the children in insertion order at their origin
// offset by (x,y).  A child whose footprint is not inside given surface
// is reported and skipped; the remaining children are rendered anyway.
func (p *pane) render(s Surface, v Viewer, x, y int) {
	sd := s.Dim()
	for _, ch := range p.cc {
		ax, ay, d := x+ch.x, y+ch.y, ch.c.Dim()
		if ax < 0 || ay < 0 || ax+d.w > sd.w || ay+d.h > sd.h {
			log().Error().Stringer("pane", p.id).
				Stringer("component", ch.c.ID()).Int("x", ax).
				Int("y", ay).Stringer("dim", d).
				Stringer("surface", sd).
				Msg("child outside surface: skipped")
			continue
		}
		ch.c.Render(s, v, ax, ay)
	}
}

// click reports given event to the child occupying the clicked cell.
func (p *pane) click(self Pane, e *ClickEvent) {
	e.lastPane = self
	x, y := e.Local()
	idx := p.index(p.grid.At(x, y))
	if idx < 0 {
		return
	}
	e.forward(p.cc[idx].c, p.cc[idx].x, p.cc[idx].y)
}

// cloneInto adds deep clones of p's children at their origins to q.
func (p *pane) cloneInto(self Pane, q *pane) {
	for _, ch := range p.cc {
		if !q.add(self, ch.c.DeepClone(), ch.x, ch.y) {
			log().Error().Stringer("pane", p.id).
				Stringer("component", ch.c.ID()).
				Msg("clone: can't place cloned child")
		}
	}
}
