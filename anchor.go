// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

// AnchorPane places each child at explicitly given coordinates.
type AnchorPane struct{ pane }

// NewAnchorPane creates an empty anchor pane of given size.  It panics
// if d is the zero Dim.
func NewAnchorPane(d Dim) *AnchorPane {
	return &AnchorPane{pane: newPane(d)}
}

// Add places given component with its top-left cell at (x,y).  Add
// returns false and leaves the pane unchanged if c is already a child,
// if c is the pane or one of its ancestors or if the footprint doesn't
// fit into the free cells.
func (ap *AnchorPane) Add(c Component, x, y int) bool {
	return ap.add(ap, c, x, y)
}

// Remove removes given child and frees its footprint.
func (ap *AnchorPane) Remove(c Component) bool { return ap.remove(c) }

// RemoveAt removes the child occupying the cell (x,y).  It returns
// false if the cell is free.
func (ap *AnchorPane) RemoveAt(x, y int) bool {
	c := ap.grid.At(x, y)
	if c == nil {
		return false
	}
	return ap.remove(c)
}

// Render renders the children offset by (x,y).
func (ap *AnchorPane) Render(s Surface, v Viewer, x, y int) {
	ap.render(s, v, x, y)
}

// OnClick reports given event to the child at the clicked cell.
func (ap *AnchorPane) OnClick(e *ClickEvent) { ap.click(ap, e) }

// DeepClone returns an unattached anchor pane with a fresh identity and
// deep clones of the children at the same coordinates.
func (ap *AnchorPane) DeepClone() Component {
	cp := NewAnchorPane(ap.dim)
	ap.cloneInto(cp, &cp.pane)
	return cp
}
