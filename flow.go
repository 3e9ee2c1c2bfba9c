// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

// FlowPane places each added child at the first cell, in row-major
// order, where it fits (first-fit).  Removing a child leaves a gap
// which is neither compacted nor refilled by moving other children;
// only later added children may fill it.
type FlowPane struct {
	pane

	// low is the lowest slot which may be free: all slots before it
	// are claimed.
	low int
}

// NewFlowPane creates an empty flow pane of given size.  It panics if d
// is the zero Dim.
func NewFlowPane(d Dim) *FlowPane {
	return &FlowPane{pane: newPane(d)}
}

// Next returns the cell where a component of given size would be
// placed by Add; ok is false if there is no such cell.
func (fp *FlowPane) Next(d Dim) (x, y int, ok bool) {
	// an anchor before low has its top-left cell claimed
	for slot := fp.low; slot < fp.dim.Cells(); slot++ {
		x, y := SlotToGrid(fp.dim.w, slot)
		if fp.grid.HasSpace(x, y, d) {
			return x, y, true
		}
	}
	return 0, 0, false
}

// Add places given component at the first cell where it fits.  Add
// returns false and leaves the pane unchanged if c is already a child,
// if c is the pane or one of its ancestors or if there is no cell where
// c fits.
func (fp *FlowPane) Add(c Component) bool {
	if c == nil {
		return false
	}
	x, y, ok := fp.Next(c.Dim())
	if !ok || !fp.add(fp, c, x, y) {
		return false
	}
	for fp.low < fp.dim.Cells() &&
		fp.grid.At(SlotToGrid(fp.dim.w, fp.low)) != nil {
		fp.low++
	}
	return true
}

// Remove removes given child and frees its footprint without moving
// any other child.
func (fp *FlowPane) Remove(c Component) bool {
	x, y, ok := fp.Origin(c)
	if !ok || !fp.remove(c) {
		return false
	}
	if slot := GridToSlot(fp.dim.w, x, y); slot < fp.low {
		fp.low = slot
	}
	return true
}

// Render renders the children offset by (x,y).
func (fp *FlowPane) Render(s Surface, v Viewer, x, y int) {
	fp.render(s, v, x, y)
}

// OnClick reports given event to the child at the clicked cell.
func (fp *FlowPane) OnClick(e *ClickEvent) { fp.click(fp, e) }

// DeepClone returns an unattached flow pane with a fresh identity and
// deep clones of the children at the same cells, i.e. gaps are kept.
func (fp *FlowPane) DeepClone() Component {
	cp := NewFlowPane(fp.dim)
	fp.cloneInto(cp, &cp.pane)
	cp.low = fp.low
	return cp
}
