// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

import "github.com/gdamore/tcell/v2"

// ClickEvent is handed down from the root pane to the deepest component
// occupying the clicked cell.  Components may veto the click's default
// handling by cancelling it and inspect which pane handed it to them.
type ClickEvent struct {
	slot      int
	x, y      int
	lx, ly    int
	viewer    Viewer
	buttons   tcell.ButtonMask
	cancelled bool
	lastPane  Pane
}

// NewClickEvent creates a click event for given slot of a grid with
// given width, e.g. of the host surface.
func NewClickEvent(
	gridWidth, slot int, v Viewer, bb tcell.ButtonMask,
) *ClickEvent {
	x, y := SlotToGrid(gridWidth, slot)
	return &ClickEvent{slot: slot, x: x, y: y, lx: x, ly: y,
		viewer: v, buttons: bb}
}

// ClickAt creates a click event for the cell (x,y) of a grid with given
// width.
func ClickAt(gridWidth, x, y int, v Viewer, bb tcell.ButtonMask) *ClickEvent {
	return NewClickEvent(gridWidth, GridToSlot(gridWidth, x, y), v, bb)
}

// Slot returns the clicked slot of the host surface.
func (e *ClickEvent) Slot() int { return e.slot }

// Pos returns the clicked cell in host surface coordinates.
func (e *ClickEvent) Pos() (x, y int) { return e.x, e.y }

// Local returns the clicked cell relative to the top-left cell of the
// component the event is currently reported to.
func (e *ClickEvent) Local() (x, y int) { return e.lx, e.ly }

// Viewer returns the viewer who clicked.
func (e *ClickEvent) Viewer() Viewer { return e.viewer }

// Buttons returns the pressed mouse buttons.
func (e *ClickEvent) Buttons() tcell.ButtonMask { return e.buttons }

// Cancelled returns true if a component vetoed the click.
func (e *ClickEvent) Cancelled() bool { return e.cancelled }

// SetCancelled sets or revokes the veto of the click.
func (e *ClickEvent) SetCancelled(c bool) { e.cancelled = c }

// LastPane returns the last pane which handled the event on its way to
// the receiving component; nil if no pane has handled it yet.
func (e *ClickEvent) LastPane() Pane { return e.lastPane }

// forward reports the event to given child whose top-left cell is at
// (ox,oy) of the forwarding pane.  The event's local coordinates are
// restored after c returns.
func (e *ClickEvent) forward(c Component, ox, oy int) {
	lx, ly := e.lx, e.ly
	e.lx, e.ly = lx-ox, ly-oy
	c.OnClick(e)
	e.lx, e.ly = lx, ly
}
