// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package term

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/slukits/ints"
	"github.com/slukits/panes"
)

// Screen is the panes.Surface a hosted component tree is rendered to.
// Its slots are the cells of the hosted grid.
type Screen struct {
	lib     tcell.Screen
	dim     panes.Dim
	cw      int
	style   tcell.Style
	written *ints.Set
	pending atomic.Bool
	log     *zerolog.Logger
}

func newScreen(lib tcell.Screen, o Options) *Screen {
	return &Screen{lib: lib, dim: o.Dim, cw: o.CellWidth, style: o.Style,
		written: &ints.Set{}, log: o.Logger}
}

// Dim returns the size of the hosted grid.
func (s *Screen) Dim() panes.Dim { return s.dim }

// CellWidth returns the number of terminal columns of a grid cell.
func (s *Screen) CellWidth() int { return s.cw }

// Set draws given item's glyph with the item's style centered into the
// block of given slot.  Set fails if slot is not a cell of the grid.
func (s *Screen) Set(slot int, it panes.Item) error {
	if slot < 0 || slot >= s.dim.Cells() {
		return fmt.Errorf("%w: %d not in [0,%d)",
			panes.ErrSlot, slot, s.dim.Cells())
	}
	s.written.Add(slot)
	if it.IsZero() {
		s.clear(slot)
		return nil
	}
	x, y := panes.SlotToGrid(s.dim.Width(), slot)
	for i := 0; i < s.cw; i++ {
		r := ' '
		if i == s.cw/2 && it.Glyph() != 0 {
			r = it.Glyph()
		}
		s.lib.SetContent(x*s.cw+i, y, r, nil, it.Style())
	}
	return nil
}

func (s *Screen) clear(slot int) {
	x, y := panes.SlotToGrid(s.dim.Width(), slot)
	for i := 0; i < s.cw; i++ {
		s.lib.SetContent(x*s.cw+i, y, ' ', nil, s.style)
	}
}

// RequestRender schedules a render pass of the hosted component tree.
// Requests are coalesced until the pending render pass was executed.
func (s *Screen) RequestRender() {
	if !s.pending.CompareAndSwap(false, true) {
		return
	}
	if err := s.lib.PostEvent(&renderEvent{when: time.Now()}); err != nil {
		s.pending.Store(false)
		s.log.Error().Err(err).Msg("can't post render request")
	}
}

// Pending returns true if a render pass is scheduled.
func (s *Screen) Pending() bool { return s.pending.Load() }

// Slot translates given terminal coordinates into the slot of the grid
// cell they fall into; ok is false if the coordinates are outside the
// grid.
func (s *Screen) Slot(tx, ty int) (slot int, ok bool) {
	if tx < 0 || ty < 0 {
		return 0, false
	}
	x, y := tx/s.cw, ty
	if x >= s.dim.Width() || y >= s.dim.Height() {
		return 0, false
	}
	return panes.GridToSlot(s.dim.Width(), x, y), true
}

// ToSmall returns true if the terminal can't display the whole grid.
func (s *Screen) ToSmall() bool {
	w, h := s.lib.Size()
	return w < s.dim.Width()*s.cw || h < s.dim.Height()
}

// ErrScreenFmt is the displayed message if the terminal is smaller than
// the hosted grid.
const ErrScreenFmt = "minimum screen: %dx%d"

// render renders given root into the screen and clears all slots which
// were not written during the render pass.  If the terminal is to small
// an error message is displayed instead.
func (s *Screen) render(root panes.Component, v panes.Viewer) {
	s.pending.Store(false)
	if s.ToSmall() {
		s.minErr()
		return
	}
	s.written = &ints.Set{}
	if root != nil {
		root.Render(s, v, 0, 0)
	}
	for slot := 0; slot < s.dim.Cells(); slot++ {
		if s.written.Has(slot) {
			continue
		}
		s.clear(slot)
	}
}

func (s *Screen) minErr() {
	s.lib.Clear()
	msg := fmt.Sprintf(ErrScreenFmt, s.dim.Width()*s.cw, s.dim.Height())
	w, h := s.lib.Size()
	x, y := w/2-len(msg)/2, h/2
	if len(msg) > w {
		x = 0
	}
	for i, r := range msg {
		s.lib.SetContent(x+i, y, r, nil, s.style)
	}
}

type renderEvent struct {
	when time.Time
}

func (e *renderEvent) When() time.Time { return e.when }
