// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/slukits/panes"
	. "github.com/slukits/panes/internal/tst"
)

type ADim struct{ Suite }

func (s *ADim) SetUp(t *T) { t.Parallel() }

func (s *ADim) Fails_construction_if_not_positive(t *T) {
	for _, wh := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {3, -2}} {
		_, err := panes.NewDim(wh[0], wh[1])
		t.ErrIs(err, panes.ErrDim)
	}
	t.Panics(func() { panes.MustDim(0, 0) })
}

func (s *ADim) Compares_by_value(t *T) {
	t.True(dim(9, 3) == dim(9, 3))
	t.Not.True(dim(9, 3) == dim(3, 9))
	t.Eq("9x3", dim(9, 3).String())
	t.Eq(27, dim(9, 3).Cells())
}

func (s *ADim) Holds_smaller_or_equal_dims(t *T) {
	t.True(dim(9, 3).Holds(dim(9, 3)))
	t.True(dim(9, 3).Holds(dim(2, 1)))
	t.Not.True(dim(9, 3).Holds(dim(10, 1)))
	t.Not.True(dim(9, 3).Holds(dim(1, 4)))
}

func TestADim(t *testing.T) {
	t.Parallel()
	Run(&ADim{}, t)
}

type AGrid struct{ Suite }

func (s *AGrid) SetUp(t *T) { t.Parallel() }

func (s *AGrid) Has_space_for_a_fitting_rectangle(t *T) {
	g := panes.NewGrid(dim(9, 3))
	t.True(g.HasSpace(0, 0, dim(9, 3)))
	t.True(g.HasSpace(7, 2, dim(2, 1)))
}

func (s *AGrid) Has_no_space_outside_its_bounds(t *T) {
	g := panes.NewGrid(dim(9, 3))
	t.Not.True(g.HasSpace(-1, 0, dim(1, 1)))
	t.Not.True(g.HasSpace(0, -1, dim(1, 1)))
	t.Not.True(g.HasSpace(8, 0, dim(2, 1)))
	t.Not.True(g.HasSpace(0, 2, dim(1, 2)))
	t.Not.True(g.HasSpace(9, 0, dim(1, 1)))
	t.Not.True(g.HasSpace(math.MaxInt, 0, dim(2, 1)))
	t.Not.True(g.HasSpace(0, math.MaxInt, dim(1, 2)))
	t.Not.True(g.Claim(math.MaxInt, 0, lbl(2, 1)))
	t.Eq(27, g.Free())
}

func (s *AGrid) Has_no_space_for_an_empty_footprint(t *T) {
	g := panes.NewGrid(dim(9, 3))
	t.Not.True(g.HasSpace(0, 0, panes.Dim{}))
}

func (s *AGrid) Has_no_space_if_a_cell_is_claimed(t *T) {
	g := panes.NewGrid(dim(9, 3))
	t.FatalIfNot(t.True(g.Claim(4, 1, lbl(1, 1))))
	t.Not.True(g.HasSpace(3, 0, dim(3, 3)))
	t.True(g.HasSpace(5, 0, dim(4, 3)))
}

func (s *AGrid) Claims_all_cells_of_a_fitting_footprint(t *T) {
	g, l := panes.NewGrid(dim(9, 3)), lbl(3, 2)
	t.True(g.Claim(1, 1, l))
	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			t.True(panes.Same(l, g.At(x, y)))
		}
	}
	t.Eq(27-6, g.Free())
}

func (s *AGrid) Claims_no_cell_of_a_not_fitting_footprint(t *T) {
	g := panes.NewGrid(dim(9, 3))
	t.FatalIfNot(t.True(g.Claim(2, 2, lbl(1, 1))))
	t.Not.True(g.Claim(0, 1, lbl(4, 2)))
	t.Not.True(g.Claim(7, 0, lbl(3, 1)))
	t.Eq(26, g.Free())
	t.True(g.At(0, 1) == nil)
}

func (s *AGrid) Releases_all_cells_of_a_component(t *T) {
	g, l, other := panes.NewGrid(dim(9, 3)), lbl(2, 2), lbl(1, 1)
	t.FatalIfNot(g.Claim(0, 0, l) && g.Claim(5, 0, other))
	g.Release(l)
	t.Eq(26, g.Free())
	t.True(panes.Same(other, g.At(5, 0)))
	t.True(g.HasSpace(0, 0, dim(2, 2)))
}

func (s *AGrid) Releases_by_identity_not_by_value(t *T) {
	g := panes.NewGrid(dim(9, 3))
	a, b := lbl(1, 1, 'x'), lbl(1, 1, 'x')
	t.FatalIfNot(g.Claim(0, 0, a) && g.Claim(1, 0, b))
	g.Release(b)
	t.True(panes.Same(a, g.At(0, 0)))
	t.True(g.At(1, 0) == nil)
}

func (s *AGrid) Reports_no_occupant_outside_its_bounds(t *T) {
	g := panes.NewGrid(dim(2, 2))
	t.FatalIfNot(g.Claim(0, 0, lbl(2, 2)))
	t.True(g.At(2, 0) == nil)
	t.True(g.At(0, -1) == nil)
}

func (s *AGrid) Reports_the_top_left_cell_of_a_footprint(t *T) {
	g, l := panes.NewGrid(dim(9, 3)), lbl(2, 2)
	t.FatalIfNot(g.Claim(6, 1, l))
	x, y, ok := g.Origin(l)
	t.True(ok)
	t.Eq("6,1", fmt.Sprintf("%d,%d", x, y))
	_, _, ok = g.Origin(lbl(1, 1))
	t.Not.True(ok)
}

func TestAGrid(t *testing.T) {
	t.Parallel()
	Run(&AGrid{}, t)
}

type Slots struct{ Suite }

func (s *Slots) SetUp(t *T) { t.Parallel() }

func (s *Slots) Convert_to_row_major_cells(t *T) {
	x, y := panes.SlotToGrid(9, 22)
	t.Eq(4, x)
	t.Eq(2, y)
	t.Eq(22, panes.GridToSlot(9, 4, 2))
}

func (s *Slots) Round_trip(t *T) {
	for slot := 0; slot < 54; slot++ {
		x, y := panes.SlotToGrid(9, slot)
		t.Eq(slot, panes.GridToSlot(9, x, y))
	}
}

func TestSlots(t *testing.T) {
	t.Parallel()
	Run(&Slots{}, t)
}
