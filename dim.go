// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

import (
	"errors"
	"fmt"
)

// Dim is the immutable width times height size of a component in grid
// cells.  Dims compare by value.  The zero Dim is invalid and is never
// returned by NewDim.
type Dim struct {
	w, h int
}

// ErrDim is returned by NewDim if a given width or height is not
// positive.
var ErrDim = errors.New("panes: dim: width and height must be positive")

// NewDim returns a w x h Dim or fails with ErrDim iff w or h is not
// positive.
func NewDim(w, h int) (Dim, error) {
	if w <= 0 || h <= 0 {
		return Dim{}, fmt.Errorf("%w: %dx%d", ErrDim, w, h)
	}
	return Dim{w: w, h: h}, nil
}

// MustDim returns a w x h Dim and panics if w or h is not positive.
func MustDim(w, h int) Dim {
	d, err := NewDim(w, h)
	if err != nil {
		panic(err)
	}
	return d
}

// Width returns the number of columns of d.
func (d Dim) Width() int { return d.w }

// Height returns the number of rows of d.
func (d Dim) Height() int { return d.h }

// Cells returns the number of cells of d.
func (d Dim) Cells() int { return d.w * d.h }

// IsZero returns true for the invalid zero Dim.
func (d Dim) IsZero() bool { return d.w <= 0 || d.h <= 0 }

// Holds returns true if a component of size o fits into d.
func (d Dim) Holds(o Dim) bool { return o.w <= d.w && o.h <= d.h }

func (d Dim) String() string { return fmt.Sprintf("%dx%d", d.w, d.h) }
