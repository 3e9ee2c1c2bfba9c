// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

import (
	"fmt"
	"sync/atomic"
)

// ID identifies a component or a tree node for the lifetime of the
// process.  Two value-identical components have different IDs; it is
// the ID which decides if a pane already contains a component.
type ID uint64

func (id ID) String() string { return fmt.Sprintf("#%d", uint64(id)) }

// IDSource hands out the identities of new components and nodes.
type IDSource interface {
	Next() ID
}

// Counter is an IDSource counting up from 1.  The zero value is ready
// to use.
type Counter struct {
	last atomic.Uint64
}

// Next returns the next identity of receiving counter.
func (c *Counter) Next() ID { return ID(c.last.Add(1)) }

// ids is the process-wide identity source which is initialized on first
// use and lives until the process ends.
var ids atomic.Pointer[IDSource]

// SetIDSource replaces the process-wide identity source.  A nil source
// resets it to a new Counter.  SetIDSource must not be called while
// components are constructed concurrently.
func SetIDSource(s IDSource) {
	if s == nil {
		s = &Counter{}
	}
	ids.Store(&s)
}

func nextID() ID {
	if s := ids.Load(); s != nil {
		return (*s).Next()
	}
	var c IDSource = &Counter{}
	ids.CompareAndSwap(nil, &c)
	return (*ids.Load()).Next()
}

// Same returns true iff a and b are the same component instance, i.e.
// have the same identity.
func Same(a, b Component) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}
