// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes_test

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/slukits/panes"
	. "github.com/slukits/panes/internal/tst"
)

// occupier is implemented by the concrete panes.
type occupier interface {
	panes.Pane
	At(x, y int) panes.Component
}

func dim(w, h int) panes.Dim { return panes.MustDim(w, h) }

func fmtXY(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

func item(r rune) panes.Item {
	return panes.NewItem(panes.ItemDef{Glyph: r, Title: string(r)})
}

func lbl(w, h int, r ...rune) *panes.Label {
	if len(r) == 0 {
		return panes.NewLabel(dim(w, h), item('l'))
	}
	return panes.NewLabel(dim(w, h), item(r[0]))
}

// clicks records the clicks reported to buttons created by btn.
type clicks struct {
	ee     []*panes.ClickEvent
	locals []string
	cancel bool
}

func (cc *clicks) btn(w, h int, r rune) *panes.Button {
	return panes.NewButton(dim(w, h), item(r), func(e *panes.ClickEvent) {
		x, y := e.Local()
		cc.ee = append(cc.ee, e)
		cc.locals = append(cc.locals, fmt.Sprintf("%d,%d", x, y))
		if cc.cancel {
			e.SetCancelled(true)
		}
	})
}

// consistent fails the test if a child's footprint and the occupied
// cells of given pane don't map onto each other.
func consistent(t *T, p occupier) {
	t.GoT().Helper()
	d := p.Dim()
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			c := p.At(x, y)
			if c == nil {
				continue
			}
			if !p.Contains(c) {
				t.Fatalf("cell %d,%d: occupant %v no child", x, y, c.ID())
			}
			ox, oy, _ := p.Origin(c)
			if x < ox || y < oy || x >= ox+c.Dim().Width() ||
				y >= oy+c.Dim().Height() {
				t.Fatalf("cell %d,%d: outside footprint of %v", x, y, c.ID())
			}
		}
	}
	for _, c := range p.Children() {
		ox, oy, ok := p.Origin(c)
		t.FatalIfNot(ok)
		for y := oy; y < oy+c.Dim().Height(); y++ {
			for x := ox; x < ox+c.Dim().Width(); x++ {
				if !panes.Same(p.At(x, y), c) {
					t.Fatalf("child %v: cell %d,%d not claimed",
						c.ID(), x, y)
				}
			}
		}
	}
}

// logs captures what the panes package logs.  Suites using it must
// not run in parallel since the package logger is process-wide.
type logs struct {
	mutex sync.Mutex
	buf   bytes.Buffer
}

func (l *logs) Write(p []byte) (int, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.buf.Write(p)
}

func (l *logs) String() string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.buf.String()
}

func (l *logs) reset() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.buf.Reset()
}

func captureLogs() *logs {
	l := &logs{}
	panes.SetLogger(zerolog.New(l))
	return l
}

func init() {
	panes.SetLogger(zerolog.Nop())
}

// node creates a tree node resolving to given pane.
func node(p panes.Pane, cc ...*panes.Node) *panes.Node {
	return panes.NewNode(panes.ResolverFunc(
		func(*panes.Node) panes.Pane { return p }), cc...)
}
