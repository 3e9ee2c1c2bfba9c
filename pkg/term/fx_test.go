// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package term_test

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/slukits/panes"
)

func init() {
	panes.SetLogger(zerolog.Nop())
}

var (
	errFactory = errors.New("mock: can't create screen")
	errInit    = errors.New("mock: can't initialize screen")
)

// factory mocks up tcell's screen creation errors.
type factory struct {
	Fail, FailInit bool
}

func (f *factory) NewScreen() (tcell.Screen, error) {
	if f.Fail {
		return nil, errFactory
	}
	return f.NewSimulationScreen(""), nil
}

func (f *factory) NewSimulationScreen(s string) tcell.SimulationScreen {
	lib := tcell.NewSimulationScreen(s)
	if f.FailInit {
		return &failingInit{SimulationScreen: lib}
	}
	return lib
}

type failingInit struct{ tcell.SimulationScreen }

func (s *failingInit) Init() error { return errInit }

func dim(w, h int) panes.Dim { return panes.MustDim(w, h) }

func item(r rune) panes.Item {
	return panes.NewItem(panes.ItemDef{Glyph: r})
}

func lbl(w, h int, r rune) *panes.Label {
	return panes.NewLabel(dim(w, h), item(r))
}

// flow returns a flow pane holding a 1x1 label for each given rune.
func flow(w, h int, rr ...rune) *panes.FlowPane {
	fp := panes.NewFlowPane(dim(w, h))
	for _, r := range rr {
		fp.Add(lbl(1, 1, r))
	}
	return fp
}

func fmtDim(w, h int) string { return fmt.Sprintf("%dx%d", w, h) }
