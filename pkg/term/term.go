// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package term hosts a panes component tree in a terminal.  It wraps
// https://github.com/gdamore/tcell which does the heavy lifting on the
// terminal side.
//
// Each cell of the hosted grid is drawn as a CellWidth wide block on
// one terminal line with the item's glyph in the middle of the block.
// A mouse click on a block is translated into the block's slot and
// reported as panes.ClickEvent to the hosted root component.
//
//	root := panes.NewFlowPane(panes.MustDim(9, 6))
//	ee, err := term.New(root, term.Options{Dim: root.Dim()})
//	if err != nil {
//	    log.Fatalf("can't acquire terminal: %v", err)
//	}
//	ee.Listen()
//
// Listen blocks until 'q', ctrl-c or ctrl-d is pressed or
// ee.QuitListening() is called.
//
// # Rendering and Concurrency
//
// The component tree is rendered on the event-loop's go-routine only:
// after the initial resize, after each resize and after each reported
// event which lead to a render request.  A render request is never
// served synchronously; a component asking for a re-render while a
// click is reported to it is re-rendered after the click handling has
// returned.  Render requests issued while a render is pending are
// coalesced into one render pass.
//
// panes components are not safe for concurrent use.  If a component
// tree needs to be changed from an other go-routine use Events.Update
// which runs given function on the event-loop's go-routine.
//
// # Testing
//
// Test creates an Events instance on a tcell simulation screen whose
// Listen method is non-blocking.  The returned Testing fixture fires
// clicks and key events and returns only after the fired event was
// processed and the screen was synchronized.
package term

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/slukits/panes"
)

// DefaultCellWidth is the number of terminal columns a grid cell is
// drawn with if not set otherwise.
const DefaultCellWidth = 3

// ErrScreen is wrapped by errors of New if tcell fails to create a
// screen.
var ErrScreen = errors.New("term: can't create screen")

// ErrInit is wrapped by errors of New and Sim if tcell fails to
// initialize a created screen.
var ErrInit = errors.New("term: can't initialize screen")

// Options configure an Events instance.
type Options struct {

	// Dim is the size of the hosted grid; it defaults to the root
	// component's Dim.
	Dim panes.Dim

	// CellWidth is the number of terminal columns a grid cell is drawn
	// with; it defaults to DefaultCellWidth.
	CellWidth int

	// Viewer is reported with each click and passed to each render.
	Viewer panes.Viewer

	// Style is the style of unset grid cells.
	Style tcell.Style

	// Logger receives debug information about reported events and
	// render passes; it defaults to a no-op logger.
	Logger *zerolog.Logger
}

func (o Options) defaults(root panes.Component) Options {
	if o.Dim.IsZero() && root != nil {
		o.Dim = root.Dim()
	}
	if o.CellWidth <= 0 {
		o.CellWidth = DefaultCellWidth
	}
	if o.Logger == nil {
		l := zerolog.Nop()
		o.Logger = &l
	}
	return o
}

// New creates an Events instance hosting given root component on the
// terminal.  New fails if tcell can't provide or initialize a screen.
func New(root panes.Component, o Options) (*Events, error) {
	lib, err := screenFactory.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreen, err)
	}
	if err := lib.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	lib.EnableMouse()
	return newEvents(lib, root, o.defaults(root)), nil
}

// Sim creates an Events instance hosting given root component on a
// tcell simulation screen sized to fit the hosted grid.  Sim fails if
// the simulation screen can't be initialized.
func Sim(root panes.Component, o Options) (
	*Events, tcell.SimulationScreen, error,
) {
	lib := screenFactory.NewSimulationScreen("")
	if err := lib.Init(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	o = o.defaults(root)
	lib.SetSize(o.Dim.Width()*o.CellWidth, o.Dim.Height())
	lib.EnableMouse()
	return newEvents(lib, root, o), lib, nil
}

// screenFactory is used to create new tcell-screens for production or
// for simulation.  export_test.go makes it possible to replace this
// screen factory with one mocking up tcell's screen creation errors.
var screenFactory screenFactoryer = &defaultFactory{}

type defaultFactory struct{}

func (f *defaultFactory) NewScreen() (tcell.Screen, error) {
	return tcell.NewScreen()
}

func (f *defaultFactory) NewSimulationScreen(
	s string,
) tcell.SimulationScreen {
	return tcell.NewSimulationScreen(s)
}

type screenFactoryer interface {
	NewScreen() (tcell.Screen, error)
	NewSimulationScreen(string) tcell.SimulationScreen
}
