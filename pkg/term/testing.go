// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/slukits/panes"
)

// Testing augments an Events instance created by Test with features
// for testing like firing a click or getting the current screen content
// as string.
// NOTE do not use an Events/Testing-instance concurrently.
// NOTE Events.Listen becomes non-blocking and starts the event-loop in
// its own go-routine.
// NOTE all event triggering methods start listening if it is not
// already started and do not return before the fired event was
// processed and the screen was synchronized.  Event triggering methods
// must not be called from a click handler or an Update listener.
type Testing struct {
	ee  *Events
	lib tcell.SimulationScreen
	t   *testing.T

	// LastScreen provides the screen content right before quitting
	// listening.
	LastScreen string

	// Timeout defines how long an event-triggering method waits for the
	// event to be processed.  It defaults to 200ms.
	Timeout time.Duration
}

// Test creates a new Events instance hosting given root component on a
// simulation screen together with its Testing fixture.  Listening is
// stopped at the end of given test if it is still listening.
func Test(t *testing.T, root panes.Component, o Options) (
	*Events, *Testing,
) {
	t.Helper()
	ee, lib, err := Sim(root, o)
	if err != nil {
		t.Fatalf("test: init sim: %v", err)
	}
	ee.t = &Testing{ee: ee, lib: lib, t: t,
		Timeout: 200 * time.Millisecond}
	t.Cleanup(func() {
		if ee.IsListening() {
			ee.QuitListening()
			return
		}
		ee.quitListening()
	})
	return ee, ee.t
}

func (fx *Testing) waitForSynced(err string) {
	fx.t.Helper()
	select {
	case <-fx.ee.Synced:
	case <-time.After(fx.Timeout):
		fx.t.Fatal(err)
	}
}

// listen posts the initial resize event and starts listening for events
// in a new go-routine.  listen returns after the initial resize has
// completed.
func (fx *Testing) listen() *Events {
	fx.t.Helper()
	if fx.ee.IsListening() {
		return fx.ee
	}
	err := fx.lib.PostEvent(tcell.NewEventResize(fx.lib.Size()))
	if err != nil {
		fx.t.Fatalf("test: listen: post resize: %v", err)
	}
	go fx.ee.listen()
	fx.waitForSynced("test: listen: sync timed out")
	return fx.ee
}

// FireClick presses and releases the primary mouse button over the
// middle of the terminal block of given grid cell.
func (fx *Testing) FireClick(x, y int) *Events {
	fx.t.Helper()
	cw := fx.ee.scr.cw
	return fx.FireMouse(x*cw+cw/2, y, tcell.Button1)
}

// FireMouse presses and releases given mouse buttons at given terminal
// coordinates.
func (fx *Testing) FireMouse(tx, ty int, bb tcell.ButtonMask) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	fx.lib.InjectMouse(tx, ty, bb, tcell.ModNone)
	fx.waitForSynced("test: fire mouse: press: sync timed out")
	fx.lib.InjectMouse(tx, ty, tcell.ButtonNone, tcell.ModNone)
	fx.waitForSynced("test: fire mouse: release: sync timed out")
	return fx.ee
}

// FireRune posts given rune-key-press event and returns after this
// event has been processed.
func (fx *Testing) FireRune(r rune) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	fx.lib.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	fx.waitForSynced("test: fire rune: sync timed out")
	return fx.ee
}

// FireKey posts given special-key event and returns after this event
// has been processed.
func (fx *Testing) FireKey(k tcell.Key) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	fx.lib.InjectKey(k, 0, tcell.ModNone)
	fx.waitForSynced("test: fire key: sync timed out")
	return fx.ee
}

// FireResize sets the simulation screen to given size and returns after
// the resulting resize event has been processed.
func (fx *Testing) FireResize(w, h int) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	fx.lib.SetSize(w, h)
	if err := fx.lib.PostEvent(tcell.NewEventResize(w, h)); err != nil {
		fx.t.Fatal(err)
	}
	fx.waitForSynced("test: fire resize: sync timed out")
	return fx.ee
}

func (fx *Testing) beforeFinalize() {
	fx.LastScreen = fx.String()
}

// String returns the test-screen's content as string with line breaks
// where a new screen line starts.  Empty lines at the end of the screen
// are not returned and trailing blanks of a line are trimmed.
func (fx *Testing) String() string {
	b, w, h := fx.lib.GetContents()
	sb := &strings.Builder{}
	for y := 0; y < h; y++ {
		line := strings.Builder{}
		for x := 0; x < w; x++ {
			cell := b[y*w+x]
			if len(cell.Runes) == 0 {
				line.WriteRune(' ')
				continue
			}
			line.WriteRune(cell.Runes[0])
		}
		sb.WriteString(strings.TrimRight(line.String(), " \t\r") + "\n")
	}
	return strings.TrimRight(sb.String(), " \t\r\n")
}

// StyleAt returns the style of given grid cell's glyph.
func (fx *Testing) StyleAt(x, y int) tcell.Style {
	b, w, _ := fx.lib.GetContents()
	cw := fx.ee.scr.cw
	return b[y*w+x*cw+cw/2].Style
}
