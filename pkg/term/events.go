// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package term

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/slukits/panes"
)

// clickButtons are the mouse buttons whose press is reported as click.
const clickButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// Events polls tcell's event loop, reports mouse clicks to the hosted
// root component and renders it whenever a render was requested.
type Events struct {
	scr         *Screen
	root        panes.Component
	viewer      panes.Viewer
	mutex       *sync.Mutex
	isListening bool
	finalized   bool
	quit        func()
	buttons     tcell.ButtonMask
	log         *zerolog.Logger
	t           *Testing

	// Synced receives a message after an event was processed and the
	// screen was synchronized.  Render requests which are served by a
	// render pass following an other event aren't synced separately.
	Synced chan bool
}

func newEvents(lib tcell.Screen, root panes.Component, o Options) *Events {
	ee := &Events{
		scr:    newScreen(lib, o),
		root:   root,
		viewer: o.Viewer,
		mutex:  &sync.Mutex{},
		log:    o.Logger,
		Synced: make(chan bool, 1),
	}
	if root != nil {
		panes.Mount(ee.scr, root)
	}
	return ee
}

// Screen returns the surface the hosted component tree is rendered to.
func (ee *Events) Screen() *Screen { return ee.scr }

// Root returns the hosted component.
func (ee *Events) Root() panes.Component { return ee.root }

// IsListening returns true if given Events polling from the event loop.
func (ee *Events) IsListening() bool {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.isListening
}

// Listen blocks and starts polling from the event loop reporting
// received clicks to the hosted root component.  Listen returns if
// either a quit-event was received ('q', ctrl-c, ctrl-d input) or
// QuitListening was called.  NOTE in testing Listen is non-blocking,
// i.e. returns after the initial resize was processed.
func (ee *Events) Listen() {
	if ee.t != nil {
		ee.t.listen()
		return
	}
	ee.listen()
}

func (ee *Events) listen() {
	if !ee.startPolling() { // ignore subsequent calls of Listen
		return
	}
	for {
		ev := ee.scr.lib.PollEvent()

		switch ev := ev.(type) {
		case nil: // event-loop ended
			return
		case *quitEvent:
			ee.stopPolling()
			if l := ee.quitListener(); l != nil {
				l()
			}
			ee.quitListening()
			ee.synced()
			return
		case *tcell.EventResize:
			ee.scr.lib.Clear()
			ee.render()
			ee.scr.lib.Sync()
			ee.synced()
		case *renderEvent:
			if !ee.scr.Pending() {
				continue
			}
			ee.render()
			ee.scr.lib.Show()
		case *tcell.EventKey:
			if ee.isQuitEvent(ev) {
				ee.stopPolling()
				if l := ee.quitListener(); l != nil {
					l()
				}
				ee.quitListening()
				ee.synced()
				return
			}
			ee.ensureRendered()
		case *tcell.EventMouse:
			ee.reportMouse(ev)
			ee.ensureRendered()
		case *updateEvent:
			ev.listener()
			ee.ensureRendered()
		default:
			ee.synced()
		}
	}
}

func (ee *Events) synced() {
	select {
	case ee.Synced <- true:
	default:
	}
}

// ensureRendered executes a pending render pass right after an event
// was reported.  The render event posted by the render request is
// ignored then.
func (ee *Events) ensureRendered() {
	if ee.scr.Pending() {
		ee.render()
		ee.scr.lib.Show()
	}
	ee.synced()
}

func (ee *Events) render() {
	start := time.Now()
	ee.scr.render(ee.root, ee.viewer)
	ee.log.Debug().Dur("took", time.Since(start)).Msg("rendered")
}

func (ee *Events) startPolling() bool {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	if ee.isListening {
		return false
	}
	ee.isListening = true
	return true
}

func (ee *Events) stopPolling() {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.isListening = false
}

// reportMouse reports a newly pressed button of given mouse event as
// click to the hosted root component.  Held buttons and releases are
// ignored as well as clicks outside the grid.
func (ee *Events) reportMouse(ev *tcell.EventMouse) {
	bb := ev.Buttons() & clickButtons
	pressed := bb &^ ee.buttons
	ee.buttons = bb
	if pressed == 0 || ee.root == nil || ee.scr.ToSmall() {
		return
	}
	slot, ok := ee.scr.Slot(ev.Position())
	if !ok {
		return
	}
	e := panes.NewClickEvent(ee.scr.dim.Width(), slot, ee.viewer, pressed)
	ee.root.OnClick(e)
	ee.log.Debug().Int("slot", slot).Bool("cancelled", e.Cancelled()).
		Msg("click")
}

// Quit registers given listener for the quit event which is triggered
// by 'q'-rune, ctrl-c and ctrl-d.
func (ee *Events) Quit(listener func()) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.quit = listener
}

func (ee *Events) quitListener() func() {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.quit
}

func (ee *Events) isQuitEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	case tcell.KeyCtrlC, tcell.KeyCtrlD:
		return true
	}
	return false
}

// Update posts a new event into the event loop which calls given
// listener once it is its turn.  The hosted component tree may be
// changed safely by given listener.  Update fails if the event-loop is
// full; returned error wraps tcell's PostEvent error.  Update is a no-op
// if listener is nil.  NOTE in testing Update returns after the event
// was processed.
func (ee *Events) Update(listener func()) error {
	if listener == nil {
		return nil
	}
	if ee.t != nil && !ee.IsListening() {
		ee.t.listen()
	}
	evt := &updateEvent{when: time.Now(), listener: listener}
	if err := ee.scr.lib.PostEvent(evt); err != nil {
		return fmt.Errorf(ErrUpdateFmt, err)
	}
	if ee.t != nil {
		ee.t.waitForSynced("test: update: sync timed out")
	}
	return nil
}

// ErrUpdateFmt is the error message for a failing update-event post.
var ErrUpdateFmt = "can't post event: %w"

type updateEvent struct {
	when     time.Time
	listener func()
}

func (u *updateEvent) When() time.Time { return u.when }

// QuitListening posts a quit event ending the event-loop, i.e.
// IsListening will be false.
func (ee *Events) QuitListening() {
	if ee.IsListening() {
		ee.scr.lib.PostEvent(&quitEvent{when: time.Now()})
		if ee.t != nil {
			ee.t.waitForSynced("test: quit listening: sync timed out")
		}
		return
	}
	ee.quitListening()
}

func (ee *Events) quitListening() {
	ee.mutex.Lock()
	finalized := ee.finalized
	ee.finalized = true
	ee.mutex.Unlock()
	if finalized {
		return
	}
	if ee.t != nil {
		ee.t.beforeFinalize()
	}
	ee.scr.lib.Fini()
}

type quitEvent struct {
	when time.Time
}

func (u *quitEvent) When() time.Time { return u.when }
