// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

// Component is a unit of fixed size which can render itself into a
// surface and react to clicks.  Components compare by identity (see
// Same) never by value.
type Component interface {

	// ID returns the component's process-unique identity.
	ID() ID

	// Dim returns the component's size.
	Dim() Dim

	// Render writes the component into given surface with its top-left
	// cell at (x,y).
	Render(s Surface, v Viewer, x, y int)

	// OnClick is called with a click event whose Local coordinates are
	// relative to the component's top-left cell.
	OnClick(e *ClickEvent)

	// DeepClone returns a structurally independent copy of the
	// component with a fresh identity.
	DeepClone() Component
}

// Attacher is implemented by components which need to know the surface
// they are rendered to, e.g. to request a re-render after they have
// changed.  Panes attach the surface they are attached to to each
// component which is added to them.
type Attacher interface {
	Attach(Surface)
}

func attach(c Component, s Surface) {
	if a, ok := c.(Attacher); ok {
		a.Attach(s)
	}
}

// Handler is informed about a click on a Button.
type Handler func(*ClickEvent)

// content is the state and rendering shared by labels and buttons.
type content struct {
	id      ID
	dim     Dim
	item    Item
	surface Surface
}

func newContent(d Dim, it Item) content {
	if d.IsZero() {
		panic(ErrDim)
	}
	return content{id: nextID(), dim: d, item: it}
}

// ID returns the component's identity.
func (c *content) ID() ID { return c.id }

// Dim returns the component's size.
func (c *content) Dim() Dim { return c.dim }

// Item returns the item filling the component's footprint.
func (c *content) Item() Item { return c.item }

// Attach binds the component to the surface it is rendered to.
func (c *content) Attach(s Surface) { c.surface = s }

// SetItem replaces the item filling the component's footprint and
// requests a re-render if the component is attached to a surface.
func (c *content) SetItem(it Item) {
	c.item = it
	if c.surface != nil {
		c.surface.RequestRender()
	}
}

// Render writes the component's item into each cell of its footprint
// anchored at (x,y).  Cells outside given surface are skipped and
// reported to the logger.
func (c *content) Render(s Surface, _ Viewer, x, y int) {
	sd, skipped := s.Dim(), 0
	var err error
	for j := y; j < y+c.dim.h; j++ {
		for i := x; i < x+c.dim.w; i++ {
			if i < 0 || i >= sd.w {
				skipped++
				continue
			}
			if e := s.Set(GridToSlot(sd.w, i, j), c.item); e != nil {
				skipped, err = skipped+1, e
			}
		}
	}
	if skipped == 0 {
		return
	}
	log().Error().Err(err).Stringer("component", c.id).
		Int("x", x).Int("y", y).Stringer("dim", c.dim).
		Stringer("surface", sd).Int("skipped", skipped).
		Msg("cells outside surface")
}

// Label is a display unit showing an item in each cell of its
// footprint.  A label cancels every click reported to it.
type Label struct{ content }

// NewLabel creates a label of given size showing given item.  NewLabel
// panics if d is the zero Dim.
func NewLabel(d Dim, it Item) *Label {
	return &Label{content: newContent(d, it)}
}

// OnClick cancels given event.
func (l *Label) OnClick(e *ClickEvent) { e.SetCancelled(true) }

// DeepClone returns a new label of the same size and item.
func (l *Label) DeepClone() Component { return NewLabel(l.dim, l.item) }

// Button is an interactive unit showing an item in each cell of its
// footprint and reporting clicks to its handler.  Whether a click is
// cancelled is up to the handler.
type Button struct {
	content
	handler Handler
}

// NewButton creates a button of given size showing given item and
// reporting clicks to given handler which may be nil.  NewButton panics
// if d is the zero Dim.
func NewButton(d Dim, it Item, h Handler) *Button {
	return &Button{content: newContent(d, it), handler: h}
}

// OnClick reports given event to the button's handler.
func (b *Button) OnClick(e *ClickEvent) {
	if b.handler == nil {
		return
	}
	b.handler(e)
}

// SetHandler replaces the button's click handler.
func (b *Button) SetHandler(h Handler) { b.handler = h }

// DeepClone returns a new button of the same size, item and handler.
func (b *Button) DeepClone() Component {
	return NewButton(b.dim, b.item, b.handler)
}
