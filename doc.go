// Package panes composes grid-based user interfaces, e.g. the slot
// grids of a game server's inventory menus, out of rectangular
// components sharing a fixed-size grid of cells.  It is concerned with
//   - placement: which cells a component occupies
//   - rendering: writing the components into a host surface
//   - click routing: reporting a clicked cell to the deepest component
//     occupying it
//   - navigation: switching between alternative screens
//
// A host provides a [Surface], i.e. a Dim-sized grid of linear slots
// items can be written to, and drives rendering and clicks:
//
//	root := panes.NewAnchorPane(panes.MustDim(9, 3))
//	root.Add(panes.NewLabel(panes.MustDim(9, 1), border), 0, 0)
//	root.Add(panes.NewButton(panes.MustDim(1, 1), ok,
//	    func(e *panes.ClickEvent) { e.SetCancelled(true); confirm() }),
//	    4, 2)
//
//	panes.Mount(surface, root)
//	root.Render(surface, viewer, 0, 0)
//
//	// on a click in slot 22 of the 9-wide surface
//	e := panes.NewClickEvent(9, 22, viewer, tcell.Button1)
//	root.OnClick(e)
//	if !e.Cancelled() { ... }
//
// Components are compared by identity: each component gets a
// process-unique [ID] at construction and a pane rejects adding a
// component instance twice, while two value-identical components are
// two different children.  Placement failures, i.e. a component not
// fitting into the free cells, are reported by a false return value
// since they are an expected outcome of building a layout.
//
// Panes
//
// An [AnchorPane] places its children at given coordinates, a
// [FlowPane] at the first cell in row-major order where they fit.  Both
// keep the invariant that children don't overlap and all claimed cells
// belong to a child.  [Pane.DeepClone] returns an independent copy of a
// whole subtree with fresh identities.
//
// Navigation
//
// A [TreePane] shows the pane of the one selected [Node] of a
// navigation tree.  Nodes produce their pane lazily through a
// [Resolver].  Selecting a node only marks the tree pane dirty and asks
// the surface for a re-render; the new pane is resolved and rendered
// by the next render pass.
//
// Concurrency
//
// The package doesn't lock.  Constructing, mutating, rendering and
// clicking a component tree must happen on one goroutine, typically the
// host's event loop (see package pkg/term).  Rendering problems which
// are programming errors, e.g. a child placed outside the surface, are
// logged (see [SetLogger]) and the offending write is skipped while the
// rest of the tree is rendered.
package panes
