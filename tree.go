// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

import "golang.org/x/exp/slices"

// Resolver produces the pane representing a node's screen.
type Resolver interface {
	Resolve(*Node) Pane
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(*Node) Pane

// Resolve calls f with given node.
func (f ResolverFunc) Resolve(n *Node) Pane { return f(n) }

// Cached returns a resolver which asks given resolver only once per
// node identity for a (non-nil) pane and keeps returning that pane.
func Cached(r Resolver) Resolver {
	return &cached{r: r, pp: map[ID]Pane{}}
}

type cached struct {
	r  Resolver
	pp map[ID]Pane
}

func (c *cached) Resolve(n *Node) Pane {
	if p, ok := c.pp[n.ID()]; ok {
		return p
	}
	p := c.r.Resolve(n)
	if p != nil {
		c.pp[n.ID()] = p
	}
	return p
}

// Node is a node of a TreePane's navigation tree.  A node owns its
// children while its parent and its owning TreePane are lookup
// references only.  The zero value is not ready to use, see NewNode.
type Node struct {
	id       ID
	parent   *Node
	cc       []*Node
	owner    *TreePane
	resolver Resolver
}

// NewNode creates a node whose pane is produced by given resolver and
// adds given children to it.
func NewNode(r Resolver, children ...*Node) *Node {
	n := &Node{id: nextID(), resolver: r}
	n.Add(children...)
	return n
}

// ID returns the node's identity.
func (n *Node) ID() ID { return n.id }

// Parent returns the node's parent or nil for a root node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node { return slices.Clone(n.cc) }

// Owner returns the TreePane the node is attached to or nil.
func (n *Node) Owner() *TreePane { return n.owner }

// Root returns the root of the node's tree.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the number of ancestors of the node.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Add appends given nodes to the children of n.  A node which already
// is a child of n, which is n itself or one of its ancestors is
// ignored.  An added node is removed from its former parent and gets
// n's owner stamped on its whole subtree.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c == nil || c.parent == n || c.isAncestorOf(n) {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.cc = append(n.cc, c)
		c.own(n.owner)
	}
}

func (n *Node) isAncestorOf(o *Node) bool {
	for a := o; a != nil; a = a.parent {
		if a.id == n.id {
			return true
		}
	}
	return false
}

// Remove removes given child from n which becomes the root of an
// unattached tree.
func (n *Node) Remove(c *Node) bool {
	if c == nil {
		return false
	}
	idx := slices.IndexFunc(n.cc, func(o *Node) bool {
		return o.id == c.id
	})
	if idx < 0 {
		return false
	}
	n.cc = slices.Delete(n.cc, idx, idx+1)
	c.parent = nil
	c.own(nil)
	return true
}

func (n *Node) own(tp *TreePane) {
	n.owner = tp
	for _, c := range n.cc {
		c.own(tp)
	}
}

// Pane resolves the pane representing the node's screen; nil if the
// node has no resolver.
func (n *Node) Pane() Pane {
	if n.resolver == nil {
		return nil
	}
	return n.resolver.Resolve(n)
}

// Select selects n in its owning TreePane; a no-op for unattached
// nodes.
func (n *Node) Select() {
	if n.owner == nil {
		return
	}
	n.owner.Select(n)
}

// Clone returns a node with a new identity sharing the parent, the
// children, the owner and the resolver of n.  The clone is not a
// child of n's parent and n's children still have n as their parent;
// use CloneTree for an independent copy.
func (n *Node) Clone() *Node {
	return &Node{
		id:       nextID(),
		parent:   n.parent,
		cc:       slices.Clone(n.cc),
		owner:    n.owner,
		resolver: n.resolver,
	}
}

// CloneTree returns an unattached root node with a new identity whose
// subtree is a clone of n's subtree.
func (n *Node) CloneTree() *Node {
	cp := &Node{id: nextID(), resolver: n.resolver}
	for _, c := range n.cc {
		cc := c.CloneTree()
		cc.parent = cp
		cp.cc = append(cp.cc, cc)
	}
	return cp
}

// path returns the child indices leading from the root to n.
func (n *Node) path() []int {
	pp := []int{}
	for c := n; c.parent != nil; c = c.parent {
		idx := slices.IndexFunc(c.parent.cc, func(o *Node) bool {
			return o.id == c.id
		})
		pp = append([]int{idx}, pp...)
	}
	return pp
}

func (n *Node) at(path []int) *Node {
	c := n
	for _, idx := range path {
		if idx < 0 || idx >= len(c.cc) {
			return nil
		}
		c = c.cc[idx]
	}
	return c
}

// TreeState is the navigation state of a TreePane.
type TreeState int

const (
	// Unselected is the state of a TreePane before any node was
	// selected.
	Unselected TreeState = iota

	// Selected is the state of a TreePane whose current pane is the
	// selected node's pane.
	Selected

	// DirtySelected is the state of a TreePane whose selection has
	// changed since its last render.
	DirtySelected
)

func (s TreeState) String() string {
	switch s {
	case Selected:
		return "selected"
	case DirtySelected:
		return "dirty-selected"
	}
	return "unselected"
}

// TreePane shows the pane of exactly one selected node of its
// navigation tree.  Selecting a node doesn't resolve its pane; it marks
// the TreePane dirty and requests a re-render.  The selected node's pane
// is resolved by the next render.  Rendering or clicking a TreePane
// without a selection is a no-op.
type TreePane struct {
	id       ID
	dim      Dim
	root     *Node
	selected *Node
	current  Pane
	dirty    bool
	surface  Surface
}

// NewTreePane creates an unselected tree pane of given size.  It panics
// if d is the zero Dim.
func NewTreePane(d Dim) *TreePane {
	if d.IsZero() {
		panic(ErrDim)
	}
	return &TreePane{id: nextID(), dim: d}
}

// ID returns the tree pane's identity.
func (tp *TreePane) ID() ID { return tp.id }

// Dim returns the tree pane's size.
func (tp *TreePane) Dim() Dim { return tp.dim }

// Root returns the root of the navigation tree or nil.
func (tp *TreePane) Root() *Node { return tp.root }

// Selected returns the selected node or nil.
func (tp *TreePane) Selected() *Node { return tp.selected }

// Current returns the pane resolved by the last render.
func (tp *TreePane) Current() Pane { return tp.current }

// IsDirty returns true if the selection changed since the last render.
func (tp *TreePane) IsDirty() bool { return tp.dirty }

// State returns the navigation state.
func (tp *TreePane) State() TreeState {
	switch {
	case tp.selected == nil:
		return Unselected
	case tp.dirty:
		return DirtySelected
	}
	return Selected
}

// SetRoot attaches given node's tree to the tree pane and selects its
// root.  A previously set tree is detached.
func (tp *TreePane) SetRoot(n *Node) {
	if n == nil {
		return
	}
	if tp.root != nil {
		tp.root.own(nil)
	}
	n.own(tp)
	tp.root = n
	tp.Select(n)
}

// Select makes given node the selected node.  Selecting the selected
// node or a node of an other tree pane is a no-op; otherwise the tree pane becomes dirty and requests a
// re-render from the surface it is attached to.
func (tp *TreePane) Select(n *Node) {
	if n == nil || n.owner != tp {
		return
	}
	if tp.selected != nil && tp.selected.id == n.id {
		return
	}
	tp.selected, tp.dirty = n, true
	if tp.surface != nil {
		tp.surface.RequestRender()
	}
}

// Back selects the parent of the selected node.  It returns false if
// there is no selection or the selection is a root.
func (tp *TreePane) Back() bool {
	if tp.selected == nil || tp.selected.parent == nil {
		return false
	}
	tp.Select(tp.selected.parent)
	return true
}

// Navigate returns a button handler which cancels the click and
// selects given node.
func (tp *TreePane) Navigate(n *Node) Handler {
	return func(e *ClickEvent) {
		e.SetCancelled(true)
		tp.Select(n)
	}
}

// Attach binds the tree pane and its current pane to given surface.
func (tp *TreePane) Attach(s Surface) {
	tp.surface = s
	if tp.current != nil {
		attach(tp.current, s)
	}
}

// Render resolves the selected node's pane if the tree pane is dirty
// and renders the current pane offset by (x,y).
func (tp *TreePane) Render(s Surface, v Viewer, x, y int) {
	if tp.selected == nil {
		return
	}
	if tp.dirty {
		tp.resolve(s)
	}
	if tp.current == nil {
		return
	}
	if !tp.dim.Holds(tp.current.Dim()) {
		log().Error().Stringer("pane", tp.id).
			Stringer("current", tp.current.ID()).
			Stringer("dim", tp.dim).
			Stringer("current_dim", tp.current.Dim()).
			Msg("selected pane exceeds tree pane: skipped")
		return
	}
	tp.current.Render(s, v, x, y)
}

func (tp *TreePane) resolve(s Surface) {
	if tp.current != nil {
		attach(tp.current, nil)
	}
	tp.current, tp.dirty = tp.selected.Pane(), false
	if tp.current == nil {
		log().Warn().Stringer("pane", tp.id).
			Stringer("node", tp.selected.id).
			Msg("selected node resolves to no pane")
		return
	}
	if isAncestor(tp.current, tp) {
		log().Error().Stringer("pane", tp.id).
			Stringer("node", tp.selected.id).
			Stringer("current", tp.current.ID()).
			Msg("selected pane contains its tree pane: skipped")
		tp.current = nil
		return
	}
	if tp.surface != nil {
		s = tp.surface
	}
	attach(tp.current, s)
}

// OnClick forwards given event to the current pane.
func (tp *TreePane) OnClick(e *ClickEvent) {
	if tp.selected == nil {
		return
	}
	e.lastPane = tp
	if tp.current == nil {
		return
	}
	tp.current.OnClick(e)
}

// Contains returns true iff given component is a child of the current
// pane.
func (tp *TreePane) Contains(c Component) bool {
	return tp.current != nil && tp.current.Contains(c)
}

// Children returns the children of the current pane.
func (tp *TreePane) Children() []Component {
	if tp.current == nil {
		return nil
	}
	return tp.current.Children()
}

// Origin returns the top-left cell of given child of the current pane.
func (tp *TreePane) Origin(c Component) (x, y int, ok bool) {
	if tp.current == nil {
		return 0, 0, false
	}
	return tp.current.Origin(c)
}

// DeepClone returns an unattached tree pane with a fresh identity whose
// navigation tree is a clone of the receiver's tree with the
// corresponding node selected.  A cloned node resolves to a deep clone
// of its original's pane which is made once on its first resolution.
func (tp *TreePane) DeepClone() Component {
	cp := NewTreePane(tp.dim)
	if tp.root == nil {
		return cp
	}
	cp.SetRoot(cloneResolving(tp.root))
	if tp.selected != nil && tp.selected.Root() == tp.root {
		if n := cp.root.at(tp.selected.path()); n != nil {
			cp.Select(n)
		}
	}
	return cp
}

// cloneResolving clones the subtree of n; each cloned node resolves to
// a deep clone of the pane of its original.
func cloneResolving(n *Node) *Node {
	cp := &Node{id: nextID(), resolver: Cached(ResolverFunc(
		func(*Node) Pane {
			p := n.Pane()
			if p == nil {
				return nil
			}
			c, _ := p.DeepClone().(Pane)
			return c
		}))}
	for _, c := range n.cc {
		cc := cloneResolving(c)
		cc.parent = cp
		cp.cc = append(cp.cc, cc)
	}
	return cp
}
