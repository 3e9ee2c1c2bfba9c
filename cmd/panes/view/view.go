// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package view turns a menu tree into a tree pane.  Each menu becomes a
// node whose pane is built on first selection: the menu's items are
// buttons reporting their action, its sub-menus are buttons selecting
// the sub-menu's node and each sub-menu gets a back button selecting
// its parent.
package view

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/slukits/panes"
	"github.com/slukits/panes/cmd/panes/model"
)

// BackGlyph is shown by the back button of a sub-menu.
const BackGlyph = '<'

// ActionHandler is informed about the action of a clicked item.
type ActionHandler func(action string, e *panes.ClickEvent)

// Options configure a view.
type Options struct {

	// Dim is the size of the tree pane; it defaults to the root menu's
	// size.
	Dim panes.Dim

	// Logger receives a line for each clicked item; it defaults to a
	// no-op logger.
	Logger *zerolog.Logger

	// OnAction is called after a clicked item was logged.
	OnAction ActionHandler
}

// View provides the tree pane displaying a menu tree.
type View struct {
	tree     *panes.TreePane
	menu     *model.Menu
	log      *zerolog.Logger
	onAction ActionHandler
}

// New validates given menu tree and creates its view.  Errors wrap
// model.ErrMenu if the menu tree is invalid or a menu's buttons don't
// fit into its pane.
func New(m *model.Menu, o Options) (*View, error) {
	if o.Dim.IsZero() {
		if m.Width <= 0 || m.Height <= 0 {
			return nil, fmt.Errorf("%w: %s: no size", model.ErrMenu, m.Title)
		}
		o.Dim = panes.MustDim(m.Width, m.Height)
	}
	if err := m.Validate(o.Dim); err != nil {
		return nil, err
	}
	if o.Logger == nil {
		l := zerolog.Nop()
		o.Logger = &l
	}
	v := &View{tree: panes.NewTreePane(o.Dim), menu: m, log: o.Logger,
		onAction: o.OnAction}
	root := v.node(m)
	if err := v.check(m, root); err != nil {
		return nil, err
	}
	v.tree.SetRoot(root)
	return v, nil
}

// Reload replaces the displayed menu tree by given menu tree which is
// validated against the tree pane's size.  The root of the new menu
// tree is selected.  A failing reload leaves the view unchanged.
// Reload must be called on the goroutine driving the tree pane, e.g.
// in a term.Events.Update listener.
func (v *View) Reload(m *model.Menu) error {
	if err := m.Validate(v.tree.Dim()); err != nil {
		return err
	}
	root := v.node(m)
	if err := v.check(m, root); err != nil {
		return err
	}
	v.menu = m
	v.tree.SetRoot(root)
	return nil
}

// Tree returns the view's tree pane.
func (v *View) Tree() *panes.TreePane { return v.tree }

// Menu returns the view's menu tree.
func (v *View) Menu() *model.Menu { return v.menu }

func (v *View) node(m *model.Menu) *panes.Node {
	cc := make([]*panes.Node, len(m.Menus))
	for i, s := range m.Menus {
		cc[i] = v.node(s)
	}
	return panes.NewNode(panes.Cached(panes.ResolverFunc(
		func(n *panes.Node) panes.Pane {
			p, err := v.build(m, n)
			if err != nil {
				v.log.Error().Err(err).Stringer("node", n.ID()).
					Msg("menu pane")
				return nil
			}
			return p
		})), cc...)
}

// check builds every menu's pane once to report placement errors
// before the tree pane is shown.
func (v *View) check(m *model.Menu, n *panes.Node) error {
	if _, err := v.build(m, n); err != nil {
		return err
	}
	for i, c := range n.Children() {
		if err := v.check(m.Menus[i], c); err != nil {
			return err
		}
	}
	return nil
}

func (v *View) build(m *model.Menu, n *panes.Node) (panes.Pane, error) {
	var (
		p   panes.Pane
		add func(c panes.Component, x, y int) bool
	)
	switch m.Layout {
	case model.Anchor:
		ap := panes.NewAnchorPane(m.Dim())
		p, add = ap, ap.Add
	default:
		fp := panes.NewFlowPane(m.Dim())
		p, add = fp, func(c panes.Component, _, _ int) bool {
			return fp.Add(c)
		}
	}
	for _, d := range m.Items {
		if !add(v.item(m, d), d.X, d.Y) {
			return nil, placementErr(m, d.Title)
		}
	}
	cc := n.Children()
	for i, s := range m.Menus {
		nav := panes.NewButton(panes.MustDim(1, 1), s.Item(),
			v.tree.Navigate(cc[i]))
		if !add(nav, s.X, s.Y) {
			return nil, placementErr(m, s.Title)
		}
	}
	if n.Parent() == nil {
		return p, nil
	}
	back := panes.NewButton(panes.MustDim(1, 1),
		panes.NewItem(panes.ItemDef{Glyph: BackGlyph, Title: "back"}),
		v.back)
	if !add(back, m.Width-1, m.Height-1) {
		return nil, placementErr(m, "back")
	}
	return p, nil
}

func placementErr(m *model.Menu, title string) error {
	return fmt.Errorf("%w: %s: no room for %s in %s %s", model.ErrMenu,
		m.Title, title, m.Layout, m.Dim())
}

func (v *View) back(e *panes.ClickEvent) {
	e.SetCancelled(true)
	v.tree.Back()
}

func (v *View) item(m *model.Menu, d *model.ItemDef) *panes.Button {
	action := d.Action
	return panes.NewButton(d.Dim(), d.Item(), func(e *panes.ClickEvent) {
		e.SetCancelled(true)
		x, y := e.Pos()
		v.log.Info().Str("menu", m.Title).Str("item", d.Title).
			Str("action", action).Int("x", x).Int("y", y).
			Interface("viewer", e.Viewer()).Msg("item clicked")
		if v.onAction != nil {
			v.onAction(action, e)
		}
	})
}
