// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package model reads and validates the menu definitions the panes
// command displays.  A menu definition is a toml document whose root
// table is the top menu:
//
//	title = "Main"
//	layout = "flow"
//
//	[[items]]
//	title = "Sword"
//	glyph = "s"
//	action = "equip"
//
//	[[menus]]
//	title = "Armory"
//	glyph = "a"
//	layout = "anchor"
//	width = 3
//	height = 3
//
//	    [[menus.items]]
//	    title = "Helmet"
//	    glyph = "h"
//	    x = 1
//
// Menus are displayed as panes, their items as buttons and their
// sub-menus as buttons navigating to the sub-menu.
package model

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/slukits/panes"
)

// ErrMenu is wrapped by all errors about invalid menu definitions.
var ErrMenu = errors.New("menu: invalid definition")

// Layouts of a menu's pane.
const (
	Flow   = "flow"
	Anchor = "anchor"
)

//go:embed default.toml
var defaultMenu []byte

// ItemDef defines an item of a menu which is displayed as button.
type ItemDef struct {
	Title  string   `toml:"title"`
	Glyph  string   `toml:"glyph"`
	Lore   []string `toml:"lore"`
	Amount int      `toml:"amount"`

	// Color is a tcell color name like "red" or "#ff0000".
	Color string `toml:"color"`

	// X and Y are the item's origin in an anchor layout.
	X int `toml:"x"`
	Y int `toml:"y"`

	// Width and Height default to 1.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Action is logged when the item is clicked.
	Action string `toml:"action"`
}

// Rune returns the rune of the item's glyph.
func (d *ItemDef) Rune() rune {
	r, _ := utf8.DecodeRuneInString(d.Glyph)
	return r
}

// Dim returns the item's size.
func (d *ItemDef) Dim() panes.Dim { return panes.MustDim(d.Width, d.Height) }

// Item returns the panes item displaying the item definition.
func (d *ItemDef) Item() panes.Item {
	def := panes.ItemDef{
		Glyph: d.Rune(), Title: d.Title, Lore: d.Lore, Amount: d.Amount}
	if d.Color != "" {
		def.Style = tcell.StyleDefault.Foreground(tcell.GetColor(d.Color))
	}
	return panes.NewItem(def)
}

func (d *ItemDef) validate(path string, in panes.Dim, anchored bool) error {
	if d.Title == "" {
		return fmt.Errorf("%w: %s: missing title", ErrMenu, path)
	}
	path = path + "/" + d.Title
	if utf8.RuneCountInString(d.Glyph) != 1 {
		return fmt.Errorf("%w: %s: glyph must be one rune: %q",
			ErrMenu, path, d.Glyph)
	}
	if d.Color != "" && tcell.GetColor(d.Color) == tcell.ColorDefault {
		return fmt.Errorf("%w: %s: unknown color: %q",
			ErrMenu, path, d.Color)
	}
	if d.Amount < 0 {
		return fmt.Errorf("%w: %s: negative amount", ErrMenu, path)
	}
	if d.Width == 0 {
		d.Width = 1
	}
	if d.Height == 0 {
		d.Height = 1
	}
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("%w: %s: negative size", ErrMenu, path)
	}
	if !in.Holds(d.Dim()) {
		return fmt.Errorf("%w: %s: %s exceeds menu %s",
			ErrMenu, path, d.Dim(), in)
	}
	if !anchored {
		return nil
	}
	if d.X < 0 || d.Y < 0 || d.X+d.Width > in.Width() ||
		d.Y+d.Height > in.Height() {
		return fmt.Errorf("%w: %s: origin %d,%d out of menu %s",
			ErrMenu, path, d.X, d.Y, in)
	}
	return nil
}

// Menu defines a pane of the panes command.
type Menu struct {
	Title string `toml:"title"`

	// Glyph is shown by the navigation button of a sub-menu.
	Glyph string `toml:"glyph"`

	// Layout is either Flow or Anchor and defaults to Flow.
	Layout string `toml:"layout"`

	// Width and Height default to the size of the parent menu, the
	// root menu's to the size of the surface.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// X and Y are a sub-menu's navigation button origin if its parent
	// menu has an anchor layout.
	X int `toml:"x"`
	Y int `toml:"y"`

	Items []*ItemDef `toml:"items"`
	Menus []*Menu    `toml:"menus"`
}

// Dim returns the menu's size.
func (m *Menu) Dim() panes.Dim { return panes.MustDim(m.Width, m.Height) }

// Rune returns the rune of the menu's glyph.
func (m *Menu) Rune() rune {
	r, _ := utf8.DecodeRuneInString(m.Glyph)
	return r
}

// Item returns the item displayed by a navigation button of the menu.
func (m *Menu) Item() panes.Item {
	return panes.NewItem(panes.ItemDef{Glyph: m.Rune(), Title: m.Title})
}

// Parse decodes given toml menu definition.  Unknown keys are errors.
func Parse(bb []byte) (*Menu, error) {
	m := &Menu{}
	err := toml.NewDecoder(bytes.NewReader(bb)).
		DisallowUnknownFields().Decode(m)
	if err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return nil, fmt.Errorf("%w: %s", ErrMenu,
				strings.TrimSpace(sme.String()))
		}
		return nil, fmt.Errorf("%w: %v", ErrMenu, err)
	}
	return m, nil
}

// Load reads and parses the menu definition at given path.
func Load(path string) (*Menu, error) {
	bb, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("menu: load: %w", err)
	}
	return Parse(bb)
}

// Default returns the menu the panes command shows if no menu file is
// configured.
func Default() *Menu {
	m, err := Parse(defaultMenu)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate checks the menu tree and sets its defaults.  Given surface
// dim bounds every menu since all menus are shown in the same pane.
func (m *Menu) Validate(surface panes.Dim) error {
	if m.Width == 0 && m.Height == 0 {
		m.Width, m.Height = surface.Width(), surface.Height()
	}
	return m.validate("", surface, false)
}

func (m *Menu) validate(path string, surface panes.Dim, nav bool) error {
	if m.Title == "" {
		return fmt.Errorf("%w: %s: missing title", ErrMenu, pathOf(path))
	}
	path = path + "/" + m.Title
	if nav && utf8.RuneCountInString(m.Glyph) != 1 {
		return fmt.Errorf("%w: %s: glyph must be one rune: %q",
			ErrMenu, path, m.Glyph)
	}
	switch m.Layout {
	case "":
		m.Layout = Flow
	case Flow, Anchor:
	default:
		return fmt.Errorf("%w: %s: unknown layout: %q",
			ErrMenu, path, m.Layout)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: %s: size must be positive: %dx%d",
			ErrMenu, path, m.Width, m.Height)
	}
	if !surface.Holds(m.Dim()) {
		return fmt.Errorf("%w: %s: %s exceeds surface %s",
			ErrMenu, path, m.Dim(), surface)
	}
	anchored := m.Layout == Anchor
	for _, d := range m.Items {
		if err := d.validate(path, m.Dim(), anchored); err != nil {
			return err
		}
	}
	for _, s := range m.Menus {
		if s.Width == 0 && s.Height == 0 {
			s.Width, s.Height = m.Width, m.Height
		}
		if anchored && (s.X < 0 || s.Y < 0 ||
			s.X >= m.Width || s.Y >= m.Height) {
			return fmt.Errorf("%w: %s/%s: origin %d,%d out of menu %s",
				ErrMenu, path, s.Title, s.X, s.Y, m.Dim())
		}
		if err := s.validate(path, surface, true); err != nil {
			return err
		}
	}
	return nil
}

func pathOf(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// Tree returns an indented listing of the menu tree with one line per
// menu or item.
func (m *Menu) Tree() string {
	b := &strings.Builder{}
	m.tree(b, 0)
	return b.String()
}

func (m *Menu) tree(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	glyph := m.Glyph
	if glyph == "" {
		glyph = "*"
	}
	fmt.Fprintf(b, "%s%s %s (%s %dx%d)\n",
		indent, glyph, m.Title, m.Layout, m.Width, m.Height)
	for _, d := range m.Items {
		fmt.Fprintf(b, "%s  %s %s", indent, d.Glyph, d.Title)
		if d.Action != "" {
			fmt.Fprintf(b, " -> %s", d.Action)
		}
		b.WriteString("\n")
	}
	for _, s := range m.Menus {
		s.tree(b, depth+1)
	}
}

// Count returns the number of menus in the menu tree.
func (m *Menu) Count() int {
	n := 1
	for _, s := range m.Menus {
		n += s.Count()
	}
	return n
}
