// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ItemDef defines the content of an Item.  The zero value defines an
// empty item.
type ItemDef struct {

	// Glyph is what a surface shows in a slot holding the item.
	Glyph rune

	// Title names the item, e.g. for hover texts.
	Title string

	// Lore are additional description lines.
	Lore []string

	// Amount is the stack size of the item and defaults to 1.
	Amount int

	// Style is applied to the glyph.
	Style tcell.Style
}

// Item is the immutable renderable unit a surface writes into a slot.
// Labels and buttons share it as their content.
type Item struct {
	glyph  rune
	title  string
	lore   []string
	amount int
	style  tcell.Style
}

// NewItem creates an item from given definition.
func NewItem(d ItemDef) Item {
	it := Item{
		glyph:  d.Glyph,
		title:  d.Title,
		amount: d.Amount,
		style:  d.Style,
	}
	if len(d.Lore) > 0 {
		it.lore = append([]string(nil), d.Lore...)
	}
	if it.amount <= 0 {
		it.amount = 1
	}
	return it
}

// Glyph returns the rune representing the item in a slot.
func (it Item) Glyph() rune { return it.glyph }

// Title returns the item's title.
func (it Item) Title() string { return it.title }

// Lore returns a copy of the item's description lines.
func (it Item) Lore() []string { return append([]string(nil), it.lore...) }

// Amount returns the item's stack size.
func (it Item) Amount() int { return it.amount }

// Style returns the style of the item's glyph.
func (it Item) Style() tcell.Style { return it.style }

// IsZero returns true for the empty item, i.e. for an unwritten slot.
func (it Item) IsZero() bool {
	return it.glyph == 0 && it.title == "" && it.amount == 0
}

// Def returns the definition receiving item was created from.
func (it Item) Def() ItemDef {
	return ItemDef{Glyph: it.glyph, Title: it.title, Lore: it.Lore(),
		Amount: it.amount, Style: it.style}
}

func (it Item) String() string {
	if it.IsZero() {
		return ""
	}
	sb := strings.Builder{}
	if it.glyph != 0 {
		sb.WriteRune(it.glyph)
	}
	if it.title != "" {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(it.title)
	}
	return sb.String()
}
