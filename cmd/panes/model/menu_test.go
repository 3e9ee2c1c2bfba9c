// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/slukits/panes"
	"github.com/slukits/panes/cmd/panes/model"
	. "github.com/slukits/panes/internal/tst"
)

var surface = panes.MustDim(9, 6)

type AMenu struct{ Suite }

func (s *AMenu) SetUp(t *T) { t.Parallel() }

func (s *AMenu) Parses_nested_menus_and_items(t *T) {
	m, err := model.Parse([]byte(`
title = "Main"
[[items]]
title = "Sword"
glyph = "s"
lore = ["sharp"]
[[menus]]
title = "Sub"
glyph = "u"
	[[menus.items]]
	title = "Coin"
	glyph = "c"
	amount = 3
`))
	t.FatalOn(err)
	t.Eq("Main", m.Title)
	t.FatalIfNot(t.Eq(1, len(m.Items)))
	t.Eq('s', m.Items[0].Rune())
	t.Eq("sharp", m.Items[0].Lore[0])
	t.FatalIfNot(t.Eq(1, len(m.Menus)))
	t.Eq(3, m.Menus[0].Items[0].Amount)
	t.Eq(2, m.Count())
}

func (s *AMenu) Rejects_unknown_keys(t *T) {
	_, err := model.Parse([]byte("title = \"Main\"\ncolour = \"red\"\n"))
	t.ErrIs(err, model.ErrMenu)
	t.Contains(err.Error(), "colour")
}

func (s *AMenu) Rejects_malformed_toml(t *T) {
	_, err := model.Parse([]byte("title = "))
	t.ErrIs(err, model.ErrMenu)
}

func (s *AMenu) Defaults_its_root_to_the_surface_size(t *T) {
	m := &model.Menu{Title: "Main"}
	t.FatalOn(m.Validate(surface))
	t.Eq("9x6", m.Dim().String())
	t.Eq(model.Flow, m.Layout)
}

func (s *AMenu) Defaults_sub_menus_to_their_parent_s_size(t *T) {
	m := &model.Menu{Title: "Main", Width: 4, Height: 2,
		Menus: []*model.Menu{{Title: "Sub", Glyph: "u"}}}
	t.FatalOn(m.Validate(surface))
	t.Eq("4x2", m.Menus[0].Dim().String())
}

func (s *AMenu) Defaults_item_sizes_to_a_single_cell(t *T) {
	m := &model.Menu{Title: "Main",
		Items: []*model.ItemDef{{Title: "Sword", Glyph: "s"}}}
	t.FatalOn(m.Validate(surface))
	t.Eq("1x1", m.Items[0].Dim().String())
}

func (s *AMenu) Fails_validation_of_invalid_definitions(t *T) {
	for name, m := range map[string]*model.Menu{
		"no title": {},
		"layout":   {Title: "M", Layout: "grid"},
		"size":     {Title: "M", Width: -1, Height: 2},
		"too wide": {Title: "M", Width: 10, Height: 1},
		"glyph": {Title: "M", Items: []*model.ItemDef{
			{Title: "I", Glyph: "ab"}}},
		"item title": {Title: "M", Items: []*model.ItemDef{
			{Glyph: "a"}}},
		"color": {Title: "M", Items: []*model.ItemDef{
			{Title: "I", Glyph: "a", Color: "no-such-color"}}},
		"amount": {Title: "M", Items: []*model.ItemDef{
			{Title: "I", Glyph: "a", Amount: -1}}},
		"item size": {Title: "M", Width: 2, Height: 2,
			Items: []*model.ItemDef{
				{Title: "I", Glyph: "a", Width: 3}}},
		"anchor origin": {Title: "M", Layout: model.Anchor, Width: 2,
			Height: 2, Items: []*model.ItemDef{
				{Title: "I", Glyph: "a", X: 1, Width: 2}}},
		"sub-menu glyph": {Title: "M", Menus: []*model.Menu{
			{Title: "S"}}},
		"sub-menu origin": {Title: "M", Layout: model.Anchor,
			Width: 2, Height: 2, Menus: []*model.Menu{
				{Title: "S", Glyph: "s", X: 2}}},
		"sub-menu size": {Title: "M", Menus: []*model.Menu{
			{Title: "S", Glyph: "s", Width: 9, Height: 7}}},
	} {
		err := m.Validate(surface)
		if !t.ErrIs(err, model.ErrMenu) {
			t.Fatalf("%s: expected menu error; got: %v", name, err)
		}
	}
}

func (s *AMenu) Reports_the_path_of_an_invalid_definition(t *T) {
	m := &model.Menu{Title: "Main", Menus: []*model.Menu{{
		Title: "Sub", Glyph: "u", Items: []*model.ItemDef{
			{Title: "Coin", Glyph: "cc"}}}}}
	err := m.Validate(surface)
	t.ErrIs(err, model.ErrMenu)
	t.Contains(err.Error(), "/Main/Sub/Coin")
}

func (s *AMenu) Styles_colored_items(t *T) {
	d := &model.ItemDef{Title: "Coin", Glyph: "c", Color: "yellow",
		Amount: 2}
	it := d.Item()
	fg, _, _ := it.Style().Decompose()
	t.Eq(tcell.ColorYellow, fg)
	t.Eq('c', it.Glyph())
	t.Eq(2, it.Amount())
	t.Eq(tcell.StyleDefault, (&model.ItemDef{Glyph: "c"}).Item().Style())
}

func (s *AMenu) Loads_a_menu_file(t *T) {
	fl := filepath.Join(t.GoT().TempDir(), "menu.toml")
	t.FatalOn(os.WriteFile(fl, []byte("title = \"Main\"\n"), 0o644))
	m, err := model.Load(fl)
	t.FatalOn(err)
	t.Eq("Main", m.Title)
	_, err = model.Load(fl + ".missing")
	t.ErrIs(err, os.ErrNotExist)
}

func (s *AMenu) Has_a_valid_default(t *T) {
	m := model.Default()
	t.FatalOn(m.Validate(surface))
	t.Eq("Camp", m.Title)
	t.Eq(4, m.Count())
	t.Eq(model.Anchor, m.Menus[0].Layout)
}

func (s *AMenu) Lists_its_tree(t *T) {
	m := &model.Menu{Title: "Main", Items: []*model.ItemDef{
		{Title: "Sword", Glyph: "s", Action: "equip"},
		{Title: "Rock", Glyph: "r"},
	}, Menus: []*model.Menu{{Title: "Sub", Glyph: "u", Width: 3,
		Height: 1, Layout: model.Anchor}}}
	t.FatalOn(m.Validate(surface))
	t.Eq("* Main (flow 9x6)\n"+
		"  s Sword -> equip\n"+
		"  r Rock\n"+
		"  u Sub (anchor 3x1)\n", m.Tree())
}

func TestAMenu(t *testing.T) {
	t.Parallel()
	Run(&AMenu{}, t)
}
