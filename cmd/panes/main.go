/*
Panes shows a tree of menus as nested grid panes in the terminal.  Each
menu is a pane of buttons: a menu's items report their action to the
log, a sub-menu's button navigates to the sub-menu whose '<' button
navigates back.  Pressing q, ctrl-c or ctrl-d quits.

Usage:

	panes [--config file.yaml] [--menu file.toml] [--watch]
	      [--log-level lvl] [--log-format console|json]
	panes check <menu.toml>

The yaml configuration knows the keys surface.width, surface.height,
surface.cell_width, log.level, log.format, log.file, menu, watch and
viewer; each of them may be overwritten by an environment variable, e.g.
PANES_LOG_FILE.  Since the terminal is used for the ui, log lines are
only written if log.file is set.  Without a menu definition a built-in
menu is shown.  With --watch the menu file is reloaded whenever it is
written.  A sample menu definition:

	title = "Camp"

	[[items]]
	title = "Campfire"
	glyph = "f"
	color = "orange"
	action = "rest"

	[[menus]]
	title = "Armory"
	glyph = "a"
	layout = "anchor"
	width = 3
	height = 3

	    [[menus.items]]
	    title = "Helmet"
	    glyph = "h"
	    x = 1
	    action = "equip"

The check command validates a menu definition against the configured
surface and prints its tree.
*/
package main

import (
	"fmt"
	"os"

	"github.com/slukits/panes/cmd/panes/controller"
)

func main() {
	if err := controller.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "panes: %v\n", err)
		os.Exit(1)
	}
}
