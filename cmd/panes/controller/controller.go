// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package controller wires the panes command: it loads the
// configuration and the menu, builds the logger and the view and hosts
// the view's tree pane in a terminal.
package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/slukits/panes"
	"github.com/slukits/panes/cmd/panes/model"
	"github.com/slukits/panes/cmd/panes/view"
	"github.com/slukits/panes/internal/logging"
	"github.com/slukits/panes/pkg/term"
)

// App is the assembled panes command ready to be hosted.
type App struct {
	cfg    *Config
	view   *view.View
	opts   term.Options
	log    zerolog.Logger
	closer io.Closer

	// reloaded is informed about each reload triggered by Watch.
	reloaded func(error)
}

// NewApp builds logger, menu and view of given configuration.  The
// package logger of panes is replaced by the configured logger.  The
// returned app must be closed.
func NewApp(ctx context.Context, cfg *Config) (*App, error) {
	l, closer, err := logging.Open(cfg.Logging())
	if err != nil {
		return nil, err
	}
	ctx = l.WithContext(ctx)
	panes.SetLogger(logging.Component(ctx, "panes"))

	m, err := cfg.LoadMenu()
	if err != nil {
		closer.Close()
		return nil, err
	}
	vl := logging.Component(ctx, "view")
	v, err := view.New(m, view.Options{Dim: cfg.Dim(), Logger: &vl})
	if err != nil {
		closer.Close()
		return nil, err
	}
	tl := logging.Component(ctx, "term")
	a := &App{cfg: cfg, view: v, log: l, closer: closer,
		opts: term.Options{
			Dim:       cfg.Dim(),
			CellWidth: cfg.Surface.CellWidth,
			Viewer:    cfg.Viewer,
			Logger:    &tl,
		}}
	l.Info().Str("menu", m.Title).Int("menus", m.Count()).
		Stringer("surface", cfg.Dim()).Msg("app built")
	return a, nil
}

// View returns the app's view.
func (a *App) View() *view.View { return a.view }

// Options returns the options the app's terminal host is created with.
func (a *App) Options() term.Options { return a.opts }

// Run hosts the app's view in the terminal and blocks until the user
// quits.
func (a *App) Run() error {
	ee, err := term.New(a.view.Tree(), a.opts)
	if err != nil {
		return err
	}
	ee.Quit(func() { a.log.Info().Msg("quit") })
	if a.cfg.Watch {
		w, err := a.Watch(ee)
		if err != nil {
			return err
		}
		defer w.Close()
	}
	ee.Listen()
	return nil
}

// Close closes the app's log file.
func (a *App) Close() error { return a.closer.Close() }

// Check validates the menu definition at given path against given
// configuration's surface and writes its tree to given writer.
func Check(cfg *Config, path string, w io.Writer) error {
	m, err := model.Load(path)
	if err != nil {
		return err
	}
	if _, err := view.New(m, view.Options{Dim: cfg.Dim()}); err != nil {
		return err
	}
	_, err = fmt.Fprint(w, m.Tree())
	return err
}
