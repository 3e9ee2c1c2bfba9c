// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package controller

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/slukits/panes/cmd/panes/model"
	"github.com/slukits/panes/pkg/term"
)

// ErrNoMenuFile is returned by Watch if no menu file is configured.
var ErrNoMenuFile = errors.New("watch: no menu file configured")

// Reload reads the configured menu file and replaces the menu tree of
// the app's view on the event loop of given events.  The view is kept
// if the file can't be read or its menu tree is invalid.
func (a *App) Reload(ee *term.Events) error {
	if a.cfg.Menu == "" {
		return ErrNoMenuFile
	}
	m, err := model.Load(a.cfg.Menu)
	if err != nil {
		return err
	}
	var reloadErr error
	if err := ee.Update(func() {
		reloadErr = a.view.Reload(m)
	}); err != nil {
		return err
	}
	return reloadErr
}

// Watch reloads the configured menu file whenever it is written.  The
// file's directory is watched since editors often replace a file
// instead of writing to it.  Closing the returned closer stops the
// watching.
func (a *App) Watch(ee *term.Events) (io.Closer, error) {
	if a.cfg.Menu == "" {
		return nil, ErrNoMenuFile
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fl := filepath.Clean(a.cfg.Menu)
	if err := w.Add(filepath.Dir(fl)); err != nil {
		w.Close()
		return nil, err
	}
	go a.watch(w, fl, ee)
	return w, nil
}

func (a *App) watch(w *fsnotify.Watcher, fl string, ee *term.Events) {
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fl ||
				!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			err := a.Reload(ee)
			if err != nil {
				a.log.Warn().Err(err).Str("file", fl).
					Msg("menu reload failed")
			} else {
				a.log.Info().Str("file", fl).Msg("menu reloaded")
			}
			if a.reloaded != nil {
				a.reloaded(err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			a.log.Warn().Err(err).Msg("menu watcher")
		}
	}
}
