// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package controller

import "github.com/spf13/cobra"

// NewRootCmdRunning returns the panes command running its app with
// given function instead of hosting it in the terminal.
func NewRootCmdRunning(run func(*App) error) *cobra.Command {
	return newRootCmd(run)
}

// OnReloaded informs given function about each reload triggered by
// Watch.  It must be called before Watch.
func (a *App) OnReloaded(f func(error)) { a.reloaded = f }
