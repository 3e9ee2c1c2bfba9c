// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// logger reports invariant violations detected during rendering, e.g.
// a child placed outside the surface it is rendered to.  It defaults to
// a json logger writing to stderr.
var logger atomic.Pointer[zerolog.Logger]

// SetLogger replaces the logger reporting invariant violations.
func SetLogger(l zerolog.Logger) { logger.Store(&l) }

func log() *zerolog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	l := zerolog.New(os.Stderr).With().Timestamp().
		Str("component", "panes").Logger()
	logger.CompareAndSwap(nil, &l)
	return logger.Load()
}
