// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes

// FlowLow returns the slot a flow pane starts scanning for free cells.
func FlowLow(fp *FlowPane) int { return fp.low }
