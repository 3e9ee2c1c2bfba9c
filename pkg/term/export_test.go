// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package term

type ScreenFactoryer = screenFactoryer

// SetScreenFactory allows to mock up tcell's screen generation for
// error handling testing.
func SetScreenFactory(f ScreenFactoryer) {
	screenFactory = f
}

func DefaultScreenFactory() ScreenFactoryer {
	return &defaultFactory{}
}
