// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Component returns the logger carried by given context tagged with
// given component name, e.g. "view" or "term".  It is disabled if ctx
// carries no logger, see zerolog.Logger.WithContext.
func Component(ctx context.Context, name string) zerolog.Logger {
	return zerolog.Ctx(ctx).With().Str("component", name).Logger()
}
